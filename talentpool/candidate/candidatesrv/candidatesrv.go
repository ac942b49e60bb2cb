package candidatesrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/errx"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/pkg/logx"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
)

const listCacheTTL = 5 * time.Minute

// CandidateService serves the anonymized pool to authenticated company users.
type CandidateService struct {
	candidateRepo candidate.Repository
	cache         candidate.Cache
}

// NewCandidateService creates a new instance of the candidate service.
func NewCandidateService(candidateRepo candidate.Repository, cache candidate.Cache) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		cache:         cache,
	}
}

// ListCandidates returns the full pool, read-through cached. Cache failures
// degrade to the database; only a database failure surfaces to the caller.
func (s *CandidateService) ListCandidates(ctx context.Context) (*candidate.ListResponse, error) {
	if s.cache != nil {
		cached, hit, err := s.cache.GetList(ctx)
		if err != nil {
			logx.Warnf("candidate list cache read failed, falling through: %v", err)
		} else if hit {
			return &candidate.ListResponse{Candidates: cached}, nil
		}
	}

	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, candidate.ErrListUnavailable().WithCause(err)
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, candidates, listCacheTTL); err != nil {
			logx.Warnf("candidate list cache write failed: %v", err)
		}
	}

	return &candidate.ListResponse{Candidates: candidates}, nil
}

// GetCandidateByID retrieves a single candidate.
func (s *CandidateService) GetCandidateByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		return nil, errx.Wrap(err, "failed to load candidate", errx.TypeInternal)
	}
	return c, nil
}

// ValidateCandidateExists checks existence for cross-domain references.
func (s *CandidateService) ValidateCandidateExists(ctx context.Context, id kernel.CandidateID) error {
	exists, err := s.candidateRepo.Exists(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to check candidate existence", errx.TypeInternal)
	}
	if !exists {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}
	return nil
}
