package shortlistsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/errx"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
	"github.com/Abraxas-365/talentpool/talentpool/shortlist"
	"github.com/google/uuid"
)

// ShortlistService manages a company's starred candidates.
type ShortlistService struct {
	shortlistRepo shortlist.Repository
	candidateRepo candidate.Repository
}

// NewShortlistService creates a new instance of the shortlist service.
func NewShortlistService(shortlistRepo shortlist.Repository, candidateRepo candidate.Repository) *ShortlistService {
	return &ShortlistService{
		shortlistRepo: shortlistRepo,
		candidateRepo: candidateRepo,
	}
}

// ListShortlist returns the company's current shortlist.
func (s *ShortlistService) ListShortlist(ctx context.Context, companyID kernel.CompanyID) ([]shortlist.Entry, error) {
	entries, err := s.shortlistRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list shortlist", errx.TypeInternal)
	}
	return entries, nil
}

// AddToShortlist stars a candidate. Starring an already-starred candidate is
// idempotent so a client retry never errors.
func (s *ShortlistService) AddToShortlist(ctx context.Context, companyID kernel.CompanyID, candidateID kernel.CandidateID) (*shortlist.Entry, error) {
	exists, err := s.candidateRepo.Exists(ctx, candidateID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check candidate existence", errx.TypeInternal)
	}
	if !exists {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	entry := &shortlist.Entry{
		ID:          uuid.NewString(),
		CompanyID:   companyID,
		CandidateID: candidateID,
		CreatedAt:   time.Now(),
	}

	if err := s.shortlistRepo.Add(ctx, entry); err != nil {
		return nil, errx.Wrap(err, "failed to add shortlist entry", errx.TypeInternal)
	}

	return entry, nil
}

// RemoveFromShortlist unstars a candidate.
func (s *ShortlistService) RemoveFromShortlist(ctx context.Context, companyID kernel.CompanyID, candidateID kernel.CandidateID) error {
	removed, err := s.shortlistRepo.Remove(ctx, companyID, candidateID)
	if err != nil {
		return errx.Wrap(err, "failed to remove shortlist entry", errx.TypeInternal)
	}
	if !removed {
		return shortlist.ErrEntryNotFound().WithDetail("candidate_id", candidateID.String())
	}
	return nil
}
