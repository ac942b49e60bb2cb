package dashboard

import (
	"context"
	"sync"

	"github.com/Abraxas-365/talentpool/pkg/iam/auth"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/pkg/logx"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
)

// CandidateStore caches the candidate pool for the lifetime of a signed-in
// identity. The pool changes rarely and the dashboard re-filters constantly,
// so one fetch per sign-in is the right tradeoff: filtering is always local
// and instant, and the data refreshes on the next visit.
type CandidateStore struct {
	client CandidateClient

	mu         sync.Mutex
	owner      kernel.CompanyID
	candidates []candidate.Candidate
	loaded     bool
}

// NewCandidateStore creates a store backed by the given client.
func NewCandidateStore(client CandidateClient) *CandidateStore {
	return &CandidateStore{client: client}
}

// Sync reconciles the cache with the session. Signed out (or still loading):
// the cache is cleared and nothing is fetched. Signed in: the pool is fetched
// once per identity; later calls for the same identity are no-ops, which also
// makes Sync the retry affordance — a failed fetch leaves the cache unloaded,
// so the next call tries again.
func (s *CandidateStore) Sync(ctx context.Context, session auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.IsLoading || !session.IsAuthenticated() {
		s.owner = ""
		s.candidates = nil
		s.loaded = false
		return nil
	}

	id := session.User.CompanyID
	if s.loaded && s.owner == id {
		return nil
	}

	candidates, err := s.client.ListCandidates(ctx)
	if err != nil {
		logx.Warnf("candidate pool fetch failed: %v", err)
		s.owner = ""
		s.candidates = nil
		s.loaded = false
		return err
	}

	s.owner = id
	s.candidates = candidates
	s.loaded = true
	return nil
}

// Loaded reports whether the pool is cached for the current identity.
func (s *CandidateStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Candidates returns a snapshot of the cached pool. Callers may filter and
// sort the returned slice freely.
func (s *CandidateStore) Candidates() []candidate.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]candidate.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}
