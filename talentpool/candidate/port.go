package candidate

import (
	"context"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

type Repository interface {
	// List retrieves the full anonymized pool, newest entry first.
	List(ctx context.Context) ([]Candidate, error)

	// GetByID retrieves a candidate by ID.
	GetByID(ctx context.Context, id kernel.CandidateID) (*Candidate, error)

	// Exists checks if a candidate exists by ID.
	Exists(ctx context.Context, id kernel.CandidateID) (bool, error)
}

// Cache is a read-through cache for the full candidate list.
type Cache interface {
	GetList(ctx context.Context) ([]Candidate, bool, error)
	SetList(ctx context.Context, candidates []Candidate, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
