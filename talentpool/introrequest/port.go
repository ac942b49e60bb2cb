package introrequest

import (
	"context"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

type Repository interface {
	// Create inserts a new request.
	Create(ctx context.Context, req *IntroRequest) error

	// Update persists status changes.
	Update(ctx context.Context, req *IntroRequest) error

	// GetByID retrieves a request by ID.
	GetByID(ctx context.Context, id kernel.IntroRequestID) (*IntroRequest, error)

	// ListByCompany retrieves every request a company has made, newest first.
	ListByCompany(ctx context.Context, companyID kernel.CompanyID) ([]IntroRequest, error)

	// GetActive retrieves the active (non-cancelled) request for a pair,
	// or ErrRequestNotFound when none exists.
	GetActive(ctx context.Context, companyID kernel.CompanyID, candidateID kernel.CandidateID) (*IntroRequest, error)
}
