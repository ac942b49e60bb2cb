package shortlist

import (
	"context"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

type Repository interface {
	// ListByCompany retrieves every entry of a company's shortlist.
	ListByCompany(ctx context.Context, companyID kernel.CompanyID) ([]Entry, error)

	// Add inserts an entry; adding an existing pair is a no-op.
	Add(ctx context.Context, entry *Entry) error

	// Remove deletes an entry and reports whether one existed.
	Remove(ctx context.Context, companyID kernel.CompanyID, candidateID kernel.CandidateID) (bool, error)
}
