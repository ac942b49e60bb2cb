package shortlist

import (
	"time"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

// Entry is one starred candidate in a company's shortlist. The
// (company, candidate) pair is unique; adding twice is a no-op.
type Entry struct {
	ID          string             `db:"id" json:"id"`
	CompanyID   kernel.CompanyID   `db:"company_id" json:"-"`
	CandidateID kernel.CandidateID `db:"candidate_id" json:"candidateId"`
	CreatedAt   time.Time          `db:"created_at" json:"createdAt"`
}

// ToggleRequest is the body of POST /api/shortlists.
type ToggleRequest struct {
	CandidateID kernel.CandidateID `json:"candidateId"`
}
