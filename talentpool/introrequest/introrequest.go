package introrequest

import (
	"slices"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

// Status represents the lifecycle state of an intro request.
//
// Valid status graph:
//
//	PENDING ──► ACCEPTED
//	   │
//	   ├──────► REJECTED
//	   │
//	   └──────► CANCELLED
//
// ACCEPTED, REJECTED and CANCELLED are terminal states.
type Status string

const (
	StatusPending   Status = "PENDING"   // Awaiting the candidate side
	StatusAccepted  Status = "ACCEPTED"  // Candidate agreed to the intro
	StatusRejected  Status = "REJECTED"  // Candidate declined
	StatusCancelled Status = "CANCELLED" // Withdrawn by the company
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusPending: {StatusAccepted, StatusRejected, StatusCancelled},
	// ACCEPTED, REJECTED and CANCELLED are terminal — no outgoing transitions
}

// IntroRequest is a company's request to be connected with a candidate.
// At most one active request may exist per (company, candidate) pair.
type IntroRequest struct {
	ID              kernel.IntroRequestID `db:"id" json:"id"`
	CompanyID       kernel.CompanyID      `db:"company_id" json:"-"`
	CandidateID     kernel.CandidateID    `db:"candidate_id" json:"candidateId"`
	Status          Status                `db:"status" json:"status"`
	Message         string                `db:"message" json:"message,omitempty"`
	StatusChangedAt *time.Time            `db:"status_changed_at" json:"statusChangedAt,omitempty"`
	CreatedAt       time.Time             `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time             `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive reports whether the request still blocks a new one for the same
// pair. Everything except CANCELLED counts as active: a rejected intro is an
// answered one, and only an explicit cancellation frees the pair.
func (r *IntroRequest) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsPending reports whether the request awaits the candidate side.
func (r *IntroRequest) IsPending() bool {
	return r.Status == StatusPending
}

// CanTransitionTo checks whether moving to newStatus is permitted.
func (r *IntroRequest) CanTransitionTo(newStatus Status) bool {
	allowed, ok := validTransitions[r.Status]
	if !ok {
		return false // terminal state
	}
	return slices.Contains(allowed, newStatus)
}

// UpdateStatus applies a transition, rejecting anything the graph forbids.
func (r *IntroRequest) UpdateStatus(newStatus Status) error {
	if !r.CanTransitionTo(newStatus) {
		return ErrInvalidStatusTransition().
			WithDetail("current_status", r.Status).
			WithDetail("new_status", newStatus)
	}

	now := time.Now()
	r.Status = newStatus
	r.StatusChangedAt = &now
	r.UpdatedAt = now
	return nil
}

// Cancel withdraws a pending request. Only PENDING requests can be cancelled.
func (r *IntroRequest) Cancel() error {
	if !r.IsPending() {
		return ErrNotPending().WithDetail("status", r.Status)
	}
	return r.UpdateStatus(StatusCancelled)
}

// Accept marks the intro as agreed by the candidate side.
func (r *IntroRequest) Accept() error {
	return r.UpdateStatus(StatusAccepted)
}

// Reject marks the intro as declined by the candidate side.
func (r *IntroRequest) Reject() error {
	return r.UpdateStatus(StatusRejected)
}
