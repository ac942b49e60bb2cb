package dashboard

import (
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest"
)

// InteractionState is a point-in-time snapshot of the company's per-candidate
// state: which candidates are starred and which have an active intro request.
// ComputeVisible reads it; the Ledger produces it.
type InteractionState struct {
	Shortlist map[kernel.CandidateID]bool
	Intros    map[kernel.CandidateID]introrequest.Status
}

// NewInteractionState returns an empty snapshot.
func NewInteractionState() InteractionState {
	return InteractionState{
		Shortlist: map[kernel.CandidateID]bool{},
		Intros:    map[kernel.CandidateID]introrequest.Status{},
	}
}

// IsShortlisted reports whether the candidate is starred.
func (i InteractionState) IsShortlisted(id kernel.CandidateID) bool {
	return i.Shortlist[id]
}

// IntroStatus returns the active intro-request status for the candidate, if
// any. Cancelled requests never appear here.
func (i InteractionState) IntroStatus(id kernel.CandidateID) (introrequest.Status, bool) {
	status, ok := i.Intros[id]
	return status, ok
}
