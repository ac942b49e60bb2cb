package dashboard

import (
	"context"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest"
)

// CandidateClient fetches the published candidate pool.
type CandidateClient interface {
	ListCandidates(ctx context.Context) ([]candidate.Candidate, error)
}

// ShortlistClient manipulates the company's shortlist.
type ShortlistClient interface {
	ListShortlist(ctx context.Context) ([]kernel.CandidateID, error)
	AddToShortlist(ctx context.Context, id kernel.CandidateID) error
	RemoveFromShortlist(ctx context.Context, id kernel.CandidateID) error
}

// IntroRequestClient manipulates the company's intro requests. Submit and
// Cancel surface domain errors from the introrequest package, most notably
// introrequest.ErrAlreadyRequested on a duplicate submission.
type IntroRequestClient interface {
	ListActiveIntros(ctx context.Context) (map[kernel.CandidateID]introrequest.Status, error)
	SubmitIntro(ctx context.Context, id kernel.CandidateID, message string) (introrequest.Status, error)
	CancelIntro(ctx context.Context, id kernel.CandidateID) error
}
