package introrequest

import (
	"time"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

// SubmitRequest is the body of POST /api/intro-requests.
type SubmitRequest struct {
	CandidateID kernel.CandidateID `json:"candidateId"`
	Message     string             `json:"message,omitempty"`
}

// Response is the wire shape of one intro request as the dashboard consumes it.
type Response struct {
	ID          kernel.IntroRequestID `json:"id"`
	CandidateID kernel.CandidateID    `json:"candidateId"`
	Status      Status                `json:"status"`
	Message     string                `json:"message,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// ToResponse converts the entity to its wire shape.
func (r *IntroRequest) ToResponse() Response {
	return Response{
		ID:          r.ID,
		CandidateID: r.CandidateID,
		Status:      r.Status,
		Message:     r.Message,
		CreatedAt:   r.CreatedAt,
	}
}
