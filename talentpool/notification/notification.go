package notification

import (
	"time"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

// EventType identifies what happened.
type EventType string

const (
	EventIntroRequested EventType = "INTRO_REQUESTED"
	EventIntroAccepted  EventType = "INTRO_ACCEPTED"
	EventIntroRejected  EventType = "INTRO_REJECTED"
	EventIntroCancelled EventType = "INTRO_CANCELLED"
)

// Event is one queued notification. Delivery itself (email, push) happens
// behind the Notifier port; the platform only guarantees the event reaches it.
type Event struct {
	Type           EventType             `json:"type"`
	IntroRequestID kernel.IntroRequestID `json:"intro_request_id"`
	CompanyID      kernel.CompanyID      `json:"company_id"`
	CandidateID    kernel.CandidateID    `json:"candidate_id"`
	Message        string                `json:"message,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}
