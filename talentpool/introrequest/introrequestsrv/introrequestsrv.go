package introrequestsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/errx"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/pkg/logx"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest"
	"github.com/Abraxas-365/talentpool/talentpool/notification"
	"github.com/google/uuid"
)

// IntroRequestService manages the intro-request lifecycle.
type IntroRequestService struct {
	requestRepo   introrequest.Repository
	candidateRepo candidate.Repository
	notifications notification.Queue
}

// NewIntroRequestService creates a new instance of the intro request service.
func NewIntroRequestService(
	requestRepo introrequest.Repository,
	candidateRepo candidate.Repository,
	notifications notification.Queue,
) *IntroRequestService {
	return &IntroRequestService{
		requestRepo:   requestRepo,
		candidateRepo: candidateRepo,
		notifications: notifications,
	}
}

// ListRequests returns every request the company has made.
func (s *IntroRequestService) ListRequests(ctx context.Context, companyID kernel.CompanyID) ([]introrequest.Response, error) {
	requests, err := s.requestRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list intro requests", errx.TypeInternal)
	}

	responses := make([]introrequest.Response, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, r.ToResponse())
	}
	return responses, nil
}

// SubmitRequest creates a pending intro request. A second request while an
// active one exists for the same pair returns the conflict error the
// dashboard treats as "already requested".
func (s *IntroRequestService) SubmitRequest(ctx context.Context, companyID kernel.CompanyID, req introrequest.SubmitRequest) (*introrequest.IntroRequest, error) {
	if err := s.validateCandidate(ctx, req.CandidateID); err != nil {
		return nil, err
	}

	existing, err := s.requestRepo.GetActive(ctx, companyID, req.CandidateID)
	if err == nil && existing != nil {
		return nil, introrequest.ErrAlreadyRequested().
			WithDetail("candidate_id", req.CandidateID.String()).
			WithDetail("existing_status", existing.Status)
	}
	if err != nil && !errx.IsType(err, errx.TypeNotFound) {
		return nil, errx.Wrap(err, "failed to check active intro request", errx.TypeInternal)
	}

	now := time.Now()
	request := &introrequest.IntroRequest{
		ID:          kernel.NewIntroRequestID(uuid.NewString()),
		CompanyID:   companyID,
		CandidateID: req.CandidateID,
		Status:      introrequest.StatusPending,
		Message:     req.Message,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		// The storage-level unique index can still fire on a race; surface it
		// the same way as the pre-check.
		return nil, errx.Wrap(err, "failed to create intro request", errx.TypeInternal)
	}

	s.publish(ctx, notification.EventIntroRequested, request)

	return request, nil
}

// CancelRequest withdraws the company's pending request for a candidate.
func (s *IntroRequestService) CancelRequest(ctx context.Context, companyID kernel.CompanyID, candidateID kernel.CandidateID) error {
	request, err := s.requestRepo.GetActive(ctx, companyID, candidateID)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return err
		}
		return errx.Wrap(err, "failed to load intro request", errx.TypeInternal)
	}

	if err := request.Cancel(); err != nil {
		return err
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return errx.Wrap(err, "failed to cancel intro request", errx.TypeInternal)
	}

	s.publish(ctx, notification.EventIntroCancelled, request)

	return nil
}

// AcceptRequest flips a pending request to accepted (candidate-side action).
func (s *IntroRequestService) AcceptRequest(ctx context.Context, id kernel.IntroRequestID) (*introrequest.IntroRequest, error) {
	return s.resolve(ctx, id, notification.EventIntroAccepted, (*introrequest.IntroRequest).Accept)
}

// RejectRequest flips a pending request to rejected (candidate-side action).
func (s *IntroRequestService) RejectRequest(ctx context.Context, id kernel.IntroRequestID) (*introrequest.IntroRequest, error) {
	return s.resolve(ctx, id, notification.EventIntroRejected, (*introrequest.IntroRequest).Reject)
}

func (s *IntroRequestService) resolve(
	ctx context.Context,
	id kernel.IntroRequestID,
	eventType notification.EventType,
	transition func(*introrequest.IntroRequest) error,
) (*introrequest.IntroRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		return nil, errx.Wrap(err, "failed to load intro request", errx.TypeInternal)
	}

	if err := transition(request); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, errx.Wrap(err, "failed to update intro request", errx.TypeInternal)
	}

	s.publish(ctx, eventType, request)

	return request, nil
}

func (s *IntroRequestService) validateCandidate(ctx context.Context, candidateID kernel.CandidateID) error {
	if candidateID.IsEmpty() {
		return introrequest.ErrInvalidRequest().WithDetail("candidateId", "missing or empty")
	}

	exists, err := s.candidateRepo.Exists(ctx, candidateID)
	if err != nil {
		return errx.Wrap(err, "failed to check candidate existence", errx.TypeInternal)
	}
	if !exists {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}
	return nil
}

// publish enqueues a notification event. Delivery is best effort; a queue
// failure never fails the request that triggered it.
func (s *IntroRequestService) publish(ctx context.Context, eventType notification.EventType, request *introrequest.IntroRequest) {
	if s.notifications == nil {
		return
	}

	event := notification.Event{
		Type:           eventType,
		IntroRequestID: request.ID,
		CompanyID:      request.CompanyID,
		CandidateID:    request.CandidateID,
		Message:        request.Message,
		CreatedAt:      time.Now(),
	}

	if err := s.notifications.Enqueue(ctx, event); err != nil {
		logx.Warnf("failed to enqueue %s notification for request %s: %v",
			eventType, request.ID, err)
	}
}
