package introrequestapi

import (
	"github.com/Abraxas-365/talentpool/pkg/iam/auth"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest/introrequestsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for intro request operations.
type Handlers struct {
	service *introrequestsrv.IntroRequestService
}

// NewHandlers creates a new intro request handlers instance.
func NewHandlers(service *introrequestsrv.IntroRequestService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListRequests returns the authenticated company's intro requests.
// GET /api/intro-requests
func (h *Handlers) ListRequests(c *fiber.Ctx) error {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	responses, err := h.service.ListRequests(c.Context(), identity.CompanyID)
	if err != nil {
		return err
	}

	return c.JSON(responses)
}

// SubmitRequest creates a pending intro request. Responds 409 when an active
// request already exists for the candidate.
// POST /api/intro-requests
func (h *Handlers) SubmitRequest(c *fiber.Ctx) error {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req introrequest.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return introrequest.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	request, err := h.service.SubmitRequest(c.Context(), identity.CompanyID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(request.ToResponse())
}

// CancelRequest withdraws the company's pending request for a candidate.
// DELETE /api/intro-requests/:candidateId
func (h *Handlers) CancelRequest(c *fiber.Ctx) error {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	candidateID := kernel.CandidateID(c.Params("candidateId"))
	if candidateID.IsEmpty() {
		return introrequest.ErrInvalidRequest().WithDetail("candidateId", "missing or empty")
	}

	if err := h.service.CancelRequest(c.Context(), identity.CompanyID, candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// AcceptRequest flips a pending request to accepted. Candidate-side endpoint,
// reached through the operations backoffice.
// POST /api/intro-requests/:id/accept
func (h *Handlers) AcceptRequest(c *fiber.Ctx) error {
	id := kernel.IntroRequestID(c.Params("id"))
	if id.IsEmpty() {
		return introrequest.ErrInvalidRequest().WithDetail("id", "missing or empty")
	}

	request, err := h.service.AcceptRequest(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(request.ToResponse())
}

// RejectRequest flips a pending request to rejected.
// POST /api/intro-requests/:id/reject
func (h *Handlers) RejectRequest(c *fiber.Ctx) error {
	id := kernel.IntroRequestID(c.Params("id"))
	if id.IsEmpty() {
		return introrequest.ErrInvalidRequest().WithDetail("id", "missing or empty")
	}

	request, err := h.service.RejectRequest(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(request.ToResponse())
}

// RegisterRoutes registers all intro request routes.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/intro-requests")

	api.Get("/", authMiddleware.Authenticate(), handlers.ListRequests)
	api.Post("/", authMiddleware.Authenticate(), handlers.SubmitRequest)
	api.Delete("/:candidateId", authMiddleware.Authenticate(), handlers.CancelRequest)

	// Resolution endpoints for the candidate side of the marketplace.
	api.Post("/:id/accept", authMiddleware.Authenticate(), handlers.AcceptRequest)
	api.Post("/:id/reject", authMiddleware.Authenticate(), handlers.RejectRequest)
}
