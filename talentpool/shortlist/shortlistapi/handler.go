package shortlistapi

import (
	"github.com/Abraxas-365/talentpool/pkg/iam/auth"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/shortlist"
	"github.com/Abraxas-365/talentpool/talentpool/shortlist/shortlistsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for shortlist operations.
type Handlers struct {
	service *shortlistsrv.ShortlistService
}

// NewHandlers creates a new shortlist handlers instance.
func NewHandlers(service *shortlistsrv.ShortlistService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListShortlist returns the authenticated company's shortlist.
// GET /api/shortlists
func (h *Handlers) ListShortlist(c *fiber.Ctx) error {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	entries, err := h.service.ListShortlist(c.Context(), identity.CompanyID)
	if err != nil {
		return err
	}

	return c.JSON(entries)
}

// AddToShortlist stars a candidate.
// POST /api/shortlists
func (h *Handlers) AddToShortlist(c *fiber.Ctx) error {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req shortlist.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return shortlist.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if req.CandidateID.IsEmpty() {
		return shortlist.ErrInvalidRequest().WithDetail("candidateId", "missing or empty")
	}

	entry, err := h.service.AddToShortlist(c.Context(), identity.CompanyID, req.CandidateID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// RemoveFromShortlist unstars a candidate.
// DELETE /api/shortlists/:candidateId
func (h *Handlers) RemoveFromShortlist(c *fiber.Ctx) error {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	candidateID := kernel.CandidateID(c.Params("candidateId"))
	if candidateID.IsEmpty() {
		return shortlist.ErrInvalidRequest().WithDetail("candidateId", "missing or empty")
	}

	if err := h.service.RemoveFromShortlist(c.Context(), identity.CompanyID, candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// RegisterRoutes registers all shortlist routes.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/shortlists")

	api.Get("/", authMiddleware.Authenticate(), handlers.ListShortlist)
	api.Post("/", authMiddleware.Authenticate(), handlers.AddToShortlist)
	api.Delete("/:candidateId", authMiddleware.Authenticate(), handlers.RemoveFromShortlist)
}
