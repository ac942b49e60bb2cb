package candidateapi

import (
	"github.com/Abraxas-365/talentpool/pkg/iam/auth"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
	"github.com/Abraxas-365/talentpool/talentpool/candidate/candidatesrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for the anonymized candidate pool.
type Handlers struct {
	service *candidatesrv.CandidateService
}

// NewHandlers creates a new candidate handlers instance.
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListCandidates returns the full anonymized pool.
// GET /api/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	resp, err := h.service.ListCandidates(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetCandidateByID returns one candidate.
// GET /api/candidates/:id
func (h *Handlers) GetCandidateByID(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrInvalidRequest().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetCandidateByID(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all candidate routes. The whole pool sits behind
// authentication; unauthenticated visitors only ever see the placeholder set
// the dashboard renders locally.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/candidates")

	api.Get("/", authMiddleware.Authenticate(), handlers.ListCandidates)
	api.Get("/:id", authMiddleware.Authenticate(), handlers.GetCandidateByID)
}
