package shortlist

import (
	"net/http"

	"github.com/Abraxas-365/talentpool/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SHORTLIST")

// Error codes
var (
	CodeEntryNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Shortlist entry not found")
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrEntryNotFound() *errx.Error {
	return ErrRegistry.New(CodeEntryNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
