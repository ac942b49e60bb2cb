package candidate

import (
	"net/http"

	"github.com/Abraxas-365/talentpool/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeListUnavailable   = ErrRegistry.Register("LIST_UNAVAILABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "Candidate list is temporarily unavailable")
	CodeInvalidRequest    = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrListUnavailable() *errx.Error {
	return ErrRegistry.New(CodeListUnavailable)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
