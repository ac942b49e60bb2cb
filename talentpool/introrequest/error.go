package introrequest

import (
	"net/http"

	"github.com/Abraxas-365/talentpool/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("INTRO_REQUEST")

// Error codes
var (
	CodeRequestNotFound         = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Intro request not found")
	CodeAlreadyRequested        = ErrRegistry.Register("ALREADY_REQUESTED", errx.TypeConflict, http.StatusConflict, "An active intro request already exists for this candidate")
	CodeNotPending              = ErrRegistry.Register("NOT_PENDING", errx.TypeConflict, http.StatusConflict, "Only pending intro requests can be cancelled")
	CodeInvalidStatusTransition = ErrRegistry.Register("INVALID_STATUS_TRANSITION", errx.TypeBusiness, http.StatusConflict, "Invalid status transition")
	CodeInvalidRequest          = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrRequestNotFound() *errx.Error {
	return ErrRegistry.New(CodeRequestNotFound)
}

func ErrAlreadyRequested() *errx.Error {
	return ErrRegistry.New(CodeAlreadyRequested)
}

func ErrNotPending() *errx.Error {
	return ErrRegistry.New(CodeNotPending)
}

func ErrInvalidStatusTransition() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatusTransition)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
