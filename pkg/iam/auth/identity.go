package auth

import (
	"net/http"

	"github.com/Abraxas-365/talentpool/pkg/errx"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
)

// Identity is the resolved company-side user of a session. Token issuance
// happens upstream (magic-link flow in the identity provider); this package
// only verifies and carries the result.
type Identity struct {
	CompanyID kernel.CompanyID `json:"company_id"`
	Email     kernel.Email     `json:"email"`
}

// Session is the read-only view the dashboard consumes: a nullable user plus
// an "identity resolution still in flight" flag.
type Session struct {
	User      *Identity `json:"user"`
	IsLoading bool      `json:"is_loading"`
}

// IsAuthenticated reports whether the session has resolved to a real identity.
func (s Session) IsAuthenticated() bool {
	return !s.IsLoading && s.User != nil
}

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeMissingToken = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Missing authorization token")
	CodeInvalidToken = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
)

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}
