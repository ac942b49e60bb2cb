package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const identityLocalKey = "auth_identity"

// TokenMiddleware authenticates requests with a Bearer session token.
type TokenMiddleware struct {
	tokens TokenService
}

func NewTokenMiddleware(tokens TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid session token and stores the
// resolved identity in the request locals.
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return ErrMissingToken()
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			return ErrMissingToken().WithDetail("reason", "expected Bearer scheme")
		}

		identity, err := m.tokens.Verify(tokenString)
		if err != nil {
			return err
		}

		c.Locals(identityLocalKey, identity)
		return c.Next()
	}
}

// GetIdentity retrieves the identity stored by Authenticate.
func GetIdentity(c *fiber.Ctx) (*Identity, bool) {
	identity, ok := c.Locals(identityLocalKey).(*Identity)
	return identity, ok
}
