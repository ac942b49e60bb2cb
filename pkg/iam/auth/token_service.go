package auth

import (
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService verifies session tokens minted by the identity provider.
type TokenService interface {
	Verify(tokenString string) (*Identity, error)
}

// JWTService verifies HS256 tokens sharing the provider's signing secret.
type JWTService struct {
	secretKey []byte
	issuer    string
}

func NewJWTService(secretKey, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

type sessionClaims struct {
	CompanyID string `json:"company_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Verify parses and validates the token, returning the embedded identity.
func (s *JWTService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&sessionClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken().WithDetail("alg", t.Header["alg"])
			}
			return s.secretKey, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return nil, ErrInvalidToken().WithCause(err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken()
	}

	if claims.CompanyID == "" {
		return nil, ErrInvalidToken().WithDetail("reason", "missing company_id claim")
	}

	return &Identity{
		CompanyID: kernel.NewCompanyID(claims.CompanyID),
		Email:     kernel.Email(claims.Email),
	}, nil
}
