package auth_test

import (
	"testing"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/iam/auth"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testSecret = "test-secret"
	testIssuer = "talentpool"
)

func mintToken(t *testing.T, secret, issuer, companyID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"company_id": companyID,
		"email":      "recruiter@example.com",
		"iss":        issuer,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestVerifyValidToken(t *testing.T) {
	svc := auth.NewJWTService(testSecret, testIssuer)

	identity, err := svc.Verify(mintToken(t, testSecret, testIssuer, "co-1"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.CompanyID.String() != "co-1" {
		t.Errorf("CompanyID = %s, want co-1", identity.CompanyID)
	}
	if identity.Email != "recruiter@example.com" {
		t.Errorf("Email = %s, want recruiter@example.com", identity.Email)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	svc := auth.NewJWTService(testSecret, testIssuer)
	if _, err := svc.Verify(mintToken(t, "other-secret", testIssuer, "co-1")); err == nil {
		t.Error("token signed with a different secret must be rejected")
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	svc := auth.NewJWTService(testSecret, testIssuer)
	if _, err := svc.Verify(mintToken(t, testSecret, "someone-else", "co-1")); err == nil {
		t.Error("token from a different issuer must be rejected")
	}
}

func TestVerifyRejectsMissingCompany(t *testing.T) {
	svc := auth.NewJWTService(testSecret, testIssuer)
	if _, err := svc.Verify(mintToken(t, testSecret, testIssuer, "")); err == nil {
		t.Error("token without a company claim must be rejected")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := auth.NewJWTService(testSecret, testIssuer)
	if _, err := svc.Verify("not-a-token"); err == nil {
		t.Error("malformed token must be rejected")
	}
}

func TestSessionAuthentication(t *testing.T) {
	if (auth.Session{}).IsAuthenticated() {
		t.Error("empty session must not be authenticated")
	}
	session := auth.Session{User: &auth.Identity{CompanyID: "co-1"}}
	if !session.IsAuthenticated() {
		t.Error("session with a user should be authenticated")
	}
}
