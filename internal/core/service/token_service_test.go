package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

func testTokenService() *TokenService {
	return NewTokenService(TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
		Issuer:        "commerce-api-test",
	})
}

func TestTokenServiceAccessRoundTrip(t *testing.T) {
	svc := testTokenService()
	p := domain.Principal{ID: 42, Email: "ana@example.com", Type: domain.TypeAdmin, Rol: domain.RoleSuperAdmin}

	token, err := svc.IssueAccess(p)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := svc.VerifyAccess(token)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.ID != 42 || claims.Email != "ana@example.com" || claims.Type != domain.TypeAdmin || claims.Rol != domain.RoleSuperAdmin {
		t.Errorf("claims = %+v, want the issued principal back", claims)
	}
}

func TestTokenServiceRefreshCarriesIdentityOnly(t *testing.T) {
	svc := testTokenService()
	p := domain.Principal{ID: 7, Email: "ana@example.com", Type: domain.TypeUser}

	token, err := svc.IssueRefresh(p)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := svc.VerifyRefresh(token)
	if err != nil {
		t.Fatalf("VerifyRefresh: %v", err)
	}
	if claims.ID != 7 || claims.Type != domain.TypeUser {
		t.Errorf("claims = %+v, want {7 user}", claims)
	}

	// The payload must not contain the email.
	if strings.Contains(token, "ana") {
		t.Error("refresh token embeds the plain email")
	}
}

func TestTokenServiceSecretsAreNotInterchangeable(t *testing.T) {
	svc := testTokenService()
	p := domain.Principal{ID: 1, Email: "x@example.com", Type: domain.TypeUser}

	refresh, err := svc.IssueRefresh(p)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	if _, err := svc.VerifyAccess(refresh); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("VerifyAccess(refresh token) = %v, want ErrTokenInvalid", err)
	}

	access, err := svc.IssueAccess(p)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := svc.VerifyRefresh(access); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("VerifyRefresh(access token) = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenServiceExpired(t *testing.T) {
	svc := testTokenService()
	// The constructor replaces non-positive TTLs with defaults, so force the
	// negative lifetime after the fact.
	svc.cfg.AccessTTL = -time.Minute

	token, err := svc.IssueAccess(domain.Principal{ID: 1, Type: domain.TypeUser})
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := svc.VerifyAccess(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("VerifyAccess(expired) = %v, want ErrTokenExpired", err)
	}
}

func TestTokenServiceTampered(t *testing.T) {
	svc := testTokenService()
	token, err := svc.IssueAccess(domain.Principal{ID: 1, Type: domain.TypeUser})
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.VerifyAccess(tampered); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("VerifyAccess(tampered) = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenServiceIssuerMismatch(t *testing.T) {
	other := NewTokenService(TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
		Issuer:        "someone-else",
	})
	token, err := other.IssueAccess(domain.Principal{ID: 1, Type: domain.TypeUser})
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	svc := testTokenService()
	if _, err := svc.VerifyAccess(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("VerifyAccess(foreign issuer) = %v, want ErrTokenInvalid", err)
	}
}
