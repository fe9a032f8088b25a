package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// stubIssuer implements ports.TokenIssuer with canned verification results.
type stubIssuer struct {
	claims *ports.AccessClaims
	err    error
}

func (s *stubIssuer) IssueAccess(domain.Principal) (string, error)  { return "", nil }
func (s *stubIssuer) IssueRefresh(domain.Principal) (string, error) { return "", nil }
func (s *stubIssuer) IssuePair(domain.Principal) (*ports.TokenPair, error) {
	return &ports.TokenPair{}, nil
}
func (s *stubIssuer) VerifyAccess(string) (*ports.AccessClaims, error)   { return s.claims, s.err }
func (s *stubIssuer) VerifyRefresh(string) (*ports.RefreshClaims, error) { return nil, s.err }

// stubAuth implements ports.AuthService; only ResolvePrincipal matters here.
type stubAuth struct {
	principal *domain.Principal
	err       error
}

func (s *stubAuth) RegisterUser(context.Context, ports.RegisterUserInput) (*domain.User, *ports.TokenPair, error) {
	return nil, nil, nil
}
func (s *stubAuth) RegisterAdmin(context.Context, ports.RegisterAdminInput) (*domain.Admin, error) {
	return nil, nil
}
func (s *stubAuth) LoginUser(context.Context, string, string) (*domain.User, *ports.TokenPair, error) {
	return nil, nil, nil
}
func (s *stubAuth) LoginAdmin(context.Context, string, string) (*domain.Admin, *ports.TokenPair, error) {
	return nil, nil, nil
}
func (s *stubAuth) Refresh(context.Context, string) (*ports.TokenPair, error) { return nil, nil }
func (s *stubAuth) ResolvePrincipal(context.Context, uint, domain.PrincipalType) (*domain.Principal, error) {
	return s.principal, s.err
}

func newAuthContext(t *testing.T, header string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthenticate_ValidToken(t *testing.T) {
	issuer := &stubIssuer{claims: &ports.AccessClaims{ID: 7, Email: "ana@x.com", Type: domain.TypeUser}}
	auth := &stubAuth{principal: &domain.Principal{ID: 7, Email: "ana@x.com", Type: domain.TypeUser}}

	c := newAuthContext(t, "Bearer good-token")
	called := false
	handler := Authenticate(issuer, auth)(func(c echo.Context) error {
		called = true
		p, ok := Principal(c)
		if !ok {
			t.Fatalf("principal not set")
		}
		if p.ID != 7 || p.Type != domain.TypeUser {
			t.Fatalf("unexpected principal: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	handler := Authenticate(&stubIssuer{}, &stubAuth{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(newAuthContext(t, ""))
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthenticate_InvalidHeaderFormat(t *testing.T) {
	handler := Authenticate(&stubIssuer{}, &stubAuth{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(newAuthContext(t, "Token abc"))
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	issuer := &stubIssuer{err: domain.ErrTokenExpired}
	handler := Authenticate(issuer, &stubAuth{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(newAuthContext(t, "Bearer stale"))
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthenticate_DeactivatedAccount(t *testing.T) {
	issuer := &stubIssuer{claims: &ports.AccessClaims{ID: 7, Type: domain.TypeUser}}
	auth := &stubAuth{err: domain.ErrAccountDisabled}
	handler := Authenticate(issuer, auth)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(newAuthContext(t, "Bearer good-token"))
	if !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}
