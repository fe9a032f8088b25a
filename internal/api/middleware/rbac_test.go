package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

func rbacContext(p *domain.Principal) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if p != nil {
		SetPrincipal(c, p)
	}
	return c
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	c := rbacContext(&domain.Principal{ID: 1, Type: domain.TypeAdmin, Rol: domain.RoleAdmin})

	called := false
	handler := RequireAdmin()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireAdmin_ForbidsUser(t *testing.T) {
	c := rbacContext(&domain.Principal{ID: 1, Type: domain.TypeUser})

	handler := RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireAdmin_NoPrincipal(t *testing.T) {
	handler := RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(rbacContext(nil)); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestRequireSuperAdmin_ForbidsPlainAdmin(t *testing.T) {
	c := rbacContext(&domain.Principal{ID: 1, Type: domain.TypeAdmin, Rol: domain.RoleAdmin})

	handler := RequireSuperAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireSuperAdmin_AllowsSuperAdmin(t *testing.T) {
	c := rbacContext(&domain.Principal{ID: 1, Type: domain.TypeAdmin, Rol: domain.RoleSuperAdmin})

	called := false
	handler := RequireSuperAdmin()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}
