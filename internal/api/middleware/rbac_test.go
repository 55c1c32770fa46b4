package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dashportal/auth-service/internal/core/domain"
)

func rbacContext(identity *Identity) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		SetIdentity(c, *identity)
	}
	return c, rec, e
}

func TestRBAC_Allows(t *testing.T) {
	c, rec, _ := rbacContext(&Identity{UserID: "1", Username: "alice", Role: domain.RoleAdmin})

	called := false
	handler := RBAC(domain.RoleAdmin, domain.RoleUser)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_ForbidsRoleOutsideSet(t *testing.T) {
	c, rec, e := rbacContext(&Identity{UserID: "1", Username: "bob", Role: domain.RoleUser})

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("next must not run for a role outside the set")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

// Roles are flat: admin does not pass a gate that only allows "user".
func TestRBAC_NoRoleHierarchy(t *testing.T) {
	c, rec, e := rbacContext(&Identity{UserID: "1", Username: "alice", Role: domain.RoleAdmin})

	handler := RBAC(domain.RoleUser)(func(c echo.Context) error {
		t.Fatalf("admin must not satisfy a user-only gate")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_MissingIdentity(t *testing.T) {
	c, rec, e := rbacContext(nil)

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("next must not run without an identity")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
