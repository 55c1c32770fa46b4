package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dashportal/auth-service/internal/core/domain"
)

func TestResolveError_DomainMappings(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	log := zerolog.Nop()

	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUserExists, http.StatusBadRequest},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{errors.New("mongo timeout"), http.StatusInternalServerError},
		{echo.NewHTTPError(http.StatusForbidden, "forbidden"), http.StatusForbidden},
	}
	for _, tc := range cases {
		code, _ := resolveError(tc.err, log, c)
		if code != tc.code {
			t.Fatalf("error %v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestResolveError_HidesInternalDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, msg := resolveError(errors.New("dial tcp 10.0.0.5:27017: connection refused"), zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Fatalf("internal error detail leaked: %q", msg)
	}
}
