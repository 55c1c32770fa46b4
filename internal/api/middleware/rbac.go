package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dashportal/auth-service/internal/api/metrics"
)

// RBAC is the authorization gate: a pure membership test of the authenticated
// identity's role against a static allowed set. Roles are flat — admin does
// not pass a gate that only allows "user".
//
// RBAC must be composed after Auth on every route. A request arriving here
// without an identity is a composition error; it is rejected with 403 rather
// than handled as a supported case.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				metrics.AuthzDecisionsTotal.WithLabelValues("deny", "").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			if _, ok := allowed[id.Role]; !ok {
				metrics.AuthzDecisionsTotal.WithLabelValues("deny", id.Role).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			metrics.AuthzDecisionsTotal.WithLabelValues("allow", id.Role).Inc()
			return next(c)
		}
	}
}
