package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dashportal/auth-service/internal/api/metrics"
	"github.com/dashportal/auth-service/internal/core/domain"
	"github.com/dashportal/auth-service/internal/core/ports"
	"github.com/dashportal/auth-service/internal/core/token"
)

// Auth is the authentication gate. It extracts the bearer token from the
// Authorization header, verifies it, resolves the subject to a live
// credential record and stores the resulting Identity in the request context.
//
// A missing header, a malformed header, a failed verification and a subject
// that no longer exists are distinct causes in logs and metrics but all
// surface as the same 401 to the client. The role comes from the token
// claims; the store lookup supplies the live record and fails closed when
// the user was deleted after issuance.
func Auth(verifier *token.Issuer, users ports.AuthRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subjectID, role, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid_token").Inc()
				log.Debug().Str("path", c.Path()).Msg("bearer token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), subjectID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenVerificationsTotal.WithLabelValues("unknown_subject").Inc()
					log.Debug().Str("subject", subjectID).Msg("token subject no longer exists")
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			SetIdentity(c, Identity{
				UserID:   user.ID,
				Username: user.Username,
				Role:     role,
			})

			return next(c)
		}
	}
}
