package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dashportal/auth-service/internal/api/middleware"
	"github.com/dashportal/auth-service/internal/core/domain"
	"github.com/dashportal/auth-service/internal/core/ports"
)

// ProtectedHandler serves the demonstration routes behind the auth gates.
type ProtectedHandler struct {
	users ports.AuthRepository
}

func NewProtectedHandler(users ports.AuthRepository) *ProtectedHandler {
	return &ProtectedHandler{users: users}
}

type profileResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// Profile returns the authenticated user's own record.
//
// @Summary      Get the authenticated user's profile
// @Tags         protected
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/protected/profile [get]
func (h *ProtectedHandler) Profile(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	// Re-read the record so the response carries fields the token does not,
	// such as created_at. A user deleted mid-request fails closed.
	user, err := h.users.FindByID(c.Request().Context(), id.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Message: "Welcome to your profile!",
		User:    user,
	})
}

// AdminDashboard is reachable only with the admin role.
//
// @Summary      Admin dashboard
// @Tags         protected
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/protected/admin-dashboard [get]
func (h *ProtectedHandler) AdminDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Welcome to the Admin Dashboard!"})
}

// UserDashboard is reachable with the user or admin role.
//
// @Summary      User dashboard
// @Tags         protected
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/protected/user-dashboard [get]
func (h *ProtectedHandler) UserDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Welcome to the User Dashboard!"})
}

// PublicData is reachable by any authenticated role.
//
// @Summary      Data shared by all roles
// @Tags         protected
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/protected/public-data [get]
func (h *ProtectedHandler) PublicData(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "This data is accessible to both admin and regular users."})
}
