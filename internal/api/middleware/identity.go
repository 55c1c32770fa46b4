package middleware

import "github.com/labstack/echo/v4"

// identityKey is the echo context key under which Auth stores the identity.
// It is private so the only way in or out is SetIdentity / IdentityFrom.
const identityKey = "auth.identity"

// Identity is the per-request authenticated principal populated by Auth and
// consumed by RBAC and handlers. It lives only for the request that carried
// the token; nothing is cached across requests.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

// SetIdentity attaches the identity to the request context.
func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity placed in the context by Auth. The second
// return is false when Auth has not run for this request.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
