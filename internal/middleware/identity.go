package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// identityKey is the single context key under which the authenticated
// identity lives. Handlers go through IdentityFrom instead of poking raw
// context values.
const identityKey = "identity"

// Identity is the request-scoped authenticated principal resolved once by
// the JWT middleware.
type Identity struct {
	UserID    uint64
	Email     string
	FirstName string
	LastName  string
	Role      model.Role
}

// IdentityFrom returns the identity installed by JWTAuth, or false when the
// request is anonymous.
func IdentityFrom(c echo.Context) (Identity, bool) {
	v, ok := c.Get(identityKey).(Identity)
	return v, ok
}

func setIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}
