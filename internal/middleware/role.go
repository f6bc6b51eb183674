package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// RequireRole returns a middleware enforcing that the authenticated
// identity carries one of the allowed roles. It assumes JWTAuth ran
// earlier on the chain; an anonymous request is rejected outright.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok || !allowed[id.Role] {
				return c.JSON(http.StatusForbidden, authError{
					Message:   "forbidden",
					Timestamp: time.Now().UTC(),
				})
			}
			return next(c)
		}
	}
}
