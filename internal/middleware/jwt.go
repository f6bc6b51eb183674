package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/utils"
)

type authError struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and installs the authenticated identity into the request context. The
// middleware short-circuits on failure: a rejected request never reaches
// the handler chain.
//
// Responses: 401 when no bearer token is present, 403 when the token is
// expired or otherwise invalid.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, authError{
					Message:   "missing bearer token",
					Timestamp: time.Now().UTC(),
				})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, utils.ErrTokenExpired) {
					msg = "token expired"
				}
				return c.JSON(http.StatusForbidden, authError{
					Message:   msg,
					Timestamp: time.Now().UTC(),
				})
			}
			uid, err := claims.UserID()
			if err != nil {
				return c.JSON(http.StatusForbidden, authError{
					Message:   "invalid token",
					Timestamp: time.Now().UTC(),
				})
			}
			setIdentity(c, Identity{
				UserID:    uid,
				Email:     claims.Email,
				FirstName: claims.FirstName,
				LastName:  claims.LastName,
				Role:      model.Role(claims.Role),
			})
			return next(c)
		}
	}
}
