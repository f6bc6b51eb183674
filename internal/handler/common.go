package handler // handler defines http handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// errorBody is the uniform error response: a message plus an RFC3339
// timestamp.
type errorBody struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// jsonError writes the uniform error body with the given status.
func jsonError(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorBody{Message: msg, Timestamp: time.Now().UTC()})
}

// reqCtx derives a bounded context from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
