package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/middleware"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
)

// UserHandler exposes the authenticated user's profile and the ADMIN
// user listing.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(u *repository.UserRepo) *UserHandler { return &UserHandler{Users: u} }

// Me returns the current user's record.
func (h *UserHandler) Me(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return jsonError(c, http.StatusUnauthorized, "unauthorized")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return jsonError(c, http.StatusNotFound, "user not found")
		}
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, u)
}

type profileReq struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
}

// UpdateProfile is the self-service profile update. Email, role and
// password are not mutable through this path.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return jsonError(c, http.StatusUnauthorized, "unauthorized")
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return jsonError(c, http.StatusNotFound, "user not found")
		}
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	u.FirstName = strings.TrimSpace(req.FirstName)
	u.LastName = strings.TrimSpace(req.LastName)
	u.ContactNumber = strings.TrimSpace(req.ContactNumber)
	u.Address = strings.TrimSpace(req.Address)
	u.DateOfBirth = strings.TrimSpace(req.DateOfBirth)
	u.Gender = strings.TrimSpace(req.Gender)

	if err := h.Users.UpdateProfile(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return jsonError(c, http.StatusNotFound, "user not found")
		}
		return jsonError(c, http.StatusInternalServerError, "update failed")
	}
	updated, err := h.Users.GetByID(ctx, id.UserID)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, updated)
}

// ListUsers is the ADMIN-only account listing.
func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, map[string]any{"items": users})
}
