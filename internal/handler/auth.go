package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/config"
	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
	"github.com/kiasuhub/garang-guni-backend/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type signupReq struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"` // CUSTOMER | SCRAP_DEALER
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User    model.User `json:"user"`
	Access  tokenPart  `json:"access"`
	Refresh tokenPart  `json:"refresh"`
}

// Signup creates a user and returns tokens immediately. The access token's
// email claim always equals the submitted email. Duplicate emails yield 409.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return jsonError(c, http.StatusBadRequest, "email and password are required")
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "hash password failed")
	}
	u := model.User{
		Email:         req.Email,
		PasswordHash:  hash,
		Role:          model.ParseRole(strings.ToUpper(strings.TrimSpace(req.Role))),
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Address:       strings.TrimSpace(req.Address),
		DateOfBirth:   strings.TrimSpace(req.DateOfBirth),
		Gender:        strings.TrimSpace(req.Gender),
		IsActive:      true,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, &u)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return jsonError(c, http.StatusConflict, "email already exists")
		}
		return jsonError(c, http.StatusInternalServerError, "create user failed")
	}
	u.ID = uid

	stored, err := h.Users.GetByID(ctx, uid)
	if err == nil {
		u = stored
	}
	return h.issueTokens(c, ctx, u, http.StatusCreated)
}

// Login verifies credentials and returns a new token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return jsonError(c, http.StatusBadRequest, "email and password are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return jsonError(c, http.StatusForbidden, "invalid credentials")
		}
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return jsonError(c, http.StatusForbidden, "invalid credentials")
	}
	return h.issueTokens(c, ctx, u, http.StatusOK)
}

// Refresh validates a refresh token by hash, revokes it and issues a new
// pair (rotation).
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return jsonError(c, http.StatusBadRequest, "refresh_token required")
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := reqCtx(c)
	defer cancel()

	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return jsonError(c, http.StatusForbidden, "invalid refresh token")
	}
	_ = h.Tokens.RevokeByHash(ctx, hash)

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "load user failed")
	}
	return h.issueTokens(c, ctx, u, http.StatusOK)
}

// Logout revokes the refresh token supplied in the body, terminating that
// session.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return jsonError(c, http.StatusBadRequest, "refresh_token required")
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
		return jsonError(c, http.StatusForbidden, "invalid refresh token")
	}
	if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
		return jsonError(c, http.StatusInternalServerError, "logout failed")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) issueTokens(c echo.Context, ctx context.Context, u model.User, status int) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, u.FirstName, u.LastName, string(u.Role), h.Cfg.AccessTTLMin)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "issue access failed")
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "issue refresh failed")
	}
	if err := h.Tokens.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return jsonError(c, http.StatusInternalServerError, "save refresh failed")
	}
	return c.JSON(status, authResp{
		User:    u,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}
