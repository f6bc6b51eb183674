package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
	"github.com/kiasuhub/garang-guni-backend/internal/utils"
)

// ContactHandler owns the contact-us support form.
type ContactHandler struct {
	Contacts *repository.ContactRepo
}

func NewContactHandler(r *repository.ContactRepo) *ContactHandler {
	return &ContactHandler{Contacts: r}
}

type contactReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// Create handles POST /v1/contacts. The message is HTML-stripped before
// validation, so markup-only messages are rejected as empty.
func (h *ContactHandler) Create(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	contact := &model.Contact{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   utils.StripHTML(req.Message),
	}
	if err := contact.Validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Contacts.Create(ctx, contact); err != nil {
		return jsonError(c, http.StatusInternalServerError, "create contact failed")
	}
	return c.JSON(http.StatusCreated, contact)
}

// List handles GET /v1/contacts: all tickets, unpaginated by contract.
func (h *ContactHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Contacts.List(ctx)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}
