package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/middleware"
	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
)

// ScrapDealerHandler owns dealer profile endpoints. Routes are gated on
// the SCRAP_DEALER role at the router layer.
type ScrapDealerHandler struct {
	Dealers *repository.ScrapDealerRepo
	Slots   *repository.AvailabilityRepo
}

func NewScrapDealerHandler(d *repository.ScrapDealerRepo, s *repository.AvailabilityRepo) *ScrapDealerHandler {
	return &ScrapDealerHandler{Dealers: d, Slots: s}
}

type dealerReq struct {
	CompanyName   string `json:"company_name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
}

// Create handles POST /v1/scrapdealers: the authenticated dealer account
// registers its profile.
func (h *ScrapDealerHandler) Create(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return jsonError(c, http.StatusUnauthorized, "unauthorized")
	}
	var req dealerReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		return jsonError(c, http.StatusBadRequest, "company_name is required")
	}
	d := &model.ScrapDealer{
		UserID:        id.UserID,
		CompanyName:   strings.TrimSpace(req.CompanyName),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Email:         strings.TrimSpace(req.Email),
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Dealers.Create(ctx, d); err != nil {
		return jsonError(c, http.StatusInternalServerError, "create dealer failed")
	}
	return c.JSON(http.StatusCreated, d)
}

// Get handles GET /v1/scrapdealers/:id, including the dealer's published
// slots.
func (h *ScrapDealerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.Dealers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrScrapDealerNotFound) {
			return jsonError(c, http.StatusNotFound, "scrap dealer not found")
		}
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	slots, err := h.Slots.ListByDealer(ctx, id)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, map[string]any{"dealer": d, "availability": slots})
}

// List handles GET /v1/scrapdealers.
func (h *ScrapDealerHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Dealers.List(ctx)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}

// Delete handles DELETE /v1/scrapdealers/:id and removes the profile with
// its availability slots.
func (h *ScrapDealerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Dealers.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrScrapDealerNotFound) {
			return jsonError(c, http.StatusNotFound, "scrap dealer not found")
		}
		return jsonError(c, http.StatusInternalServerError, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}
