package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
)

// AvailabilityHandler owns dealer availability publishing and search.
type AvailabilityHandler struct {
	Slots   *repository.AvailabilityRepo
	Dealers *repository.ScrapDealerRepo
}

func NewAvailabilityHandler(s *repository.AvailabilityRepo, d *repository.ScrapDealerRepo) *AvailabilityHandler {
	return &AvailabilityHandler{Slots: s, Dealers: d}
}

type availabilityReq struct {
	ScrapDealerID uint64 `json:"scrap_dealer_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	LocationID    uint64 `json:"location_id"`
}

// Create handles POST /v1/availability: a dealer publishes a
// (date, location) slot.
func (h *AvailabilityHandler) Create(c echo.Context) error {
	var req availabilityReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	date := strings.TrimSpace(req.Date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return jsonError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Dealers.GetByID(ctx, req.ScrapDealerID); err != nil {
		if errors.Is(err, repository.ErrScrapDealerNotFound) {
			return jsonError(c, http.StatusNotFound, "scrap dealer not found")
		}
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	a := &model.Availability{
		ScrapDealerID: req.ScrapDealerID,
		Date:          date,
		LocationID:    req.LocationID,
	}
	if err := h.Slots.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return jsonError(c, http.StatusNotFound, "location not found")
		}
		return jsonError(c, http.StatusInternalServerError, "create availability failed")
	}
	return c.JSON(http.StatusCreated, a)
}

// Search handles GET /v1/availability/search?date=&location=. Both filters
// are optional; date must be YYYY-MM-DD when present.
func (h *AvailabilityHandler) Search(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return jsonError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
	}
	location := strings.TrimSpace(c.QueryParam("location"))

	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Slots.Search(ctx, date, location)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "search failed")
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}

// Delete handles DELETE /v1/availability/:id.
func (h *AvailabilityHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Slots.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAvailabilityNotFound) {
			return jsonError(c, http.StatusNotFound, "availability not found")
		}
		return jsonError(c, http.StatusInternalServerError, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}
