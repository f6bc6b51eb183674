package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
)

// LocationHandler owns location CRUD.
type LocationHandler struct {
	Locations *repository.LocationRepo
}

func NewLocationHandler(l *repository.LocationRepo) *LocationHandler {
	return &LocationHandler{Locations: l}
}

type locationReq struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (req *locationReq) toModel() (*model.Location, error) {
	l := &model.Location{
		Name:      strings.TrimSpace(req.Name),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if l.Name == "" {
		return nil, errors.New("name is required")
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Create handles POST /v1/locations.
func (h *LocationHandler) Create(c echo.Context) error {
	var req locationReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	l, err := req.toModel()
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Locations.Create(ctx, l); err != nil {
		return jsonError(c, http.StatusInternalServerError, "create location failed")
	}
	return c.JSON(http.StatusCreated, l)
}

// Get handles GET /v1/locations/:id.
func (h *LocationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	l, err := h.Locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return jsonError(c, http.StatusNotFound, "location not found")
		}
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, l)
}

// List handles GET /v1/locations.
func (h *LocationHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Locations.List(ctx)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}

// Update handles PUT /v1/locations/:id.
func (h *LocationHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	var req locationReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	l, err := req.toModel()
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	l.ID = id

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Locations.Update(ctx, l); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return jsonError(c, http.StatusNotFound, "location not found")
		}
		return jsonError(c, http.StatusInternalServerError, "update failed")
	}
	updated, err := h.Locations.GetByID(ctx, id)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/locations/:id.
func (h *LocationHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Locations.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return jsonError(c, http.StatusNotFound, "location not found")
		}
		return jsonError(c, http.StatusInternalServerError, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}
