package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
)

// ItemHandler owns standalone item CRUD.
type ItemHandler struct {
	Items *repository.ItemRepo
}

func NewItemHandler(i *repository.ItemRepo) *ItemHandler { return &ItemHandler{Items: i} }

// Create handles POST /v1/items: a standalone item, optionally with inline
// images, not yet attached to any booking.
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	it := model.Item{Name: strings.TrimSpace(req.Name), Description: strings.TrimSpace(req.Description)}
	if err := it.Validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	for _, im := range req.Images {
		img, status, msg := prepareUpload(im.FileName, im.MimeType, im.Data)
		if msg != "" {
			return jsonError(c, status, msg)
		}
		it.Images = append(it.Images, img)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Items.Create(ctx, &it); err != nil {
		return jsonError(c, http.StatusInternalServerError, "create item failed")
	}
	created, err := h.Items.GetByID(ctx, it.ID)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "load item failed")
	}
	return c.JSON(http.StatusCreated, created.Snapshot())
}

// Get handles GET /v1/items/:id.
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	it, err := h.Items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return jsonError(c, http.StatusNotFound, "item not found")
		}
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, it.Snapshot())
}

// List handles GET /v1/items.
func (h *ItemHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Items.List(ctx)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, model.CloneItems(items))
}

// Update handles PUT /v1/items/:id: replaces name, description and the
// full image set.
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	it := model.Item{ID: id, Name: strings.TrimSpace(req.Name), Description: strings.TrimSpace(req.Description)}
	if err := it.Validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	for _, im := range req.Images {
		img, status, msg := prepareUpload(im.FileName, im.MimeType, im.Data)
		if msg != "" {
			return jsonError(c, status, msg)
		}
		it.Images = append(it.Images, img)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Items.Update(ctx, &it); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return jsonError(c, http.StatusNotFound, "item not found")
		}
		return jsonError(c, http.StatusInternalServerError, "update failed")
	}
	updated, err := h.Items.GetByID(ctx, id)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "load item failed")
	}
	return c.JSON(http.StatusOK, updated.Snapshot())
}

// Delete handles DELETE /v1/items/:id.
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Items.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return jsonError(c, http.StatusNotFound, "item not found")
		}
		return jsonError(c, http.StatusInternalServerError, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}
