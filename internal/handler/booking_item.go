package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
)

// AddItem handles POST /v1/bookings/:id/items: create an item already
// attached to the booking.
func (h *BookingHandler) AddItem(c echo.Context) error {
	bookingID, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	it := model.Item{Name: strings.TrimSpace(req.Name), Description: strings.TrimSpace(req.Description)}
	if err := it.Validate(); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Bookings.AddNewItem(ctx, bookingID, &it); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return jsonError(c, http.StatusNotFound, "booking not found")
		}
		return jsonError(c, http.StatusInternalServerError, "add item failed")
	}
	return c.JSON(http.StatusCreated, it.Snapshot())
}

// AttachItem handles PUT /v1/bookings/:id/items/:itemId: re-point an
// existing item at the booking.
func (h *BookingHandler) AttachItem(c echo.Context) error {
	bookingID, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid item id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Bookings.AttachItem(ctx, bookingID, itemID); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return jsonError(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, repository.ErrItemNotFound):
			return jsonError(c, http.StatusNotFound, "item not found")
		default:
			return jsonError(c, http.StatusInternalServerError, "attach item failed")
		}
	}
	items, err := h.Bookings.ListItems(ctx, bookingID)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, model.CloneItems(items))
}

// ListItems handles GET /v1/bookings/:id/items. The list is always an
// array (possibly empty), each element an independent copy.
func (h *BookingHandler) ListItems(c echo.Context) error {
	bookingID, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return jsonError(c, http.StatusNotFound, "booking not found")
		}
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	items, err := h.Bookings.ListItems(ctx, bookingID)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, model.CloneItems(items))
}
