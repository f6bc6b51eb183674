package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
	"github.com/kiasuhub/garang-guni-backend/internal/utils"
)

// ImageHandler owns image upload and retrieval. Payloads are stored
// compressed and inflated on the way out.
type ImageHandler struct {
	Images *repository.ImageRepo
	Items  *repository.ItemRepo
}

func NewImageHandler(im *repository.ImageRepo, it *repository.ItemRepo) *ImageHandler {
	return &ImageHandler{Images: im, Items: it}
}

// Upload handles POST /v1/images (multipart, field "image"), optionally
// attaching to an item via the "item_id" form value.
func (h *ImageHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "image file is required")
	}
	img, status, msg := prepareFileUpload(fh)
	if msg != "" {
		return jsonError(c, status, msg)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if v := c.FormValue("item_id"); v != "" {
		itemID, err := parseUint(v)
		if err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid item_id")
		}
		if _, err := h.Items.GetByID(ctx, itemID); err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return jsonError(c, http.StatusNotFound, "item not found")
			}
			return jsonError(c, http.StatusInternalServerError, "query failed")
		}
		img.ItemID = &itemID
	}
	if err := h.Images.Create(ctx, &img); err != nil {
		return jsonError(c, http.StatusInternalServerError, "store image failed")
	}
	meta := img.Snapshot()
	meta.Data = nil // metadata only; fetch the payload via GET
	return c.JSON(http.StatusCreated, meta)
}

// Get handles GET /v1/images/:id and streams the inflated payload.
func (h *ImageHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	img, err := h.Images.GetByID(ctx, id)
	if err != nil {
		return h.imageError(c, err)
	}
	return h.serve(c, img)
}

// GetByFileName handles GET /v1/images?fileName=. Filenames are not
// unique; the first match by id is served.
func (h *ImageHandler) GetByFileName(c echo.Context) error {
	name := c.QueryParam("fileName")
	if name == "" {
		return jsonError(c, http.StatusBadRequest, "fileName query parameter is required")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	img, err := h.Images.GetByFileName(ctx, name)
	if err != nil {
		return h.imageError(c, err)
	}
	return h.serve(c, img)
}

// Update handles PUT /v1/images/:id, replacing the file payload and
// metadata.
func (h *ImageHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "image file is required")
	}
	img, status, msg := prepareFileUpload(fh)
	if msg != "" {
		return jsonError(c, status, msg)
	}
	img.ID = id

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Images.Update(ctx, &img); err != nil {
		return h.imageError(c, err)
	}
	meta := img.Snapshot()
	meta.Data = nil
	return c.JSON(http.StatusOK, meta)
}

// Delete handles DELETE /v1/images/:id.
func (h *ImageHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Images.Delete(ctx, id); err != nil {
		return h.imageError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// serve inflates stored bytes and writes them with the original MIME type.
func (h *ImageHandler) serve(c echo.Context, img *model.Image) error {
	raw, err := utils.DecompressImage(img.Data)
	if err != nil {
		return jsonError(c, imageErrStatus(err), err.Error())
	}
	mime := img.MimeType
	if mime == "" {
		mime = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Content-Disposition", `inline; filename="`+img.FileName+`"`)
	return c.Blob(http.StatusOK, mime, raw)
}

func (h *ImageHandler) imageError(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrImageNotFound) {
		return jsonError(c, http.StatusNotFound, "image not found")
	}
	return jsonError(c, imageErrStatus(utils.ClassifyIOError(err)), "image storage failed")
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
