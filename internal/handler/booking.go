package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/queue"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
	"github.com/kiasuhub/garang-guni-backend/internal/service"
	"github.com/kiasuhub/garang-guni-backend/internal/utils"
)

// bookingStore is the slice of the booking repository the handler
// depends on. *repository.BookingRepo satisfies it.
type bookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (*model.Booking, error)
	Update(ctx context.Context, b *model.Booking) error
	Delete(ctx context.Context, id uint64) (*model.Booking, error)
	AddNewItem(ctx context.Context, bookingID uint64, it *model.Item) error
	AttachItem(ctx context.Context, bookingID, itemID uint64) error
	ListItems(ctx context.Context, bookingID uint64) ([]model.Item, error)
}

// locationReader resolves location ids referenced by bookings.
type locationReader interface {
	GetByID(ctx context.Context, id uint64) (*model.Location, error)
}

// BookingHandler owns the booking aggregate endpoints.
type BookingHandler struct {
	Bookings  bookingStore
	Locations locationReader
}

func NewBookingHandler(b *repository.BookingRepo, l *repository.LocationRepo) *BookingHandler {
	return &BookingHandler{Bookings: b, Locations: l}
}

// ----- DTOs -----

type imageReq struct {
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	Data     []byte `json:"data"` // base64 in JSON
}

type itemReq struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Images      []imageReq `json:"images"`
}

type bookingReq struct {
	UserID           string    `json:"user_id"`
	BookingDateTime  time.Time `json:"booking_date_time"`
	AppointmentTime  time.Time `json:"appointment_date_time"`
	LocationID       *uint64   `json:"location_id"`
	SameAsRegistered bool      `json:"collection_address_same_as_registered"`
	CollectionType   string    `json:"collection_type"`
	PaymentMethod    string    `json:"payment_method"`
	Remarks          string    `json:"remarks"`
	Items            []itemReq `json:"items"`
}

// Create handles POST /v1/bookings. The body is either JSON (images inline
// as base64) or multipart with a "booking" JSON field and file parts named
// "images[<item index>]" ("images" attaches to item 0). Client-supplied ids
// are ignored; the persisted aggregate with generated ids is returned.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingReq
	var files map[int][]*multipart.FileHeader

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid multipart form")
		}
		raw := c.FormValue("booking")
		if raw == "" {
			return jsonError(c, http.StatusBadRequest, "booking field is required")
		}
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid booking payload")
		}
		var msg string
		if files, msg = groupItemFiles(form); msg != "" {
			return jsonError(c, http.StatusBadRequest, msg)
		}
	} else if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}

	b, status, msg := buildBooking(&req, files)
	if msg != "" {
		return jsonError(c, status, msg)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if req.LocationID != nil {
		if _, err := h.Locations.GetByID(ctx, *req.LocationID); err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return jsonError(c, http.StatusNotFound, "location not found")
			}
			return jsonError(c, http.StatusInternalServerError, "query failed")
		}
		b.LocationID = req.LocationID
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		return jsonError(c, http.StatusInternalServerError, "create booking failed")
	}

	created, err := h.Bookings.GetByID(ctx, b.ID)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "load booking failed")
	}
	// Best effort: a broker outage must not fail the booking request.
	_ = service.PublishBookingCreated(c.Request().Context(), queue.BookingCreatedEvent{
		BookingID:       created.ID,
		UserID:          created.UserID,
		AppointmentTime: created.AppointmentTime.UTC().Format(time.RFC3339),
		CollectionType:  string(created.CollectionType),
		PaymentMethod:   string(created.PaymentMethod),
		ItemCount:       len(created.Items),
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, created.Snapshot())
}

// Get handles GET /v1/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return jsonError(c, http.StatusNotFound, "booking not found")
		}
		return jsonError(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, b.Snapshot())
}

// Update handles PUT /v1/bookings/:id with full-replace semantics on the
// scalar field set; location and items are never touched here.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid body")
	}
	if !model.ValidCollectionType(model.CollectionType(req.CollectionType)) {
		return jsonError(c, http.StatusBadRequest, "invalid collection_type")
	}
	if !model.ValidPaymentMethod(model.PaymentMethod(req.PaymentMethod)) {
		return jsonError(c, http.StatusBadRequest, "invalid payment_method")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	b := &model.Booking{
		ID:               id,
		UserID:           req.UserID,
		BookingDateTime:  req.BookingDateTime,
		AppointmentTime:  req.AppointmentTime,
		SameAsRegistered: req.SameAsRegistered,
		CollectionType:   model.CollectionType(req.CollectionType),
		PaymentMethod:    model.PaymentMethod(req.PaymentMethod),
		Remarks:          req.Remarks,
	}
	if err := h.Bookings.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return jsonError(c, http.StatusNotFound, "booking not found")
		}
		return jsonError(c, http.StatusInternalServerError, "update failed")
	}
	updated, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "load booking failed")
	}
	return c.JSON(http.StatusOK, updated.Snapshot())
}

// Delete handles DELETE /v1/bookings/:id and returns the pre-deletion
// snapshot.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	snapshot, err := h.Bookings.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return jsonError(c, http.StatusNotFound, "booking not found")
		}
		return jsonError(c, http.StatusInternalServerError, "delete failed")
	}
	return c.JSON(http.StatusOK, snapshot.Snapshot())
}

// buildBooking converts the DTO (plus any multipart files) into a model
// aggregate, validating enums, item fields and image uploads. On failure
// it returns a status and message for jsonError.
func buildBooking(req *bookingReq, files map[int][]*multipart.FileHeader) (*model.Booking, int, string) {
	if !model.ValidCollectionType(model.CollectionType(req.CollectionType)) {
		return nil, http.StatusBadRequest, "invalid collection_type"
	}
	if !model.ValidPaymentMethod(model.PaymentMethod(req.PaymentMethod)) {
		return nil, http.StatusBadRequest, "invalid payment_method"
	}
	b := &model.Booking{
		UserID:           req.UserID,
		BookingDateTime:  req.BookingDateTime,
		AppointmentTime:  req.AppointmentTime,
		SameAsRegistered: req.SameAsRegistered,
		CollectionType:   model.CollectionType(req.CollectionType),
		PaymentMethod:    model.PaymentMethod(req.PaymentMethod),
		Remarks:          req.Remarks,
	}
	for idx, ir := range req.Items {
		it := model.Item{Name: strings.TrimSpace(ir.Name), Description: strings.TrimSpace(ir.Description)}
		if err := it.Validate(); err != nil {
			return nil, http.StatusBadRequest, err.Error()
		}
		for _, im := range ir.Images {
			img, status, msg := prepareUpload(im.FileName, im.MimeType, im.Data)
			if msg != "" {
				return nil, status, msg
			}
			it.Images = append(it.Images, img)
		}
		for _, fh := range files[idx] {
			img, status, msg := prepareFileUpload(fh)
			if msg != "" {
				return nil, status, msg
			}
			it.Images = append(it.Images, img)
		}
		b.Items = append(b.Items, it)
	}
	for idx := range files {
		if idx >= len(req.Items) {
			return nil, http.StatusBadRequest, "image field references missing item " + strconv.Itoa(idx)
		}
	}
	return b, 0, ""
}

// prepareUpload validates and compresses inline image bytes.
func prepareUpload(fileName, mimeType string, data []byte) (model.Image, int, string) {
	if !utils.IsImage(fileName) {
		return model.Image{}, http.StatusBadRequest, "unsupported image type"
	}
	compressed, err := utils.CompressImage(data)
	if err != nil {
		return model.Image{}, imageErrStatus(err), err.Error()
	}
	return model.Image{
		FileName:   fileName,
		StoredName: uuid.NewString() + storedExt(fileName),
		MimeType:   mimeType,
		Data:       compressed,
	}, 0, ""
}

// prepareFileUpload reads a multipart file part and compresses it.
func prepareFileUpload(fh *multipart.FileHeader) (model.Image, int, string) {
	if !utils.IsImage(fh.Filename) {
		return model.Image{}, http.StatusBadRequest, "unsupported image type"
	}
	f, err := fh.Open()
	if err != nil {
		err = utils.ClassifyIOError(err)
		return model.Image{}, imageErrStatus(err), err.Error()
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		err = utils.ClassifyIOError(err)
		return model.Image{}, imageErrStatus(err), err.Error()
	}
	return prepareUpload(fh.Filename, fh.Header.Get("Content-Type"), data)
}

// groupItemFiles maps multipart file parts onto item indexes. "images"
// attaches to item 0; "images[n]" attaches to item n. A malformed or
// negative index is reported rather than dropped so a client typo never
// silently loses an upload.
func groupItemFiles(form *multipart.Form) (map[int][]*multipart.FileHeader, string) {
	out := map[int][]*multipart.FileHeader{}
	for field, fhs := range form.File {
		idx := 0
		switch {
		case field == "images":
		case strings.HasPrefix(field, "images[") && strings.HasSuffix(field, "]"):
			n, err := strconv.Atoi(field[len("images[") : len(field)-1])
			if err != nil || n < 0 {
				return nil, "invalid image field " + strconv.Quote(field)
			}
			idx = n
		default:
			continue
		}
		out[idx] = append(out[idx], fhs...)
	}
	return out, ""
}

func storedExt(fileName string) string {
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		return strings.ToLower(fileName[i:])
	}
	return ""
}

// imageErrStatus maps the storage error taxonomy onto status codes.
func imageErrStatus(err error) int {
	switch {
	case errors.Is(err, utils.ErrUnsupportedImage), errors.Is(err, utils.ErrCorruptImage):
		return http.StatusBadRequest
	case errors.Is(err, utils.ErrStorageFull):
		return http.StatusInsufficientStorage
	case errors.Is(err, utils.ErrFileSystem):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
