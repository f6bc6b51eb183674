package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/model"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
)

// fakeBookingStore is an in-memory bookingStore mirroring the repository
// semantics the handlers rely on: not-found errors on missing ids and
// snapshots on every read. writes counts mutations so tests can assert
// that failed operations left the store untouched.
type fakeBookingStore struct {
	bookings map[uint64]*model.Booking
	locs     map[uint64]*model.Location
	nextID   uint64
	writes   int
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{
		bookings: map[uint64]*model.Booking{},
		locs:     map[uint64]*model.Location{},
	}
}

func (f *fakeBookingStore) Create(_ context.Context, b *model.Booking) error {
	f.nextID++
	b.ID = f.nextID
	cp := b.Snapshot()
	f.bookings[b.ID] = &cp
	f.writes++
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, id uint64) (*model.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	cp := b.Snapshot()
	if cp.LocationID != nil {
		if l, ok := f.locs[*cp.LocationID]; ok {
			lc := *l
			cp.Location = &lc
		}
	}
	return &cp, nil
}

func (f *fakeBookingStore) Update(_ context.Context, b *model.Booking) error {
	cur, ok := f.bookings[b.ID]
	if !ok {
		return repository.ErrBookingNotFound
	}
	cur.UserID = b.UserID
	cur.BookingDateTime = b.BookingDateTime
	cur.AppointmentTime = b.AppointmentTime
	cur.SameAsRegistered = b.SameAsRegistered
	cur.CollectionType = b.CollectionType
	cur.PaymentMethod = b.PaymentMethod
	cur.Remarks = b.Remarks
	f.writes++
	return nil
}

func (f *fakeBookingStore) Delete(_ context.Context, id uint64) (*model.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	delete(f.bookings, id)
	f.writes++
	cp := b.Snapshot()
	return &cp, nil
}

func (f *fakeBookingStore) AddNewItem(_ context.Context, bookingID uint64, it *model.Item) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return repository.ErrBookingNotFound
	}
	f.nextID++
	it.ID = f.nextID
	b.Items = append(b.Items, it.Snapshot())
	f.writes++
	return nil
}

func (f *fakeBookingStore) AttachItem(_ context.Context, bookingID, _ uint64) error {
	if _, ok := f.bookings[bookingID]; !ok {
		return repository.ErrBookingNotFound
	}
	return repository.ErrItemNotFound
}

func (f *fakeBookingStore) ListItems(_ context.Context, bookingID uint64) ([]model.Item, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	return model.CloneItems(b.Items), nil
}

type fakeLocations struct{ locs map[uint64]*model.Location }

func (f *fakeLocations) GetByID(_ context.Context, id uint64) (*model.Location, error) {
	l, ok := f.locs[id]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}
	cp := *l
	return &cp, nil
}

// callBooking drives a booking handler with an optional JSON body and
// path parameters, returning the recorder.
func callBooking(t *testing.T, h echo.HandlerFunc, method, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/v1/bookings", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/v1/bookings", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func validBookingBody(locationID string) string {
	loc := ""
	if locationID != "" {
		loc = `"location_id":` + locationID + `,`
	}
	return `{"user_id":"uncle-lim",` + loc +
		`"booking_date_time":"2025-06-01T09:00:00Z",` +
		`"appointment_date_time":"2025-06-02T14:00:00Z",` +
		`"collection_type":"HOME_PICKUP","payment_method":"PAYNOW",` +
		`"items":[{"name":"fridge","description":"two door"}]}`
}

func TestBookingUnknownIDIs404AndNoMutation(t *testing.T) {
	store := newFakeBookingStore()
	h := &BookingHandler{Bookings: store, Locations: &fakeLocations{}}

	cases := []struct {
		name string
		call func() *httptest.ResponseRecorder
	}{
		{"get", func() *httptest.ResponseRecorder {
			return callBooking(t, h.Get, http.MethodGet, "", map[string]string{"id": "99"})
		}},
		{"update", func() *httptest.ResponseRecorder {
			return callBooking(t, h.Update, http.MethodPut, validBookingBody(""), map[string]string{"id": "99"})
		}},
		{"delete", func() *httptest.ResponseRecorder {
			return callBooking(t, h.Delete, http.MethodDelete, "", map[string]string{"id": "99"})
		}},
		{"add item", func() *httptest.ResponseRecorder {
			return callBooking(t, h.AddItem, http.MethodPost,
				`{"name":"fridge","description":"two door"}`, map[string]string{"id": "99"})
		}},
		{"list items", func() *httptest.ResponseRecorder {
			return callBooking(t, h.ListItems, http.MethodGet, "", map[string]string{"id": "99"})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := tc.call()
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rec.Code)
			}
			var body errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Message != "booking not found" {
				t.Fatalf("message = %q", body.Message)
			}
		})
	}
	if store.writes != 0 {
		t.Fatalf("store mutated %d times by failed operations", store.writes)
	}
}

func TestBookingCreateUnknownLocationIs404(t *testing.T) {
	store := newFakeBookingStore()
	h := &BookingHandler{Bookings: store, Locations: &fakeLocations{}}

	rec := callBooking(t, h.Create, http.MethodPost, validBookingBody("42"), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if store.writes != 0 {
		t.Fatal("booking must not be persisted when the location is unknown")
	}
}

func TestBookingLocationRoundTrip(t *testing.T) {
	loc := &model.Location{ID: 1, Name: "Toa Payoh Blk 85", Latitude: 1.3343, Longitude: 103.8563}
	store := newFakeBookingStore()
	store.locs[loc.ID] = loc
	h := &BookingHandler{
		Bookings:  store,
		Locations: &fakeLocations{locs: map[uint64]*model.Location{loc.ID: loc}},
	}

	rec := callBooking(t, h.Create, http.MethodPost, validBookingBody("1"), nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created booking carries no generated id")
	}

	id := fmt.Sprint(created.ID)
	rec = callBooking(t, h.Get, http.MethodGet, "", map[string]string{"id": id})
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if got.Location == nil || got.Location.ID != loc.ID || got.Location.Name != loc.Name {
		t.Fatalf("response does not embed the referenced location: %+v", got.Location)
	}

	rec = callBooking(t, h.Delete, http.MethodDelete, "", map[string]string{"id": id})
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = callBooking(t, h.Get, http.MethodGet, "", map[string]string{"id": id})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestCreateRejectsStrayMultipartImageField(t *testing.T) {
	h := &BookingHandler{Bookings: newFakeBookingStore(), Locations: &fakeLocations{}}

	cases := []struct {
		name  string
		field string
	}{
		{"index beyond items", "images[5]"},
		{"negative index", "images[-1]"},
		{"garbage index", "images[x]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := multipart.NewWriter(&buf)
			if err := w.WriteField("booking", validBookingBody("")); err != nil {
				t.Fatalf("write booking field: %v", err)
			}
			fw, err := w.CreateFormFile(tc.field, "photo.png")
			if err != nil {
				t.Fatalf("create file part: %v", err)
			}
			if _, err := fw.Write([]byte("png bytes")); err != nil {
				t.Fatalf("write file part: %v", err)
			}
			w.Close()

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/bookings", &buf)
			req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
			rec := httptest.NewRecorder()
			if err := h.Create(e.NewContext(req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
		})
	}
}
