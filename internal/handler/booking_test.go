package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/kiasuhub/garang-guni-backend/internal/utils"
)

func validBookingReq() bookingReq {
	return bookingReq{
		UserID:          "uncle-lim",
		BookingDateTime: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		AppointmentTime: time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		CollectionType:  "HOME_PICKUP",
		PaymentMethod:   "PAYNOW",
		Items: []itemReq{
			{Name: "fridge", Description: "two door"},
		},
	}
}

func TestBuildBookingValid(t *testing.T) {
	req := validBookingReq()
	b, status, msg := buildBooking(&req, nil)
	if msg != "" {
		t.Fatalf("unexpected rejection: %d %s", status, msg)
	}
	if b.UserID != "uncle-lim" || len(b.Items) != 1 {
		t.Fatalf("aggregate not built: %+v", b)
	}
}

func TestBuildBookingRejectsBadEnums(t *testing.T) {
	req := validBookingReq()
	req.CollectionType = "COURIER"
	if _, status, msg := buildBooking(&req, nil); status != http.StatusBadRequest || msg != "invalid collection_type" {
		t.Fatalf("got %d %q", status, msg)
	}

	req = validBookingReq()
	req.PaymentMethod = "CHEQUE"
	if _, status, msg := buildBooking(&req, nil); status != http.StatusBadRequest || msg != "invalid payment_method" {
		t.Fatalf("got %d %q", status, msg)
	}
}

func TestBuildBookingRejectsIncompleteItem(t *testing.T) {
	req := validBookingReq()
	req.Items = append(req.Items, itemReq{Name: "  ", Description: "no name"})
	if _, status, msg := buildBooking(&req, nil); status != http.StatusBadRequest || msg == "" {
		t.Fatalf("got %d %q", status, msg)
	}
}

func TestBuildBookingRejectsNonImageUpload(t *testing.T) {
	req := validBookingReq()
	req.Items[0].Images = []imageReq{{FileName: "malware.exe", Data: []byte{1}}}
	if _, status, msg := buildBooking(&req, nil); status != http.StatusBadRequest || msg != "unsupported image type" {
		t.Fatalf("got %d %q", status, msg)
	}
}

func TestPrepareUploadCompressesAndNames(t *testing.T) {
	payload := []byte("fake png bytes, repeated: fake png bytes fake png bytes")
	img, status, msg := prepareUpload("Fridge Photo.PNG", "image/png", payload)
	if msg != "" {
		t.Fatalf("unexpected rejection: %d %s", status, msg)
	}
	if img.FileName != "Fridge Photo.PNG" {
		t.Fatalf("original file name must be preserved, got %q", img.FileName)
	}
	if img.StoredName == img.FileName || img.StoredName == "" {
		t.Fatalf("stored name must be generated, got %q", img.StoredName)
	}
	if ext := img.StoredName[len(img.StoredName)-4:]; ext != ".png" {
		t.Fatalf("stored name should keep a lowercased extension, got %q", img.StoredName)
	}
	out, err := utils.DecompressImage(img.Data)
	if err != nil {
		t.Fatalf("stored payload not decompressible: %v", err)
	}
	if string(out) != string(payload) {
		t.Fatal("payload changed through compression")
	}
}

func TestStoredExt(t *testing.T) {
	cases := map[string]string{
		"photo.PNG":    ".png",
		"a.b.jpeg":     ".jpeg",
		"noextension":  "",
		"trailingdot.": ".",
	}
	for in, want := range cases {
		if got := storedExt(in); got != want {
			t.Errorf("storedExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestImageErrStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{utils.ErrUnsupportedImage, http.StatusBadRequest},
		{utils.ErrCorruptImage, http.StatusBadRequest},
		{utils.ErrStorageFull, http.StatusInsufficientStorage},
		{utils.ErrFileSystem, http.StatusBadGateway},
		{errors.New("broker unavailable"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := imageErrStatus(tc.err); got != tc.want {
			t.Errorf("imageErrStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
