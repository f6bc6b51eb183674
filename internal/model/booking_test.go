package model

import (
	"testing"
	"time"
)

func sampleBooking() Booking {
	locID := uint64(3)
	itemBooking := uint64(7)
	return Booking{
		ID:              7,
		UserID:          "uncle-lim",
		BookingDateTime: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		AppointmentTime: time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		LocationID:      &locID,
		Location:        &Location{ID: 3, Name: "Toa Payoh", Latitude: 1.33, Longitude: 103.85},
		CollectionType:  CollectionHomePickup,
		PaymentMethod:   PaymentPayNow,
		Items: []Item{
			{
				ID:          11,
				BookingID:   &itemBooking,
				Name:        "old fridge",
				Description: "two door, still cold",
				Images: []Image{
					{ID: 21, FileName: "fridge.png", StoredName: "abc.png", Data: []byte{1, 2, 3}},
				},
			},
		},
	}
}

func TestBookingSnapshotIsIndependent(t *testing.T) {
	orig := sampleBooking()
	snap := orig.Snapshot()

	snap.Location.Name = "Bedok"
	snap.Items[0].Name = "broken fridge"
	snap.Items[0].Images[0].Data[0] = 99
	*snap.LocationID = 42

	if orig.Location.Name != "Toa Payoh" {
		t.Fatal("location leaked through snapshot")
	}
	if orig.Items[0].Name != "old fridge" {
		t.Fatal("item slice leaked through snapshot")
	}
	if orig.Items[0].Images[0].Data[0] != 1 {
		t.Fatal("image payload leaked through snapshot")
	}
	if *orig.LocationID != 3 {
		t.Fatal("location id pointer leaked through snapshot")
	}
}

func TestItemSnapshotCopiesBookingID(t *testing.T) {
	id := uint64(5)
	it := Item{ID: 1, BookingID: &id, Name: "cardboard", Description: "one stack"}
	snap := it.Snapshot()
	*snap.BookingID = 9
	if *it.BookingID != 5 {
		t.Fatal("booking id pointer shared between item and snapshot")
	}
}

func TestCloneItemsNeverNil(t *testing.T) {
	if got := CloneItems(nil); got == nil {
		t.Fatal("CloneItems(nil) must return an empty slice, not nil")
	}
	if got := CloneImages(nil); got == nil {
		t.Fatal("CloneImages(nil) must return an empty slice, not nil")
	}
}

func TestEnumValidators(t *testing.T) {
	if !ValidCollectionType(CollectionHomePickup) || !ValidCollectionType(CollectionDropOff) {
		t.Fatal("known collection types rejected")
	}
	if ValidCollectionType("COURIER") {
		t.Fatal("unknown collection type accepted")
	}
	if !ValidPaymentMethod(PaymentCash) || !ValidPaymentMethod(PaymentPayNow) || !ValidPaymentMethod(PaymentBankTransfer) {
		t.Fatal("known payment methods rejected")
	}
	if ValidPaymentMethod("CHEQUE") {
		t.Fatal("unknown payment method accepted")
	}
}

func TestItemValidate(t *testing.T) {
	it := Item{Name: "washing machine", Description: "front load"}
	if err := it.Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}
	for _, bad := range []Item{{Name: "x"}, {Description: "y"}, {}} {
		if err := bad.Validate(); err != ErrItemFieldsRequired {
			t.Fatalf("want ErrItemFieldsRequired, got %v", err)
		}
	}
}
