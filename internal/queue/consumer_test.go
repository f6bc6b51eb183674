package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHandleMessageWritesLogLine(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	ev := BookingCreatedEvent{
		BookingID:       12,
		UserID:          "uncle-lim",
		AppointmentTime: "2025-06-02T14:00:00Z",
		CollectionType:  "HOME_PICKUP",
		PaymentMethod:   "PAYNOW",
		ItemCount:       3,
		CreatedAt:       "2025-06-01T09:00:00Z",
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := handleMessage(body); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "logs", "booking.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(raw)
	for _, want := range []string{"booking_id=12", `user_id="uncle-lim"`, "items=3", "collection=HOME_PICKUP"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}

	// A second message appends rather than truncates.
	if err := handleMessage(body); err != nil {
		t.Fatalf("second handleMessage: %v", err)
	}
	raw, err = os.ReadFile(filepath.Join(dir, "logs", "booking.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := strings.Count(string(raw), "booking_id=12"); got != 2 {
		t.Fatalf("expected 2 log lines, got %d", got)
	}
}

func TestHandleMessageRejectsBadPayload(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := handleMessage([]byte("not json")); err == nil {
		t.Fatal("malformed payload must be rejected")
	}
}
