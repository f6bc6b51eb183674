package model

import "testing"

func TestLocationValidate(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		ok       bool
	}{
		{"singapore", 1.3521, 103.8198, true},
		{"lat north edge", 90, 0, true},
		{"lat south edge", -90, 0, true},
		{"lon east edge", 0, 180, true},
		{"lon west edge", 0, -180, true},
		{"lat too high", 90.01, 0, false},
		{"lat too low", -90.01, 0, false},
		{"lon too high", 0, 180.01, false},
		{"lon too low", 0, -180.01, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := Location{Name: "x", Latitude: tc.lat, Longitude: tc.lon}
			err := l.Validate()
			if tc.ok && err != nil {
				t.Fatalf("valid coordinates rejected: %v", err)
			}
			if !tc.ok && err != ErrInvalidCoordinates {
				t.Fatalf("want ErrInvalidCoordinates, got %v", err)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	if got := ParseRole("SCRAP_DEALER"); got != RoleScrapDealer {
		t.Fatalf("ParseRole(SCRAP_DEALER) = %v", got)
	}
	// ADMIN cannot be self-assigned at signup; unknown strings fall back too.
	for _, s := range []string{"ADMIN", "CUSTOMER", "", "gibberish"} {
		if got := ParseRole(s); got != RoleCustomer && s != "CUSTOMER" {
			t.Fatalf("ParseRole(%q) = %v, want CUSTOMER", s, got)
		}
	}
}
