package model

import (
	"errors"
	"testing"
)

func TestContactValidate(t *testing.T) {
	cases := []struct {
		name    string
		contact Contact
		wantErr error
	}{
		{
			"all fields",
			Contact{FirstName: "Mei", LastName: "Tan", Email: "mei@example.sg", Phone: "91234567", Message: "please collect"},
			nil,
		},
		{
			"first name only",
			Contact{FirstName: "Mei", Email: "mei@example.sg", Message: "please collect"},
			nil,
		},
		{
			"last name and phone only",
			Contact{LastName: "Tan", Phone: "91234567", Message: "please collect"},
			nil,
		},
		{
			"empty message",
			Contact{FirstName: "Mei", Email: "mei@example.sg", Message: "   "},
			ErrContactMessageEmpty,
		},
		{
			"no names",
			Contact{Email: "mei@example.sg", Message: "please collect"},
			ErrContactNameRequired,
		},
		{
			"no reachback",
			Contact{FirstName: "Mei", Message: "please collect"},
			ErrContactReachback,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.contact.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
