package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// postJSON drives a handler with a JSON body and returns the recorder.
func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/contacts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

// Validation runs before any repository call, so a zero-value handler is
// enough to exercise the rejection paths.
func TestContactCreateValidation(t *testing.T) {
	h := &ContactHandler{}
	cases := []struct {
		name string
		body string
		msg  string
	}{
		{
			"markup-only message",
			`{"first_name":"Mei","email":"mei@example.sg","message":"<img src=x onerror=alert(1)>"}`,
			"message is empty after removing markup",
		},
		{
			"no names",
			`{"email":"mei@example.sg","message":"please collect"}`,
			"first name or last name is required",
		},
		{
			"no email or phone",
			`{"first_name":"Mei","message":"please collect"}`,
			"email or phone number is required",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Create, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Message != tc.msg {
				t.Fatalf("message = %q, want %q", body.Message, tc.msg)
			}
			if body.Timestamp.IsZero() {
				t.Fatal("error body is missing the timestamp")
			}
		})
	}
}

func TestSignupValidation(t *testing.T) {
	h := &AuthHandler{}
	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"Str0ng!pass"}`},
		{"missing password", `{"email":"a@b.c"}`},
		{"weak password", `{"email":"a@b.c","password":"weak"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Signup, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}
