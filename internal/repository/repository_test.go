package repository

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2025-06-02":           "2025-06-02",
		"2025-06-02T00:00:00Z": "2025-06-02",
		"2025-06-02 00:00:00":  "2025-06-02",
		"short":                "short",
		"":                     "",
	}
	for in, want := range cases {
		if got := normalizeDate(in); got != want {
			t.Errorf("normalizeDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNullIfEmpty(t *testing.T) {
	if got := nullIfEmpty(""); got != nil {
		t.Fatalf("empty string should map to nil, got %v", got)
	}
	if got := nullIfEmpty("1990-01-02"); got != "1990-01-02" {
		t.Fatalf("non-empty string must pass through, got %v", got)
	}
}
