package config

import "testing"

func TestIntOr(t *testing.T) {
	t.Setenv("GG_TEST_TTL", "15")
	if got := intOr("GG_TEST_TTL", 60); got != 15 {
		t.Fatalf("set value: got %d, want 15", got)
	}
	t.Setenv("GG_TEST_TTL", "")
	if got := intOr("GG_TEST_TTL", 60); got != 60 {
		t.Fatalf("empty value: got %d, want the default 60", got)
	}
	if got := intOr("GG_TEST_TTL_UNSET", 7); got != 7 {
		t.Fatalf("unset value: got %d, want the default 7", got)
	}
}
