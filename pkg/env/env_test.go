package env

import "testing"

func TestGetFallsBackOnBlank(t *testing.T) {
	t.Setenv("SALONADMIN_TEST_VALUE", "   ")
	if got := Get("SALONADMIN_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	t.Setenv("SALONADMIN_TEST_VALUE", "set")
	if got := Get("SALONADMIN_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("expected set, got %q", got)
	}
}

func TestFirstOf(t *testing.T) {
	t.Setenv("SALONADMIN_PORT_A", "")
	t.Setenv("SALONADMIN_PORT_B", "9090")
	if got := FirstOf("8080", "SALONADMIN_PORT_A", "SALONADMIN_PORT_B"); got != "9090" {
		t.Fatalf("expected 9090, got %q", got)
	}
	if got := FirstOf("8080", "SALONADMIN_PORT_A"); got != "8080" {
		t.Fatalf("expected fallback 8080, got %q", got)
	}
}
