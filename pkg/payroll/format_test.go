package payroll

import (
	"strings"
	"testing"
)

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(1423500)
	if !strings.HasPrefix(got, "$ ") {
		t.Fatalf("expected peso sign, got %q", got)
	}
	if digits(got) != "1423500" {
		t.Fatalf("expected 1423500, got %q", got)
	}
	if len(got) <= len("$ 1423500") {
		t.Fatalf("expected thousands separators, got %q", got)
	}

	if got := FormatCurrency(59312.5); digits(got) != "59313" {
		t.Fatalf("expected rounding to whole pesos, got %q", got)
	}
	if got := FormatCurrency(0); got != "$ 0" {
		t.Fatalf("expected $ 0, got %q", got)
	}
	if got := FormatCurrency(-2500); !strings.HasPrefix(got, "-$ ") {
		t.Fatalf("expected negative sign, got %q", got)
	}
}

func TestFormatHours(t *testing.T) {
	tests := map[float64]string{
		9:         "9.00",
		0.5:       "0.50",
		1.0 / 3.0: "0.33",
		0:         "0.00",
	}
	for in, want := range tests {
		if got := FormatHours(in); got != want {
			t.Fatalf("expected %q for %v, got %q", want, in, got)
		}
	}
}
