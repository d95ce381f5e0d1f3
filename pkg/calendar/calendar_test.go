package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestBuildCalendarAlignsSundays(t *testing.T) {
	title, markup := BuildCalendar(2025, 1)
	if !strings.Contains(title, "Enero 2025") {
		t.Fatalf("expected Spanish month in title, got %q", title)
	}

	rows := markup.InlineKeyboard
	// header, five weeks, navigation
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	for i := 1; i < 6; i++ {
		if len(rows[i]) != 7 {
			t.Fatalf("expected full week in row %d, got %d buttons", i, len(rows[i]))
		}
	}
	if got := rows[1][6].Text; got != "5" {
		t.Fatalf("expected Sunday 5 in the last column, got %q", got)
	}
	if got := rows[1][2].Text; got != "1" {
		t.Fatalf("expected Wednesday 1 in the third column, got %q", got)
	}
}

func TestBuildCalendarWrapsYear(t *testing.T) {
	title, _ := BuildCalendar(2025, 0)
	if !strings.Contains(title, "Diciembre 2024") {
		t.Fatalf("expected December 2024, got %q", title)
	}
	title, _ = BuildCalendar(2024, 13)
	if !strings.Contains(title, "Enero 2025") {
		t.Fatalf("expected January 2025, got %q", title)
	}
}

func TestParseDay(t *testing.T) {
	got, ok := ParseDay("5-1-2025")
	if !ok || !got.Equal(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 2025-01-05, got %v (%v)", got, ok)
	}
	for _, bad := range []string{"31-2-2025", "1-13-2025", "x-1-2025", "1-2025"} {
		if _, ok := ParseDay(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
