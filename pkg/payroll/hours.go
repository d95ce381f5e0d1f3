package payroll

import (
	"strconv"
	"strings"
	"time"
)

// parseClock converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
// The hour may have one digit; seconds are checked and then dropped.
func parseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || !isDigits(parts[0]) {
		return 0, false
	}
	for _, p := range parts[1:] {
		if len(p) != 2 || !isDigits(p) {
			return 0, false
		}
	}

	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	if hours > 23 || minutes > 59 {
		return 0, false
	}
	if len(parts) == 3 {
		if seconds, _ := strconv.Atoi(parts[2]); seconds > 59 {
			return 0, false
		}
	}
	return hours*60 + minutes, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// span returns entry and exit in minutes, with exit moved to the next day
// when it is earlier than entry.
func span(entry, exit string) (int, int, bool) {
	in, ok := parseClock(entry)
	if !ok {
		return 0, 0, false
	}
	out, ok := parseClock(exit)
	if !ok {
		return 0, 0, false
	}
	if out < in {
		out += minutesPerDay
	}
	return in, out, true
}

// ShiftHours returns the duration of a shift in hours. Times are 24h
// "HH:MM", optionally with seconds which are ignored. Missing or malformed
// times, including signed numbers, yield 0.
func ShiftHours(entry, exit string) float64 {
	in, out, ok := span(entry, exit)
	if !ok {
		return 0
	}
	return float64(out-in) / 60
}

// NightHours returns how many hours of a shift fall in the 19:00-06:00
// night window. Missing or malformed times yield 0.
func NightHours(entry, exit string) float64 {
	in, out, ok := span(entry, exit)
	if !ok {
		return 0
	}
	return float64(max(0, nightMinutes(in, out))) / 60
}

// nightMinutes expects out >= in, with out already rolled past midnight
// when the shift crosses it.
func nightMinutes(in, out int) int {
	if out <= nightStart && in >= nightEnd {
		return 0
	}

	total := 0
	// started before dawn
	if in < nightEnd {
		total += min(out, nightEnd) - in
	}
	if out > nightStart {
		from := max(in, nightStart)
		if out > minutesPerDay {
			total += minutesPerDay - from
			total += min(out-minutesPerDay, nightEnd)
		} else {
			total += out - from
		}
	}
	return total
}

// DayHours returns the part of a shift outside the night window. DayHours
// and NightHours always add up to ShiftHours.
func DayHours(entry, exit string) float64 {
	return max(0, ShiftHours(entry, exit)-NightHours(entry, exit))
}

// IsSunday reports whether date falls on a Sunday.
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}
