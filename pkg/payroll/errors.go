package payroll

import (
	"fmt"
	"math"
)

// ValidationError reports input that CalculateStrict refuses to price.
type ValidationError struct {
	ShiftID string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.ShiftID != "" {
		return fmt.Sprintf("shift %s: invalid %s: %s", e.ShiftID, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ComputationError reports a numeric failure while pricing valid input.
type ComputationError struct {
	Field  string
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computing %s: %s", e.Field, e.Reason)
}

// ValidateClock checks that s is a 24h "HH:MM" time of day.
func ValidateClock(s string) error {
	if _, ok := parseClock(s); !ok {
		return &ValidationError{Field: "time", Reason: fmt.Sprintf("%q is not a HH:MM time of day", s)}
	}
	return nil
}

// ValidateSalary rejects negative and non-finite monthly salaries. Zero is
// allowed and means the salary is not configured yet.
func ValidateSalary(monthlySalary float64) error {
	if math.IsNaN(monthlySalary) || math.IsInf(monthlySalary, 0) {
		return &ValidationError{Field: "monthlySalary", Reason: "must be a finite number"}
	}
	if monthlySalary < 0 {
		return &ValidationError{Field: "monthlySalary", Reason: "must not be negative"}
	}
	return nil
}

// ValidateShift checks the times, the date and the manual overtime of s.
// Manual overtime is not capped: it is added on top of the entry/exit hours,
// which can never reach a full day on their own.
func ValidateShift(s Shift) error {
	if _, ok := parseClock(s.EntryTime); !ok {
		return &ValidationError{ShiftID: s.ID, Field: "entryTime", Reason: fmt.Sprintf("%q is not a HH:MM time of day", s.EntryTime)}
	}
	if _, ok := parseClock(s.ExitTime); !ok {
		return &ValidationError{ShiftID: s.ID, Field: "exitTime", Reason: fmt.Sprintf("%q is not a HH:MM time of day", s.ExitTime)}
	}
	if s.Date.IsZero() {
		return &ValidationError{ShiftID: s.ID, Field: "date", Reason: "is required"}
	}

	manual := []struct {
		field string
		value float64
	}{
		{"daytimeExtra", s.ManualOvertime.DaytimeExtra},
		{"nighttimeExtra", s.ManualOvertime.NighttimeExtra},
		{"sundayExtra", s.ManualOvertime.SundayExtra},
		{"sundayNightExtra", s.ManualOvertime.SundayNightExtra},
	}
	for _, m := range manual {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) || m.value < 0 {
			return &ValidationError{ShiftID: s.ID, Field: m.field, Reason: "must be a non-negative number"}
		}
	}
	return nil
}

func checkFinite(s PaySummary) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"totalHours", s.TotalHours},
		{"ordinaryPay", s.OrdinaryPay},
		{"daytimeExtraPay", s.DaytimeExtraPay},
		{"nighttimeExtraPay", s.NighttimeExtraPay},
		{"sundayExtraPay", s.SundayExtraPay},
		{"sundayNightExtraPay", s.SundayNightExtraPay},
		{"totalEarned", s.TotalEarned},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ComputationError{Field: f.name, Reason: "result is not a finite number"}
		}
	}
	return nil
}
