// Package payroll computes what an hourly worker is owed for a set of shifts
// under Colombian surcharge rules: ordinary hours, daytime and nighttime
// overtime, Sunday work and Sunday-night work.
//
// Every function in this package is pure. Inputs are never mutated and
// nothing is cached, so callers recompute a PaySummary whenever their shift
// list or salary changes.
//
// Holidays are not detected: only the weekday of a shift's date is
// consulted, so a shift on a public holiday that is not a Sunday is paid as
// an ordinary day.
package payroll

import "time"

const (
	// MonthlyHours is the fixed divisor used to derive the hourly rate
	// from a monthly salary (30 days of 8 hours).
	MonthlyHours = 240.0
	// OrdinaryShiftHours is how much of a weekday shift is paid at the base rate.
	OrdinaryShiftHours = 8.0

	minutesPerDay = 24 * 60
	nightStart    = 19 * 60
	nightEnd      = 6 * 60
)

// Surcharge multipliers applied to the hourly base rate.
const (
	OrdinaryRate         = 1.00
	DaytimeExtraRate     = 1.25
	NighttimeExtraRate   = 1.75
	SundayExtraRate      = 1.75
	SundayNightExtraRate = 2.00
)

// DateLayout is the YYYY-MM-DD form shift dates are stored and exchanged in.
const DateLayout = "2006-01-02"

// ManualOvertime holds extra hours typed in by the worker on top of the
// hours derived from entry and exit.
type ManualOvertime struct {
	DaytimeExtra     float64 `json:"daytimeExtra"`
	NighttimeExtra   float64 `json:"nighttimeExtra"`
	SundayExtra      float64 `json:"sundayExtra"`
	SundayNightExtra float64 `json:"sundayNightExtra"`
}

// Shift is one worked day. EntryTime and ExitTime are "HH:MM" wall-clock
// values; an exit earlier than the entry means the shift ended the next day.
type Shift struct {
	ID             string         `json:"id"`
	Date           time.Time      `json:"date"`
	EntryTime      string         `json:"entryTime"`
	ExitTime       string         `json:"exitTime"`
	ManualOvertime ManualOvertime `json:"manualOvertime"`
}

// LaborData is the caller-owned aggregate the summary is computed from.
// A MonthlySalary of zero means the salary has not been configured yet.
type LaborData struct {
	WorkerName    string  `json:"workerName"`
	MonthlySalary float64 `json:"monthlySalary"`
	Shifts        []Shift `json:"shifts"`
}

// PaySummary is derived entirely from a shift list and a salary.
type PaySummary struct {
	TotalHours            float64 `json:"totalHours"`
	OrdinaryHours         float64 `json:"ordinaryHours"`
	DaytimeExtraHours     float64 `json:"daytimeExtraHours"`
	NighttimeExtraHours   float64 `json:"nighttimeExtraHours"`
	SundayExtraHours      float64 `json:"sundayExtraHours"`
	SundayNightExtraHours float64 `json:"sundayNightExtraHours"`

	OrdinaryPay         float64 `json:"ordinaryPay"`
	DaytimeExtraPay     float64 `json:"daytimeExtraPay"`
	NighttimeExtraPay   float64 `json:"nighttimeExtraPay"`
	SundayExtraPay      float64 `json:"sundayExtraPay"`
	SundayNightExtraPay float64 `json:"sundayNightExtraPay"`

	TotalEarned float64 `json:"totalEarned"`
}

// HourlyRate returns the base hourly rate for a monthly salary.
func HourlyRate(monthlySalary float64) float64 {
	return monthlySalary / MonthlyHours
}

// ParseDate parses a calendar date in YYYY-MM-DD form as a local wall-clock date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FilterMonth returns the shifts dated within the given month, keeping
// their order.
func FilterMonth(shifts []Shift, year int, month time.Month) []Shift {
	out := make([]Shift, 0, len(shifts))
	for _, s := range shifts {
		if s.Date.Year() == year && s.Date.Month() == month {
			out = append(out, s)
		}
	}
	return out
}
