package payroll

import (
	"errors"
	"math"
	"testing"
	"time"
)

var (
	monday = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
)

const salary = 2400000 // hourly rate of 10000

func shift(id string, date time.Time, entry, exit string) Shift {
	return Shift{ID: id, Date: date, EntryTime: entry, ExitTime: exit}
}

func TestCalculateEightHourWeekday(t *testing.T) {
	s := Calculate([]Shift{shift("1", monday, "08:00", "16:00")}, salary)

	if s.OrdinaryHours != 8 {
		t.Fatalf("expected 8 ordinary hours, got %v", s.OrdinaryHours)
	}
	if s.DaytimeExtraHours != 0 || s.NighttimeExtraHours != 0 || s.SundayExtraHours != 0 || s.SundayNightExtraHours != 0 {
		t.Fatalf("expected no extra hours, got %+v", s)
	}
	if !almostEqual(s.OrdinaryPay, 80000) {
		t.Fatalf("expected ordinary pay 80000, got %v", s.OrdinaryPay)
	}
	if !almostEqual(s.TotalEarned, 80000) {
		t.Fatalf("expected total 80000, got %v", s.TotalEarned)
	}
}

func TestCalculateDaytimeOvertime(t *testing.T) {
	s := Calculate([]Shift{shift("1", monday, "07:00", "17:00")}, salary)

	if s.OrdinaryHours != 8 {
		t.Fatalf("expected 8 ordinary hours, got %v", s.OrdinaryHours)
	}
	if !almostEqual(s.DaytimeExtraHours, 2) {
		t.Fatalf("expected 2 daytime extra hours, got %v", s.DaytimeExtraHours)
	}
	if s.NighttimeExtraHours != 0 {
		t.Fatalf("expected no nighttime extra, got %v", s.NighttimeExtraHours)
	}
	if !almostEqual(s.DaytimeExtraPay, 2*10000*1.25) {
		t.Fatalf("expected daytime extra pay 25000, got %v", s.DaytimeExtraPay)
	}
	if !almostEqual(s.TotalHours, 10) {
		t.Fatalf("expected 10 total hours, got %v", s.TotalHours)
	}
}

// Overtime is split by the night share of the whole shift, not by where the
// overtime hours actually sit on the clock. This is the intended model.
func TestCalculateOvertimeSplitUsesShiftNightShare(t *testing.T) {
	// 14:00-00:00: 10 hours, 5 of them at night. The two overtime hours are
	// really 22:00-00:00 but are split 50/50.
	s := Calculate([]Shift{shift("1", monday, "14:00", "00:00")}, salary)

	if s.OrdinaryHours != 8 {
		t.Fatalf("expected 8 ordinary hours, got %v", s.OrdinaryHours)
	}
	if !almostEqual(s.NighttimeExtraHours, 1) {
		t.Fatalf("expected 1 nighttime extra hour, got %v", s.NighttimeExtraHours)
	}
	if !almostEqual(s.DaytimeExtraHours, 1) {
		t.Fatalf("expected 1 daytime extra hour, got %v", s.DaytimeExtraHours)
	}
}

func TestCalculateSundayShift(t *testing.T) {
	s := Calculate([]Shift{shift("1", sunday, "08:00", "16:00")}, salary)

	if s.OrdinaryHours != 0 {
		t.Fatalf("expected no ordinary hours on Sunday, got %v", s.OrdinaryHours)
	}
	if s.SundayExtraHours != 8 {
		t.Fatalf("expected 8 sunday extra hours, got %v", s.SundayExtraHours)
	}
	if !almostEqual(s.SundayExtraPay, 8*10000*1.75) {
		t.Fatalf("expected sunday pay 140000, got %v", s.SundayExtraPay)
	}
}

func TestCalculateSundayNightShift(t *testing.T) {
	s := Calculate([]Shift{shift("1", sunday, "17:00", "23:00")}, salary)

	if !almostEqual(s.SundayExtraHours, 2) {
		t.Fatalf("expected 2 sunday extra hours, got %v", s.SundayExtraHours)
	}
	if !almostEqual(s.SundayNightExtraHours, 4) {
		t.Fatalf("expected 4 sunday night hours, got %v", s.SundayNightExtraHours)
	}
	if !almostEqual(s.SundayNightExtraPay, 4*10000*2.0) {
		t.Fatalf("expected sunday night pay 80000, got %v", s.SundayNightExtraPay)
	}
}

func TestCalculateAddsManualOvertime(t *testing.T) {
	weekday := shift("1", monday, "08:00", "16:00")
	weekday.ManualOvertime = ManualOvertime{DaytimeExtra: 1, NighttimeExtra: 2, SundayExtra: 3, SundayNightExtra: 4}
	onSunday := shift("2", sunday, "08:00", "10:00")
	onSunday.ManualOvertime = ManualOvertime{DaytimeExtra: 0.5}

	s := Calculate([]Shift{weekday, onSunday}, salary)

	if !almostEqual(s.DaytimeExtraHours, 1.5) {
		t.Fatalf("expected 1.5 daytime extra hours, got %v", s.DaytimeExtraHours)
	}
	if !almostEqual(s.NighttimeExtraHours, 2) {
		t.Fatalf("expected 2 nighttime extra hours, got %v", s.NighttimeExtraHours)
	}
	if !almostEqual(s.SundayExtraHours, 5) {
		t.Fatalf("expected 5 sunday extra hours, got %v", s.SundayExtraHours)
	}
	if !almostEqual(s.SundayNightExtraHours, 4) {
		t.Fatalf("expected 4 sunday night hours, got %v", s.SundayNightExtraHours)
	}
	if !almostEqual(s.TotalHours, 8+1.5+2+5+4) {
		t.Fatalf("expected 20.5 total hours, got %v", s.TotalHours)
	}
}

func TestCalculateTotalIsWeightedSum(t *testing.T) {
	shifts := []Shift{
		shift("1", monday, "06:00", "20:30"),
		shift("2", monday.AddDate(0, 0, 1), "21:00", "07:30"),
		shift("3", sunday, "15:00", "02:00"),
	}
	s := Calculate(shifts, 1423500)

	rate := 1423500.0 / 240
	want := s.OrdinaryHours*rate +
		s.DaytimeExtraHours*rate*1.25 +
		s.NighttimeExtraHours*rate*1.75 +
		s.SundayExtraHours*rate*1.75 +
		s.SundayNightExtraHours*rate*2.00
	if math.Abs(s.TotalEarned-want) > 1e-6 {
		t.Fatalf("expected total %v, got %v", want, s.TotalEarned)
	}

	hours := s.OrdinaryHours + s.DaytimeExtraHours + s.NighttimeExtraHours + s.SundayExtraHours + s.SundayNightExtraHours
	if !almostEqual(s.TotalHours, hours) {
		t.Fatalf("expected total hours %v, got %v", hours, s.TotalHours)
	}
}

func TestCalculateEmptyList(t *testing.T) {
	if s := Calculate(nil, salary); s != (PaySummary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestCalculateZeroSalaryKeepsHours(t *testing.T) {
	s := Calculate([]Shift{shift("1", monday, "07:00", "17:00")}, 0)
	if s.TotalHours != 10 {
		t.Fatalf("expected 10 hours, got %v", s.TotalHours)
	}
	if s.TotalEarned != 0 || s.OrdinaryPay != 0 || s.DaytimeExtraPay != 0 {
		t.Fatalf("expected no pay with zero salary, got %+v", s)
	}
}

func TestCalculateEmptyTimesAreNoOps(t *testing.T) {
	s := Calculate([]Shift{shift("1", monday, "", "")}, salary)
	if s != (PaySummary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	shifts := []Shift{
		shift("1", monday, "14:00", "02:00"),
		shift("2", sunday, "20:00", "05:00"),
	}
	snapshot := append([]Shift(nil), shifts...)

	first := Calculate(shifts, salary)
	second := Calculate(shifts, salary)
	if first != second {
		t.Fatalf("expected equal summaries, got %+v and %+v", first, second)
	}
	for i := range shifts {
		if shifts[i] != snapshot[i] {
			t.Fatalf("input shift %d was modified", i)
		}
	}
}

func TestLaborDataSummary(t *testing.T) {
	d := LaborData{MonthlySalary: salary, Shifts: []Shift{shift("1", monday, "08:00", "16:00")}}
	if got := d.Summary(); got != Calculate(d.Shifts, d.MonthlySalary) {
		t.Fatalf("expected summary to match Calculate, got %+v", got)
	}
}

func TestCalculateStrict(t *testing.T) {
	good := shift("1", monday, "08:00", "16:00")

	if _, err := CalculateStrict([]Shift{good}, salary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		shifts []Shift
		salary float64
		field  string
	}{
		{name: "negative salary", shifts: []Shift{good}, salary: -1, field: "monthlySalary"},
		{name: "nan salary", shifts: []Shift{good}, salary: math.NaN(), field: "monthlySalary"},
		{name: "bad entry", shifts: []Shift{shift("2", monday, "25:00", "16:00")}, salary: salary, field: "entryTime"},
		{name: "missing exit", shifts: []Shift{shift("2", monday, "08:00", "")}, salary: salary, field: "exitTime"},
		{name: "missing date", shifts: []Shift{shift("2", time.Time{}, "08:00", "16:00")}, salary: salary, field: "date"},
		{
			name: "negative manual overtime",
			shifts: []Shift{{ID: "2", Date: monday, EntryTime: "08:00", ExitTime: "16:00",
				ManualOvertime: ManualOvertime{NighttimeExtra: -1}}},
			salary: salary,
			field:  "nighttimeExtra",
		},
		{
			name: "non-finite manual overtime",
			shifts: []Shift{{ID: "2", Date: monday, EntryTime: "08:00", ExitTime: "16:00",
				ManualOvertime: ManualOvertime{SundayExtra: math.Inf(1)}}},
			salary: salary,
			field:  "sundayExtra",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateStrict(tc.shifts, tc.salary)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, verr.Field)
			}
		})
	}
}

// Manual overtime is added on top of the clock hours without a cap, so a
// twelve hour shift may report thirteen more.
func TestCalculateStrictAcceptsLargeManualOvertime(t *testing.T) {
	long := Shift{ID: "p", Date: monday, EntryTime: "08:00", ExitTime: "20:00",
		ManualOvertime: ManualOvertime{DaytimeExtra: 13}}

	got, err := CalculateStrict([]Shift{long}, salary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := Calculate([]Shift{long}, salary); got != want {
		t.Fatalf("expected strict result to match Calculate, got %+v", got)
	}
	if !almostEqual(got.TotalHours, 25) {
		t.Fatalf("expected 25 total hours, got %v", got.TotalHours)
	}
}

func TestCalculateStrictAcceptsSeconds(t *testing.T) {
	s := Shift{ID: "s", Date: monday, EntryTime: "08:00:00", ExitTime: "17:00:00"}
	got, err := CalculateStrict([]Shift{s}, salary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got.TotalHours, 9) {
		t.Fatalf("expected 9 hours, got %v", got.TotalHours)
	}
}

func TestCalculateStrictRejectsOverflow(t *testing.T) {
	// 31 eight-hour days is more than the 240 hour divisor, so pay exceeds
	// the salary and overflows.
	var shifts []Shift
	for i := 0; i < 31; i++ {
		shifts = append(shifts, shift("s", monday.AddDate(0, 0, i*7), "08:00", "16:00"))
	}
	_, err := CalculateStrict(shifts, math.MaxFloat64)
	var cerr *ComputationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected computation error, got %v", err)
	}
}

func TestFilterMonth(t *testing.T) {
	shifts := []Shift{
		shift("a", time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), "08:00", "16:00"),
		shift("b", monday, "08:00", "16:00"),
		shift("c", sunday, "08:00", "16:00"),
	}
	got := FilterMonth(shifts, 2025, time.January)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Fatalf("expected shifts b and c in order, got %+v", got)
	}
}
