package payroll

import "time"

// DaySchedule is the template for one weekday.
type DaySchedule struct {
	Entry  string `json:"entry"`
	Exit   string `json:"exit"`
	Active bool   `json:"active"`
}

// WeeklySchedule is indexed Monday (0) through Sunday (6).
type WeeklySchedule [7]DaySchedule

// DayNames are the Spanish weekday labels in WeeklySchedule order.
var DayNames = [7]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// DefaultWeeklySchedule is Monday to Friday 08:00-17:00. Saturday
// (08:00-12:00) and Sunday are prefilled but inactive.
func DefaultWeeklySchedule() WeeklySchedule {
	office := DaySchedule{Entry: "08:00", Exit: "17:00", Active: true}
	return WeeklySchedule{
		office, office, office, office, office,
		{Entry: "08:00", Exit: "12:00"},
		{Entry: "08:00", Exit: "17:00"},
	}
}

// WeekStart returns the Monday of the week containing date.
func WeekStart(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// GenerateShifts lays the schedule over weeks consecutive weeks starting
// with the week that contains start. Dates already present in existing are
// skipped, so applying the same template twice adds nothing.
func GenerateShifts(schedule WeeklySchedule, start time.Time, weeks int, existing []Shift, newID func() string) []Shift {
	if weeks < 1 {
		return nil
	}

	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s.Date.Format(DateLayout)] = struct{}{}
	}

	var out []Shift
	monday := WeekStart(start)
	for i := 0; i < weeks*7; i++ {
		tmpl := schedule[i%7]
		if !tmpl.Active {
			continue
		}
		date := monday.AddDate(0, 0, i)
		key := date.Format(DateLayout)
		if _, ok := taken[key]; ok {
			continue
		}
		taken[key] = struct{}{}
		out = append(out, Shift{
			ID:        newID(),
			Date:      date,
			EntryTime: tmpl.Entry,
			ExitTime:  tmpl.Exit,
		})
	}
	return out
}
