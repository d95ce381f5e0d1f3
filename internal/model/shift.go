package model

import (
	"fmt"

	"worker-calculator/pkg/payroll"
)

// ShiftRecord is a shift as stored in the shifts table.
type ShiftRecord struct {
	Seq              int64
	ID               string
	ChatID           int64
	Date             string
	EntryTime        string
	ExitTime         string
	DaytimeExtra     float64
	NighttimeExtra   float64
	SundayExtra      float64
	SundayNightExtra float64
}

func FromShift(chatID int64, s payroll.Shift) ShiftRecord {
	return ShiftRecord{
		ID:               s.ID,
		ChatID:           chatID,
		Date:             s.Date.Format(payroll.DateLayout),
		EntryTime:        s.EntryTime,
		ExitTime:         s.ExitTime,
		DaytimeExtra:     s.ManualOvertime.DaytimeExtra,
		NighttimeExtra:   s.ManualOvertime.NighttimeExtra,
		SundayExtra:      s.ManualOvertime.SundayExtra,
		SundayNightExtra: s.ManualOvertime.SundayNightExtra,
	}
}

func (r ShiftRecord) Shift() (payroll.Shift, error) {
	date, err := payroll.ParseDate(r.Date)
	if err != nil {
		return payroll.Shift{}, fmt.Errorf("shift %s: bad date %q: %w", r.ID, r.Date, err)
	}
	return payroll.Shift{
		ID:        r.ID,
		Date:      date,
		EntryTime: r.EntryTime,
		ExitTime:  r.ExitTime,
		ManualOvertime: payroll.ManualOvertime{
			DaytimeExtra:     r.DaytimeExtra,
			NighttimeExtra:   r.NighttimeExtra,
			SundayExtra:      r.SundayExtra,
			SundayNightExtra: r.SundayNightExtra,
		},
	}, nil
}
