package payroll

// Calculate aggregates shifts into hour categories and prices each category
// with its surcharge over salary/240.
//
// On a Sunday every hour of the shift is extra: day hours go to Sunday extra
// and night hours to Sunday-night extra. On any other day the first eight
// hours are ordinary and the excess is split between daytime and nighttime
// overtime using the night share of the whole shift, not the clock position
// of the overtime itself. Manual overtime is added on top regardless of the
// weekday.
func Calculate(shifts []Shift, monthlySalary float64) PaySummary {
	var s PaySummary

	for _, shift := range shifts {
		total := ShiftHours(shift.EntryTime, shift.ExitTime)
		night := NightHours(shift.EntryTime, shift.ExitTime)
		day := DayHours(shift.EntryTime, shift.ExitTime)

		if IsSunday(shift.Date) {
			s.SundayExtraHours += day
			s.SundayNightExtraHours += night
		} else {
			s.OrdinaryHours += min(total, OrdinaryShiftHours)

			overtime := max(0, total-OrdinaryShiftHours)
			if overtime > 0 && total > 0 {
				overtimeNight := overtime * (night / total)
				s.NighttimeExtraHours += overtimeNight
				s.DaytimeExtraHours += overtime - overtimeNight
			}
		}

		s.DaytimeExtraHours += shift.ManualOvertime.DaytimeExtra
		s.NighttimeExtraHours += shift.ManualOvertime.NighttimeExtra
		s.SundayExtraHours += shift.ManualOvertime.SundayExtra
		s.SundayNightExtraHours += shift.ManualOvertime.SundayNightExtra
	}

	rate := HourlyRate(monthlySalary)
	s.OrdinaryPay = s.OrdinaryHours * rate * OrdinaryRate
	s.DaytimeExtraPay = s.DaytimeExtraHours * rate * DaytimeExtraRate
	s.NighttimeExtraPay = s.NighttimeExtraHours * rate * NighttimeExtraRate
	s.SundayExtraPay = s.SundayExtraHours * rate * SundayExtraRate
	s.SundayNightExtraPay = s.SundayNightExtraHours * rate * SundayNightExtraRate

	s.TotalHours = s.OrdinaryHours + s.DaytimeExtraHours + s.NighttimeExtraHours +
		s.SundayExtraHours + s.SundayNightExtraHours
	s.TotalEarned = s.OrdinaryPay + s.DaytimeExtraPay + s.NighttimeExtraPay +
		s.SundayExtraPay + s.SundayNightExtraPay

	return s
}

// Summary computes the PaySummary for d.
func (d LaborData) Summary() PaySummary {
	return Calculate(d.Shifts, d.MonthlySalary)
}

// CalculateStrict validates the input before computing and rejects results
// that are not finite numbers.
func CalculateStrict(shifts []Shift, monthlySalary float64) (PaySummary, error) {
	if err := ValidateSalary(monthlySalary); err != nil {
		return PaySummary{}, err
	}
	for i := range shifts {
		if err := ValidateShift(shifts[i]); err != nil {
			return PaySummary{}, err
		}
	}

	s := Calculate(shifts, monthlySalary)
	if err := checkFinite(s); err != nil {
		return PaySummary{}, err
	}
	return s, nil
}
