package telegram

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"worker-calculator/pkg/payroll"
)

var (
	errShiftFormat    = errors.New("usa el formato HH:MM HH:MM, por ejemplo 08:00 17:00")
	errScheduleFormat = errors.New("para el horario escribe solo entrada y salida, por ejemplo 08:00 17:00")
)

// ParseShiftInput reads "entrada salida [extras...]" as typed in chat.
// Entry and exit may be separated by a space or a dash and single digit
// hours are padded. Up to four trailing numbers fill daytime, nighttime,
// Sunday and Sunday-night manual overtime in that order.
func ParseShiftInput(text string) (entry, exit string, extra payroll.ManualOvertime, err error) {
	text = strings.TrimSpace(text)
	if e, rest, ok := strings.Cut(text, "-"); ok && !strings.ContainsAny(strings.TrimSpace(e), " ") {
		text = e + " " + rest
	}
	fields := strings.Fields(text)
	if len(fields) < 2 || len(fields) > 6 {
		return "", "", extra, errShiftFormat
	}

	entry, exit = padClock(fields[0]), padClock(fields[1])
	if payroll.ValidateClock(entry) != nil || payroll.ValidateClock(exit) != nil {
		return "", "", extra, errShiftFormat
	}

	dst := []*float64{&extra.DaytimeExtra, &extra.NighttimeExtra, &extra.SundayExtra, &extra.SundayNightExtra}
	for i, f := range fields[2:] {
		v, err := strconv.ParseFloat(strings.ReplaceAll(f, ",", "."), 64)
		if err != nil || v < 0 {
			return "", "", payroll.ManualOvertime{}, errors.New("las horas extra deben ser números positivos")
		}
		*dst[i] = v
	}
	return entry, exit, extra, nil
}

func padClock(s string) string {
	if h, m, ok := strings.Cut(s, ":"); ok && len(h) == 1 {
		return "0" + h + ":" + m
	}
	return s
}

// ParseAmount reads a peso amount, ignoring thousands separators, currency
// signs and spaces. Decimals are not accepted.
func ParseAmount(text string) (float64, error) {
	var b strings.Builder
	for _, r := range text {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.' || r == ',' || r == '$' || unicode.IsSpace(r):
		default:
			return 0, errors.New("escribe solo el valor, por ejemplo 1.423.500")
		}
	}
	if b.Len() == 0 {
		return 0, errors.New("escribe solo el valor, por ejemplo 1.423.500")
	}
	return strconv.ParseFloat(b.String(), 64)
}

// ParseScheduleInput reads the hours of one weekly template day. It takes
// the same forms as ParseShiftInput but no overtime columns.
func ParseScheduleInput(text string) (entry, exit string, err error) {
	entry, exit, _, err = ParseShiftInput(text)
	if err != nil {
		return "", "", err
	}
	if len(strings.Fields(strings.Replace(text, "-", " ", 1))) != 2 {
		return "", "", errScheduleFormat
	}
	return entry, exit, nil
}
