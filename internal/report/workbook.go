package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"worker-calculator/pkg/payroll"
)

const (
	ShiftsSheet  = "Jornadas"
	SummarySheet = "Resumen"
)

var shiftHeader = []any{
	"Fecha", "Entrada", "Salida",
	"Extras diurnas", "Extras nocturnas", "Dominicales", "Dominicales nocturnas",
	"Horas", "Horas nocturnas", "Domingo",
}

// WriteWorkbook writes the shift list and its summary as an xlsx file.
func WriteWorkbook(w io.Writer, data payroll.LaborData, summary payroll.PaySummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ShiftsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(ShiftsSheet, "A1", &shiftHeader); err != nil {
		return err
	}
	for i, s := range data.Shifts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		sunday := "no"
		if payroll.IsSunday(s.Date) {
			sunday = "sí"
		}
		row := []any{
			s.Date.Format(payroll.DateLayout), s.EntryTime, s.ExitTime,
			s.ManualOvertime.DaytimeExtra, s.ManualOvertime.NighttimeExtra,
			s.ManualOvertime.SundayExtra, s.ManualOvertime.SundayNightExtra,
			payroll.ShiftHours(s.EntryTime, s.ExitTime), payroll.NightHours(s.EntryTime, s.ExitTime),
			sunday,
		}
		if err := f.SetSheetRow(ShiftsSheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	rows := [][]any{
		{"Trabajador", data.WorkerName},
		{"Salario mensual", data.MonthlySalary},
		{"Valor hora", payroll.HourlyRate(data.MonthlySalary)},
		{},
		{"Concepto", "Horas", "Valor"},
		{"Horas ordinarias", summary.OrdinaryHours, summary.OrdinaryPay},
		{"Extras diurnas", summary.DaytimeExtraHours, summary.DaytimeExtraPay},
		{"Extras nocturnas", summary.NighttimeExtraHours, summary.NighttimeExtraPay},
		{"Dominicales", summary.SundayExtraHours, summary.SundayExtraPay},
		{"Dominicales nocturnas", summary.SundayNightExtraHours, summary.SundayNightExtraPay},
		{"Total", summary.TotalHours, summary.TotalEarned},
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// ReadShifts loads shifts from the Jornadas sheet, or the first sheet when
// there is none. The first row is a header. Only date, entry and exit are
// required; missing overtime columns count as zero. Shift ids are
// "row-N" so errors and ids point back at the spreadsheet.
func ReadShifts(r io.Reader) ([]payroll.Shift, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ShiftsSheet)
	if err != nil {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		rows, err = f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
		}
	}
	if len(rows) < 2 {
		return nil, nil
	}

	var shifts []payroll.Shift
	for i, row := range rows[1:] {
		n := i + 2
		if isBlank(row) {
			continue
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: expected date, entry and exit", n)
		}
		date, err := payroll.ParseDate(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date %q", n, row[0])
		}
		s := payroll.Shift{
			ID:        "row-" + strconv.Itoa(n),
			Date:      date,
			EntryTime: strings.TrimSpace(row[1]),
			ExitTime:  strings.TrimSpace(row[2]),
		}
		extras := []*float64{
			&s.ManualOvertime.DaytimeExtra,
			&s.ManualOvertime.NighttimeExtra,
			&s.ManualOvertime.SundayExtra,
			&s.ManualOvertime.SundayNightExtra,
		}
		for j, dst := range extras {
			col := 3 + j
			if col >= len(row) || strings.TrimSpace(row[col]) == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(row[col]), ",", "."), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad number %q in column %d", n, row[col], col+1)
			}
			*dst = v
		}
		shifts = append(shifts, s)
	}
	return shifts, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
