package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"worker-calculator/pkg/payroll"
)

func sampleData() payroll.LaborData {
	return payroll.LaborData{
		WorkerName:    "Ana",
		MonthlySalary: 2400000,
		Shifts: []payroll.Shift{
			{ID: "1", Date: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), EntryTime: "08:00", ExitTime: "17:00"},
			{ID: "2", Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), EntryTime: "22:00", ExitTime: "06:00",
				ManualOvertime: payroll.ManualOvertime{SundayNightExtra: 1.5}},
		},
	}
}

func TestWritePayslip(t *testing.T) {
	data := sampleData()
	var buf bytes.Buffer
	err := WritePayslip(&buf, Payslip{
		WorkerName:    data.WorkerName,
		Period:        "Enero 2025",
		MonthlySalary: data.MonthlySalary,
		ShiftCount:    len(data.Shifts),
		Summary:       data.Summary(),
		GeneratedAt:   time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("write payslip: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected a PDF, got %q", buf.String()[:min(20, buf.Len())])
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	data := sampleData()
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, data, data.Summary()); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	shifts, err := ReadShifts(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read shifts: %v", err)
	}
	if len(shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(shifts))
	}
	if shifts[1].EntryTime != "22:00" || shifts[1].ManualOvertime.SundayNightExtra != 1.5 {
		t.Fatalf("unexpected second shift %+v", shifts[1])
	}
	if got := payroll.Calculate(shifts, data.MonthlySalary); got != data.Summary() {
		t.Fatalf("expected the same summary after reading back, got %+v", got)
	}
}

func workbookWith(t *testing.T, sheet string, rows [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("rename sheet: %v", err)
		}
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestReadShiftsFallsBackToFirstSheet(t *testing.T) {
	r := workbookWith(t, "Hoja1", [][]any{
		{"fecha", "entrada", "salida"},
		{"2025-01-06", "08:00", "16:00"},
		{},
		{"2025-01-07", "07:00", "15:00", "0,5"},
	})
	shifts, err := ReadShifts(r)
	if err != nil {
		t.Fatalf("read shifts: %v", err)
	}
	if len(shifts) != 2 {
		t.Fatalf("expected blank rows to be skipped, got %d shifts", len(shifts))
	}
	if shifts[1].ID != "row-4" || shifts[1].ManualOvertime.DaytimeExtra != 0.5 {
		t.Fatalf("unexpected shift %+v", shifts[1])
	}
}

func TestReadShiftsReportsBadRow(t *testing.T) {
	r := workbookWith(t, ShiftsSheet, [][]any{
		{"Fecha", "Entrada", "Salida"},
		{"06/01/2025", "08:00", "16:00"},
	})
	_, err := ReadShifts(r)
	if err == nil || !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("expected error for row 2, got %v", err)
	}
}
