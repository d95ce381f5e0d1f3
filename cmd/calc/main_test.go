package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"worker-calculator/internal/report"
	"worker-calculator/pkg/payroll"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHoursCommand(t *testing.T) {
	out, err := run(t, "hours", "--entry", "18:00", "--exit", "02:00")
	if err != nil {
		t.Fatalf("hours: %v", err)
	}
	for _, want := range []string{"Total", "8.00", "Nocturnas", "7.00", "1.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in\n%s", want, out)
		}
	}

	if _, err := run(t, "hours", "--entry", "7", "--exit", "15:00"); err == nil {
		t.Fatalf("expected a bad entry to fail")
	}
}

func TestSummaryCommand(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "jornadas.xlsx")
	pdf := filepath.Join(dir, "liquidacion.pdf")

	data := payroll.LaborData{
		MonthlySalary: 2400000,
		Shifts: []payroll.Shift{
			{ID: "1", Date: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), EntryTime: "08:00", ExitTime: "18:00"},
			{ID: "2", Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), EntryTime: "08:00", ExitTime: "12:00"},
		},
	}
	f, err := os.Create(xlsx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := report.WriteWorkbook(f, data, data.Summary()); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	out, err := run(t, "summary", "--file", xlsx, "--salary", "2400000", "--name", "Ana", "--month", "2025-01", "--pdf", pdf)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(out, "Trabajador: Ana") || !strings.Contains(out, "Jornadas: 1") {
		t.Fatalf("unexpected output\n%s", out)
	}
	if !strings.Contains(out, "10.00") {
		t.Fatalf("expected 10 total hours in\n%s", out)
	}
	b, err := os.ReadFile(pdf)
	if err != nil || !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("expected a pdf at %s (%v)", pdf, err)
	}

	if _, err := run(t, "summary", "--file", xlsx, "--salary=-1"); err == nil {
		t.Fatalf("expected a negative salary to fail")
	}
}
