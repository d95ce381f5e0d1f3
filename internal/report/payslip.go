package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"worker-calculator/pkg/payroll"
)

// Payslip is what gets printed on the PDF.
type Payslip struct {
	WorkerName    string
	Period        string
	MonthlySalary float64
	ShiftCount    int
	Summary       payroll.PaySummary
	GeneratedAt   time.Time
}

type payslipLine struct {
	label      string
	surcharge  string
	hours, pay float64
}

func (p Payslip) lines() []payslipLine {
	s := p.Summary
	return []payslipLine{
		{"Horas ordinarias", "100%", s.OrdinaryHours, s.OrdinaryPay},
		{"Extras diurnas", "125%", s.DaytimeExtraHours, s.DaytimeExtraPay},
		{"Extras nocturnas", "175%", s.NighttimeExtraHours, s.NighttimeExtraPay},
		{"Dominicales", "175%", s.SundayExtraHours, s.SundayExtraPay},
		{"Dominicales nocturnas", "200%", s.SundayNightExtraHours, s.SundayNightExtraPay},
	}
}

// WritePayslip renders p as an A4 PDF.
func WritePayslip(w io.Writer, p Payslip) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Liquidación de horas"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	name := p.WorkerName
	if name == "" {
		name = "Sin nombre"
	}
	pdf.Cell(0, 7, tr(fmt.Sprintf("Trabajador: %s", name)))
	pdf.Ln(6)
	if p.Period != "" {
		pdf.Cell(0, 7, tr(fmt.Sprintf("Periodo: %s", p.Period)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, tr(fmt.Sprintf("Salario mensual: %s (hora: %s)",
		payroll.FormatCurrency(p.MonthlySalary), payroll.FormatCurrency(payroll.HourlyRate(p.MonthlySalary)))))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Jornadas registradas: %d", p.ShiftCount)))
	pdf.Ln(10)

	widths := []float64{70, 30, 35, 55}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range []string{"Concepto", "Recargo", "Horas", "Valor"} {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, l := range p.lines() {
		pdf.CellFormat(widths[0], 8, tr(l.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, l.surcharge, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 8, payroll.FormatHours(l.hours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, payroll.FormatCurrency(l.pay), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(widths[0]+widths[1], 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[2], 8, payroll.FormatHours(p.Summary.TotalHours), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, payroll.FormatCurrency(p.Summary.TotalEarned), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("Valor hora = salario mensual / 240. Los festivos no se detectan: "+
		"solo los domingos se liquidan como dominicales."), "", "L", false)
	if !p.GeneratedAt.IsZero() {
		pdf.Cell(0, 5, "Generado: "+p.GeneratedAt.Format("2006-01-02 15:04"))
	}

	return pdf.Output(w)
}
