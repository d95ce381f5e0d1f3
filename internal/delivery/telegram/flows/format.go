package flows

import (
	"fmt"
	"strings"

	"worker-calculator/pkg/payroll"
)

// SummaryText renders a pay summary as a chat message.
func SummaryText(title string, data payroll.LaborData, s payroll.PaySummary) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	if data.WorkerName != "" {
		fmt.Fprintf(&b, "Trabajador: %s\n", data.WorkerName)
	}
	if data.MonthlySalary == 0 {
		b.WriteString("⚠️ Aún no has configurado el salario, los valores salen en cero.\n")
	} else {
		fmt.Fprintf(&b, "Salario: %s · hora %s\n",
			payroll.FormatCurrency(data.MonthlySalary), payroll.FormatCurrency(payroll.HourlyRate(data.MonthlySalary)))
	}
	b.WriteString("\n")

	lines := []struct {
		label      string
		hours, pay float64
	}{
		{"Ordinarias", s.OrdinaryHours, s.OrdinaryPay},
		{"Extras diurnas (125%)", s.DaytimeExtraHours, s.DaytimeExtraPay},
		{"Extras nocturnas (175%)", s.NighttimeExtraHours, s.NighttimeExtraPay},
		{"Dominicales (175%)", s.SundayExtraHours, s.SundayExtraPay},
		{"Dominicales nocturnas (200%)", s.SundayNightExtraHours, s.SundayNightExtraPay},
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "%s: %s h · %s\n", l.label, payroll.FormatHours(l.hours), payroll.FormatCurrency(l.pay))
	}
	fmt.Fprintf(&b, "\nTotal: %s h · %s", payroll.FormatHours(s.TotalHours), payroll.FormatCurrency(s.TotalEarned))
	return b.String()
}
