package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"worker-calculator/internal/report"
	"worker-calculator/pkg/payroll"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "workercalc",
		Short:         "Liquidación de horas ordinarias, extras, nocturnas y dominicales",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(newSummaryCmd(), newHoursCmd())
	return root
}

func newSummaryCmd() *cobra.Command {
	var (
		file, name, month, pdfPath string
		salary                     float64
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Calcula el resumen de un archivo de jornadas (.xlsx)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			shifts, err := report.ReadShifts(f)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			period := ""
			if month != "" {
				m, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("--month must be YYYY-MM")
				}
				shifts = payroll.FilterMonth(shifts, m.Year(), m.Month())
				period = fmt.Sprintf("%d-%02d", m.Year(), m.Month())
			}

			s, err := payroll.CalculateStrict(shifts, salary)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), name, salary, len(shifts), s)

			if pdfPath == "" {
				return nil
			}
			out, err := os.Create(pdfPath)
			if err != nil {
				return err
			}
			err = report.WritePayslip(out, report.Payslip{
				WorkerName:    name,
				Period:        period,
				MonthlySalary: salary,
				ShiftCount:    len(shifts),
				Summary:       s,
				GeneratedAt:   time.Now(),
			})
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", pdfPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nPDF: %s\n", pdfPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Workbook with Fecha, Entrada, Salida columns")
	cmd.Flags().Float64VarP(&salary, "salary", "s", payroll.MinimumWage2025, "Monthly salary in pesos")
	cmd.Flags().StringVar(&name, "name", "", "Worker name for the report")
	cmd.Flags().StringVar(&month, "month", "", "Only shifts in this month (YYYY-MM)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write a payslip PDF to this path")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newHoursCmd() *cobra.Command {
	var entry, exit string
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Muestra las horas totales, diurnas y nocturnas de una jornada",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := payroll.ValidateClock(entry); err != nil {
				return fmt.Errorf("--entry: %w", err)
			}
			if err := payroll.ValidateClock(exit); err != nil {
				return fmt.Errorf("--exit: %w", err)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total\t%s\n", payroll.FormatHours(payroll.ShiftHours(entry, exit)))
			fmt.Fprintf(w, "Diurnas\t%s\n", payroll.FormatHours(payroll.DayHours(entry, exit)))
			fmt.Fprintf(w, "Nocturnas\t%s\n", payroll.FormatHours(payroll.NightHours(entry, exit)))
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&entry, "entry", "", "Entry time HH:MM")
	cmd.Flags().StringVar(&exit, "exit", "", "Exit time HH:MM")
	_ = cmd.MarkFlagRequired("entry")
	_ = cmd.MarkFlagRequired("exit")
	return cmd
}

func printSummary(out io.Writer, name string, salary float64, count int, s payroll.PaySummary) {
	if name != "" {
		fmt.Fprintf(out, "Trabajador: %s\n", name)
	}
	fmt.Fprintf(out, "Salario: %s (hora %s)\n", payroll.FormatCurrency(salary), payroll.FormatCurrency(payroll.HourlyRate(salary)))
	fmt.Fprintf(out, "Jornadas: %d\n\n", count)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Concepto\tHoras\tValor\t")
	rows := []struct {
		label      string
		hours, pay float64
	}{
		{"Ordinarias", s.OrdinaryHours, s.OrdinaryPay},
		{"Extras diurnas", s.DaytimeExtraHours, s.DaytimeExtraPay},
		{"Extras nocturnas", s.NighttimeExtraHours, s.NighttimeExtraPay},
		{"Dominicales", s.SundayExtraHours, s.SundayExtraPay},
		{"Dominicales nocturnas", s.SundayNightExtraHours, s.SundayNightExtraPay},
		{"Total", s.TotalHours, s.TotalEarned},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", r.label, payroll.FormatHours(r.hours), payroll.FormatCurrency(r.pay))
	}
	_ = w.Flush()
}
