package keyboards

import (
	"fmt"
	"strconv"

	"gopkg.in/telebot.v3"

	"worker-calculator/pkg/payroll"
)

var (
	BtnAddShift = telebot.Btn{Text: "➕ Agregar jornada"}
	BtnSummary  = telebot.Btn{Text: "📊 Ver resumen"}
	BtnSalary   = telebot.Btn{Text: "💵 Salario"}
	BtnSchedule = telebot.Btn{Text: "🗓 Horario semanal"}
	BtnShifts   = telebot.Btn{Text: "🗑 Borrar jornadas"}
	BtnExport   = telebot.Btn{Text: "📄 Exportar"}
)

// MaxListedShifts caps the delete list; Telegram keyboards get unwieldy
// beyond this.
const MaxListedShifts = 20

func MainMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(BtnAddShift.Text), markup.Text(BtnSummary.Text)),
		markup.Row(markup.Text(BtnSalary.Text), markup.Text(BtnSchedule.Text)),
		markup.Row(markup.Text(BtnShifts.Text), markup.Text(BtnExport.Text)),
	)
	return markup
}

func ShiftDate() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Hoy", "addshift_today"),
		markup.Data("Otra fecha", "addshift_other"),
	))
	return markup
}

func SummaryScope() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Todas las jornadas", "summary_all"),
		markup.Data("Por mes", "summary_other_month"),
	))
	return markup
}

// Salaries lists the common salary presets plus a button to type one.
func Salaries() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	for _, p := range payroll.CommonSalaries {
		label := fmt.Sprintf("%s · %s", payroll.FormatCurrency(p.Amount), p.Description)
		rows = append(rows, markup.Row(markup.Data(label, "salary_pick", strconv.FormatFloat(p.Amount, 'f', 0, 64))))
	}
	rows = append(rows, markup.Row(markup.Data("Escribir otro valor", "salary_custom")))
	markup.Inline(rows...)
	return markup
}

// ScheduleEditor lists the weekly template with one row per day: the label
// toggles the day on or off and the pencil asks for new hours.
func ScheduleEditor(schedule payroll.WeeklySchedule) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	for i, d := range schedule {
		label := "⬜ " + payroll.DayNames[i] + " libre"
		if d.Active {
			label = "✅ " + payroll.DayNames[i] + " " + d.Entry + "-" + d.Exit
		}
		day := strconv.Itoa(i)
		rows = append(rows, markup.Row(
			markup.Data(label, "sched_toggle", day),
			markup.Data("✏️", "sched_edit", day),
		))
	}
	rows = append(rows, markup.Row(markup.Data("Generar jornadas", "sched_generate")))
	markup.Inline(rows...)
	return markup
}

func ScheduleWeeks() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	row := telebot.Row{}
	for n := 1; n <= 4; n++ {
		row = append(row, markup.Data(strconv.Itoa(n), "schedule_weeks", strconv.Itoa(n)))
	}
	markup.Inline(row)
	return markup
}

// ShiftList shows the most recently added shifts with a delete button each,
// and a button to clear everything.
func ShiftList(shifts []payroll.Shift) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	start := max(0, len(shifts)-MaxListedShifts)
	for _, s := range shifts[start:] {
		label := fmt.Sprintf("✖ %s %s-%s", s.Date.Format(payroll.DateLayout), s.EntryTime, s.ExitTime)
		rows = append(rows, markup.Row(markup.Data(label, "del_shift", s.ID)))
	}
	if len(shifts) > 0 {
		rows = append(rows, markup.Row(markup.Data("Borrar todas", "clear_all")))
	}
	markup.Inline(rows...)
	return markup
}

func ConfirmClear() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Sí, borrar todo", "clear_confirm"),
		markup.Data("Cancelar", "clear_cancel"),
	))
	return markup
}
