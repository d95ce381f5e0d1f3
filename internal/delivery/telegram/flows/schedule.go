package flows

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"worker-calculator/internal/app/service"
	"worker-calculator/internal/delivery/telegram/keyboards"
	"worker-calculator/internal/delivery/telegram/middleware"
	"worker-calculator/internal/delivery/telegram/router"
	"worker-calculator/internal/delivery/telegram/state"
	"worker-calculator/pkg/payroll"

	"gopkg.in/telebot.v3"
)

// ScheduleText describes the weekly template that will be applied.
func ScheduleText(schedule payroll.WeeklySchedule) string {
	var b strings.Builder
	b.WriteString("🗓 Horario semanal\n")
	for i, d := range schedule {
		if d.Active {
			fmt.Fprintf(&b, "%s: %s - %s\n", payroll.DayNames[i], d.Entry, d.Exit)
		} else {
			fmt.Fprintf(&b, "%s: libre\n", payroll.DayNames[i])
		}
	}
	b.WriteString("\nToca un día para activarlo o desactivarlo y ✏️ para cambiar su horario.")
	b.WriteString("\nSi ya existe una jornada para alguna fecha, no se duplicará.")
	return b.String()
}

// ShowSchedule sends the chat's weekly template with its editor.
func ShowSchedule(c telebot.Context, workers *service.WorkerService) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	schedule, err := workers.Schedule(ctx, c.Chat().ID)
	if err != nil {
		return c.Send("Error al leer el horario: " + err.Error())
	}
	return middleware.EditOrSend(c, ScheduleText(schedule), keyboards.ScheduleEditor(schedule))
}

func parseDay(payload string) (int, bool) {
	day, err := strconv.Atoi(payload)
	if err != nil || day < 0 || day >= len(payroll.DayNames) {
		return 0, false
	}
	return day, true
}

// RegisterSchedule wires the schedule editor. showCalendar opens the date
// picker for the first week to generate.
func RegisterSchedule(r *router.CallbackRouter, shifts *service.ShiftServiceImpl, workers *service.WorkerService, st *state.Store, showCalendar func(telebot.Context) error) {
	r.Register("sched_toggle", func(c telebot.Context, payload string) error {
		day, ok := parseDay(payload)
		if !ok {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if _, err := workers.ToggleScheduleDay(ctx, c.Chat().ID, day); err != nil {
			return c.Send("No se pudo cambiar el horario: " + err.Error())
		}
		return ShowSchedule(c, workers)
	})

	r.Register("sched_edit", func(c telebot.Context, payload string) error {
		day, ok := parseDay(payload)
		if !ok {
			return nil
		}
		st.Set(c.Chat().ID, state.Pending{Kind: state.WaitScheduleDay, Day: day})
		return middleware.EditOrSend(c, "Escribe la entrada y la salida para el "+
			strings.ToLower(payroll.DayNames[day])+", por ejemplo 08:00 17:00")
	})

	r.Register("sched_generate", func(c telebot.Context, payload string) error {
		st.Set(c.Chat().ID, state.Pending{Kind: state.PickScheduleStart})
		return showCalendar(c)
	})

	r.Register("schedule_weeks", func(c telebot.Context, payload string) error {
		weeks, err := strconv.Atoi(payload)
		if err != nil || weeks < 1 {
			return nil
		}
		chatID := c.Chat().ID
		p, ok := st.Take(chatID, state.PickScheduleWeeks)
		if !ok {
			return middleware.EditOrSend(c, "Primero selecciona la fecha de inicio.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		schedule, err := workers.Schedule(ctx, chatID)
		if err != nil {
			return c.Send("Error al leer el horario: " + err.Error())
		}
		generated, err := shifts.GenerateWeeks(ctx, chatID, schedule, p.Date, weeks)
		if err != nil {
			return c.Send("Error al generar las jornadas: " + err.Error())
		}
		log.Printf("[schedule] chat=%d start=%s weeks=%d generated=%d", chatID, p.Date.Format(payroll.DateLayout), weeks, len(generated))
		if len(generated) == 0 {
			return middleware.EditOrSend(c, "No se generaron nuevas jornadas. Puede que ya existan para las fechas seleccionadas.")
		}
		return middleware.EditOrSend(c, fmt.Sprintf("✅ Se generaron %d jornadas.", len(generated)))
	})
}
