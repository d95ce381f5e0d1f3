package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"worker-calculator/internal/app/service"
	"worker-calculator/internal/delivery/telegram/flows"
	"worker-calculator/internal/delivery/telegram/keyboards"
	"worker-calculator/internal/delivery/telegram/middleware"
	"worker-calculator/internal/delivery/telegram/router"
	"worker-calculator/internal/delivery/telegram/state"
	"worker-calculator/pkg/calendar"
	"worker-calculator/pkg/payroll"

	"gopkg.in/telebot.v3"
)

const requestTimeout = 15 * time.Second

type Handler struct {
	Bot      *telebot.Bot
	Shifts   *service.ShiftServiceImpl
	Workers  *service.WorkerService
	Async    *service.AsyncService
	Calendar *calendar.CalendarController

	state  *state.Store
	router *router.CallbackRouter
}

const helpText = `Comandos:
/start muestra el menú
/nombre <tu nombre> cambia el nombre del reporte
/ayuda muestra esta ayuda

Para registrar una jornada escribe la hora de entrada y de salida, por ejemplo 08:00 17:00 o 22:00-06:00.
Puedes agregar horas extra manuales en este orden: diurnas, nocturnas, dominicales y dominicales nocturnas.
También puedes enviar un archivo .xlsx con columnas Fecha, Entrada, Salida.`

func (h *Handler) Register() {
	h.state = state.New()
	h.router = router.New()

	if h.Calendar != nil {
		h.Calendar.OnDate = h.onDatePicked
		h.router.CalDelegate = h.Calendar.HandleCallback
	}

	h.router.Register("addshift_today", func(c telebot.Context, payload string) error {
		now := time.Now()
		return h.askShift(c, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
	})
	h.router.Register("addshift_other", func(c telebot.Context, payload string) error {
		h.state.Set(c.Chat().ID, state.Pending{Kind: state.PickShiftDate})
		return h.Calendar.ShowCalendar(c)
	})
	flows.RegisterSummary(h.router, h.Shifts, h.Async)
	flows.RegisterSalary(h.router, h.Workers, h.state)
	flows.RegisterSchedule(h.router, h.Shifts, h.Workers, h.state, h.Calendar.ShowCalendar)
	flows.RegisterShifts(h.router, h.Shifts)
	h.router.Attach(h.Bot)

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/ayuda", func(c telebot.Context) error { return c.Send(helpText) })
	h.Bot.Handle("/nombre", h.handleName)
	h.Bot.Handle(telebot.OnText, h.handleText)
	h.Bot.Handle(telebot.OnDocument, h.handleImport)
}

func (h *Handler) handleStart(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	h.state.Clear(c.Chat().ID)
	w, err := h.Workers.EnsureWorker(ctx, c.Chat().ID, c.Sender().FirstName)
	if err != nil {
		log.Printf("[start] chat=%d: %v", c.Chat().ID, err)
		return c.Send("Error al registrar el trabajador: " + err.Error())
	}
	msg := "¡Bienvenido! Registra tus jornadas y calcula horas extra, recargos nocturnos y dominicales."
	if w.MonthlySalary == 0 {
		msg += "\n\nPrimero configura tu salario con el botón " + keyboards.BtnSalary.Text + "."
	}
	return c.Send(msg, keyboards.MainMenu())
}

func (h *Handler) handleName(c telebot.Context) error {
	name := strings.TrimSpace(c.Message().Payload)
	if name == "" {
		return c.Send("Uso: /nombre Juan Pérez")
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := h.Workers.SetName(ctx, c.Chat().ID, name); err != nil {
		return c.Send("No se pudo guardar el nombre: " + err.Error())
	}
	return c.Send("✅ Nombre guardado: " + name)
}

func (h *Handler) handleText(c telebot.Context) error {
	chatID := c.Chat().ID
	text := c.Text()

	switch text {
	case keyboards.BtnAddShift.Text:
		h.state.Clear(chatID)
		return c.Send("¿La jornada es de hoy?", keyboards.ShiftDate())
	case keyboards.BtnSummary.Text:
		h.state.Clear(chatID)
		return c.Send("¿Qué jornadas quieres liquidar?", keyboards.SummaryScope())
	case keyboards.BtnSalary.Text:
		h.state.Clear(chatID)
		return h.showSalary(c)
	case keyboards.BtnSchedule.Text:
		h.state.Clear(chatID)
		return flows.ShowSchedule(c, h.Workers)
	case keyboards.BtnShifts.Text:
		h.state.Clear(chatID)
		return flows.SendShiftList(c, h.Shifts)
	case keyboards.BtnExport.Text:
		h.state.Clear(chatID)
		return h.export(c)
	}

	pending := h.state.Get(chatID)
	switch pending.Kind {
	case state.WaitShift:
		return h.saveShift(c, pending.Date, text)
	case state.WaitSalary:
		amount, err := ParseAmount(text)
		if err != nil {
			return c.Send(err.Error())
		}
		h.state.Clear(chatID)
		return flows.SaveSalary(c, h.Workers, amount)
	case state.WaitScheduleDay:
		return h.saveScheduleDay(c, pending.Day, text)
	}
	return c.Send(helpText, keyboards.MainMenu())
}

func (h *Handler) onDatePicked(date time.Time, c telebot.Context) error {
	chatID := c.Chat().ID
	log.Printf("[calendar] chat=%d picked %s", chatID, date.Format(payroll.DateLayout))

	if h.state.Get(chatID).Kind == state.PickScheduleStart {
		h.state.Set(chatID, state.Pending{Kind: state.PickScheduleWeeks, Date: date})
		msg := fmt.Sprintf("Semana desde el lunes %s. ¿Cuántas semanas quieres generar?",
			payroll.WeekStart(date).Format("02/01/2006"))
		return middleware.EditOrSend(c, msg, keyboards.ScheduleWeeks())
	}
	return h.askShift(c, date)
}

func (h *Handler) askShift(c telebot.Context, date time.Time) error {
	h.state.Set(c.Chat().ID, state.Pending{Kind: state.WaitShift, Date: date})
	msg := "Jornada del " + date.Format("02/01/2006")
	if payroll.IsSunday(date) {
		msg += " (domingo)"
	}
	msg += "\nEscribe la hora de entrada y de salida, por ejemplo 08:00 17:00."
	return middleware.EditOrSend(c, msg)
}

func (h *Handler) saveShift(c telebot.Context, date time.Time, text string) error {
	entry, exit, extra, err := ParseShiftInput(text)
	if err != nil {
		return c.Send(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	shift, err := h.Shifts.AddShift(ctx, c.Chat().ID, payroll.Shift{
		Date:           date,
		EntryTime:      entry,
		ExitTime:       exit,
		ManualOvertime: extra,
	})
	var verr *payroll.ValidationError
	if errors.As(err, &verr) {
		return c.Send("Jornada no válida: " + verr.Reason)
	}
	if err != nil {
		return c.Send("Error al guardar la jornada: " + err.Error())
	}
	h.state.Clear(c.Chat().ID)
	log.Printf("[shift] chat=%d added %s %s-%s", c.Chat().ID, shift.Date.Format(payroll.DateLayout), entry, exit)

	return c.Send(fmt.Sprintf("✅ Jornada guardada: %s %s-%s\nHoras: %s (nocturnas %s)",
		shift.Date.Format("02/01/2006"), entry, exit,
		payroll.FormatHours(payroll.ShiftHours(entry, exit)),
		payroll.FormatHours(payroll.NightHours(entry, exit))), keyboards.MainMenu())
}

func (h *Handler) saveScheduleDay(c telebot.Context, day int, text string) error {
	entry, exit, err := ParseScheduleInput(text)
	if err != nil {
		return c.Send(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if _, err := h.Workers.SetScheduleDay(ctx, c.Chat().ID, day, entry, exit); err != nil {
		return c.Send("No se pudo guardar el horario: " + err.Error())
	}
	h.state.Clear(c.Chat().ID)
	log.Printf("[schedule] chat=%d day=%d set %s-%s", c.Chat().ID, day, entry, exit)
	return flows.ShowSchedule(c, h.Workers)
}

func (h *Handler) showSalary(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	w, err := h.Workers.GetWorker(ctx, c.Chat().ID)
	if err != nil {
		return c.Send("Error al leer el salario: " + err.Error())
	}
	msg := "Aún no has configurado tu salario."
	if w.MonthlySalary > 0 {
		msg = "Salario actual: " + payroll.FormatCurrency(w.MonthlySalary)
	}
	return c.Send(msg+"\nElige un salario o escribe otro valor:", keyboards.Salaries())
}
