package flows

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"worker-calculator/internal/app/service"
	"worker-calculator/internal/delivery/telegram/keyboards"
	"worker-calculator/internal/delivery/telegram/middleware"
	"worker-calculator/internal/delivery/telegram/router"
	"worker-calculator/pkg/calendar"
	"worker-calculator/pkg/payroll"

	"gopkg.in/telebot.v3"
)

const requestTimeout = 15 * time.Second

// SendSummary computes the summary for a chat's shifts on the worker pool
// and sends it. A zero month means all shifts.
func SendSummary(c telebot.Context, shifts *service.ShiftServiceImpl, async *service.AsyncService, year int, month time.Month) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var (
		data payroll.LaborData
		err  error
	)
	title := "📊 Resumen de todas las jornadas"
	if month != 0 {
		data, err = shifts.MonthLaborData(ctx, c.Chat().ID, year, month)
		title = fmt.Sprintf("📊 Resumen de %s %d", calendar.MonthName(month), year)
	} else {
		data, err = shifts.LaborData(ctx, c.Chat().ID)
	}
	if err != nil {
		return c.Send("Error al leer las jornadas: " + err.Error())
	}
	if len(data.Shifts) == 0 {
		return middleware.EditOrSend(c, "No hay jornadas registradas para ese periodo.")
	}

	summary, err := async.Summary(ctx, data)
	if err != nil {
		return c.Send("Error al calcular el resumen: " + err.Error())
	}
	return middleware.EditOrSend(c, SummaryText(title, data, summary))
}

func RegisterSummary(r *router.CallbackRouter, shifts *service.ShiftServiceImpl, async *service.AsyncService) {
	r.Register("summary_all", func(c telebot.Context, payload string) error {
		return SendSummary(c, shifts, async, 0, 0)
	})

	r.Register("summary_other_month", func(c telebot.Context, payload string) error {
		return sendMonthPicker(c, shifts, time.Now().Year())
	})

	r.Register("month_prev", func(c telebot.Context, payload string) error {
		y, _ := strconv.Atoi(payload)
		return sendMonthPicker(c, shifts, y-1)
	})

	r.Register("month_next", func(c telebot.Context, payload string) error {
		y, _ := strconv.Atoi(payload)
		return sendMonthPicker(c, shifts, y+1)
	})

	r.Register("pick_month", func(c telebot.Context, payload string) error {
		parts := strings.Split(payload, "-")
		if len(parts) != 2 {
			return nil
		}
		y, _ := strconv.Atoi(parts[0])
		m, _ := strconv.Atoi(parts[1])
		if m < 1 || m > 12 {
			return nil
		}
		return SendSummary(c, shifts, async, y, time.Month(m))
	})
}

func sendMonthPicker(c telebot.Context, shifts *service.ShiftServiceImpl, year int) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	list, err := shifts.ListShifts(ctx, c.Chat().ID)
	if err != nil {
		return c.Send("Error al leer las jornadas: " + err.Error())
	}
	title, markup := keyboards.BuildMonthKeyboard(year, keyboards.MonthCounts(list, year))
	return middleware.EditOrSend(c, title, markup)
}
