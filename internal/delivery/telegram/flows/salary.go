package flows

import (
	"context"
	"strconv"

	"worker-calculator/internal/app/service"
	"worker-calculator/internal/delivery/telegram/middleware"
	"worker-calculator/internal/delivery/telegram/router"
	"worker-calculator/internal/delivery/telegram/state"
	"worker-calculator/pkg/payroll"

	"gopkg.in/telebot.v3"
)

// SaveSalary stores the monthly salary for the chat and confirms it.
func SaveSalary(c telebot.Context, workers *service.WorkerService, amount float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := workers.SetSalary(ctx, c.Chat().ID, amount); err != nil {
		return c.Send("No se pudo guardar el salario: " + err.Error())
	}
	return middleware.EditOrSend(c, "✅ Salario mensual: "+payroll.FormatCurrency(amount)+
		"\nValor hora: "+payroll.FormatCurrency(payroll.HourlyRate(amount)))
}

func RegisterSalary(r *router.CallbackRouter, workers *service.WorkerService, st *state.Store) {
	r.Register("salary_pick", func(c telebot.Context, payload string) error {
		amount, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			return nil
		}
		st.Clear(c.Chat().ID)
		return SaveSalary(c, workers, amount)
	})

	r.Register("salary_custom", func(c telebot.Context, payload string) error {
		st.Set(c.Chat().ID, state.Pending{Kind: state.WaitSalary})
		return middleware.EditOrSend(c, "Escribe tu salario mensual, por ejemplo 1.423.500")
	})
}
