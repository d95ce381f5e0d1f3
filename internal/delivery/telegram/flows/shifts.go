package flows

import (
	"context"
	"errors"
	"fmt"

	"worker-calculator/internal/app/service"
	"worker-calculator/internal/delivery/telegram/keyboards"
	"worker-calculator/internal/delivery/telegram/middleware"
	"worker-calculator/internal/delivery/telegram/router"
	"worker-calculator/internal/domain"

	"gopkg.in/telebot.v3"
)

// SendShiftList shows the chat's shifts with delete buttons.
func SendShiftList(c telebot.Context, shifts *service.ShiftServiceImpl) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	list, err := shifts.ListShifts(ctx, c.Chat().ID)
	if err != nil {
		return c.Send("Error al leer las jornadas: " + err.Error())
	}
	if len(list) == 0 {
		return middleware.EditOrSend(c, "No hay jornadas registradas.")
	}
	text := fmt.Sprintf("Tienes %d jornadas. Toca una para borrarla.", len(list))
	if len(list) > keyboards.MaxListedShifts {
		text += fmt.Sprintf(" Se muestran las últimas %d.", keyboards.MaxListedShifts)
	}
	return middleware.EditOrSend(c, text, keyboards.ShiftList(list))
}

func RegisterShifts(r *router.CallbackRouter, shifts *service.ShiftServiceImpl) {
	r.Register("del_shift", func(c telebot.Context, payload string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := shifts.DeleteShift(ctx, c.Chat().ID, payload)
		if err != nil && !errors.Is(err, domain.ErrShiftNotFound) {
			return c.Send("Error al borrar la jornada: " + err.Error())
		}
		return SendShiftList(c, shifts)
	})

	r.Register("clear_all", func(c telebot.Context, payload string) error {
		return middleware.EditOrSend(c,
			"⚠️ ¿Seguro que quieres borrar todas las jornadas? Esta acción no se puede deshacer.",
			keyboards.ConfirmClear())
	})

	r.Register("clear_confirm", func(c telebot.Context, payload string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		n, err := shifts.ClearShifts(ctx, c.Chat().ID)
		if err != nil {
			return c.Send("Error al borrar las jornadas: " + err.Error())
		}
		return middleware.EditOrSend(c, fmt.Sprintf("🗑 Se borraron %d jornadas.", n))
	})

	r.Register("clear_cancel", func(c telebot.Context, payload string) error {
		return middleware.EditOrSend(c, "Operación cancelada.")
	})
}
