package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"worker-calculator/internal/report"
	"worker-calculator/pkg/payroll"

	"gopkg.in/telebot.v3"
)

const maxImportSize = 5 << 20

type exportFiles struct {
	pdf, xlsx bytes.Buffer
}

// export sends the payslip PDF and the shift workbook for all stored shifts.
// Both files are rendered on the worker pool.
func (h *Handler) export(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	data, err := h.Shifts.LaborData(ctx, c.Chat().ID)
	if err != nil {
		return c.Send("Error al leer las jornadas: " + err.Error())
	}
	if len(data.Shifts) == 0 {
		return c.Send("No hay jornadas para exportar.")
	}

	v, err := h.Async.SubmitAsync(ctx, func() (any, error) {
		summary := data.Summary()
		files := &exportFiles{}
		err := report.WritePayslip(&files.pdf, report.Payslip{
			WorkerName:    data.WorkerName,
			MonthlySalary: data.MonthlySalary,
			ShiftCount:    len(data.Shifts),
			Summary:       summary,
			GeneratedAt:   time.Now(),
		})
		if err != nil {
			return nil, fmt.Errorf("payslip: %w", err)
		}
		if err := report.WriteWorkbook(&files.xlsx, data, summary); err != nil {
			return nil, fmt.Errorf("workbook: %w", err)
		}
		return files, nil
	})
	if err != nil {
		log.Printf("[export] chat=%d: %v", c.Chat().ID, err)
		return c.Send("Error al generar los archivos: " + err.Error())
	}
	files := v.(*exportFiles)

	stamp := time.Now().Format("2006-01-02")
	pdf := &telebot.Document{
		File:     telebot.FromReader(&files.pdf),
		FileName: "liquidacion-" + stamp + ".pdf",
		MIME:     "application/pdf",
	}
	if err := c.Send(pdf); err != nil {
		return err
	}
	xlsx := &telebot.Document{
		File:     telebot.FromReader(&files.xlsx),
		FileName: "jornadas-" + stamp + ".xlsx",
		MIME:     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
	return c.Send(xlsx)
}

// handleImport adds the shifts of an uploaded workbook. All rows are
// validated before any of them is stored.
func (h *Handler) handleImport(c telebot.Context) error {
	doc := c.Message().Document
	if doc == nil || !strings.EqualFold(path.Ext(doc.FileName), ".xlsx") {
		return c.Send("Solo se pueden importar archivos .xlsx")
	}
	if doc.FileSize > maxImportSize {
		return c.Send("El archivo es demasiado grande.")
	}

	rc, err := h.Bot.File(&doc.File)
	if err != nil {
		return c.Send("No se pudo descargar el archivo: " + err.Error())
	}
	defer rc.Close()

	shifts, err := report.ReadShifts(rc)
	if err != nil {
		return c.Send("No se pudo leer el archivo: " + err.Error())
	}
	if len(shifts) == 0 {
		return c.Send("El archivo no tiene jornadas.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	stored, err := h.Shifts.ImportShifts(ctx, c.Chat().ID, shifts)
	var verr *payroll.ValidationError
	if errors.As(err, &verr) {
		return c.Send("Archivo no válido: " + verr.Error())
	}
	if err != nil {
		return c.Send("No se importó ninguna jornada: " + err.Error())
	}
	log.Printf("[import] chat=%d imported %d shifts", c.Chat().ID, len(stored))
	return c.Send(fmt.Sprintf("✅ Se importaron %d jornadas.", len(stored)))
}
