// Package httpapi exposes the pay calculator as a stateless JSON API.
// Every request carries the full shift list; nothing is stored.
package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"worker-calculator/internal/app/service"
	"worker-calculator/internal/report"
	"worker-calculator/pkg/payroll"
)

const (
	maxBodyBytes = 1 << 20
	maxWeeks     = 52
)

type Handler struct {
	Async *service.AsyncService
}

func NewHandler(async *service.AsyncService) *Handler {
	return &Handler{Async: async}
}

// NewRouter builds the chi router with the middleware chain and all routes.
func NewRouter(h *Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(RequestID)
	router.Use(Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(BodyLimit(maxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Route("/api/v1", h.RegisterRoutes)
	return router
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/shift-hours", h.handleShiftHours)
	r.Post("/summary", h.handleSummary)
	r.Post("/schedule", h.handleSchedule)
	r.Post("/payslip", h.handlePayslip)
}

// ShiftPayload is a shift on the wire, with the date as YYYY-MM-DD.
type ShiftPayload struct {
	ID             string                 `json:"id"`
	Date           string                 `json:"date"`
	EntryTime      string                 `json:"entryTime"`
	ExitTime       string                 `json:"exitTime"`
	ManualOvertime payroll.ManualOvertime `json:"manualOvertime"`
}

type ShiftHoursRequest struct {
	EntryTime string `json:"entryTime"`
	ExitTime  string `json:"exitTime"`
}

type ShiftHoursResponse struct {
	TotalHours float64 `json:"totalHours"`
	DayHours   float64 `json:"dayHours"`
	NightHours float64 `json:"nightHours"`
}

type SummaryRequest struct {
	WorkerName    string         `json:"workerName"`
	MonthlySalary float64        `json:"monthlySalary"`
	Shifts        []ShiftPayload `json:"shifts"`
	// Month restricts the summary to "YYYY-MM" when set.
	Month string `json:"month,omitempty"`
	// Period is printed on the payslip.
	Period string `json:"period,omitempty"`
}

type SummaryResponse struct {
	WorkerName string             `json:"workerName,omitempty"`
	HourlyRate float64            `json:"hourlyRate"`
	ShiftCount int                `json:"shiftCount"`
	Summary    payroll.PaySummary `json:"summary"`
	Formatted  map[string]string  `json:"formatted"`
}

type ScheduleRequest struct {
	// Schedule defaults to Monday to Friday 08:00-17:00.
	Schedule *payroll.WeeklySchedule `json:"schedule,omitempty"`
	Start    string                  `json:"start"`
	Weeks    int                     `json:"weeks"`
	Existing []ShiftPayload          `json:"existing"`
}

func (h *Handler) handleShiftHours(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	var payload ShiftHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if err := payroll.ValidateClock(payload.EntryTime); err != nil {
		FailField(w, http.StatusUnprocessableEntity, "validation_error", "entryTime", err.Error(), reqID)
		return
	}
	if err := payroll.ValidateClock(payload.ExitTime); err != nil {
		FailField(w, http.StatusUnprocessableEntity, "validation_error", "exitTime", err.Error(), reqID)
		return
	}
	Success(w, ShiftHoursResponse{
		TotalHours: payroll.ShiftHours(payload.EntryTime, payload.ExitTime),
		DayHours:   payroll.DayHours(payload.EntryTime, payload.ExitTime),
		NightHours: payroll.NightHours(payload.EntryTime, payload.ExitTime),
	}, reqID)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	data, ok := decodeLaborData(w, r)
	if !ok {
		return
	}

	v, err := h.Async.SubmitAsync(r.Context(), func() (any, error) {
		return payroll.CalculateStrict(data.Shifts, data.MonthlySalary)
	})
	if err != nil {
		writeCalcError(w, err, reqID)
		return
	}
	s := v.(payroll.PaySummary)
	Success(w, SummaryResponse{
		WorkerName: data.WorkerName,
		HourlyRate: payroll.HourlyRate(data.MonthlySalary),
		ShiftCount: len(data.Shifts),
		Summary:    s,
		Formatted:  formatted(s),
	}, reqID)
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	var payload SummaryRequest
	data, ok := decodeLaborDataInto(w, r, &payload)
	if !ok {
		return
	}

	v, err := h.Async.SubmitAsync(r.Context(), func() (any, error) {
		s, err := payroll.CalculateStrict(data.Shifts, data.MonthlySalary)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		err = report.WritePayslip(&buf, report.Payslip{
			WorkerName:    data.WorkerName,
			Period:        payload.Period,
			MonthlySalary: data.MonthlySalary,
			ShiftCount:    len(data.Shifts),
			Summary:       s,
			GeneratedAt:   time.Now(),
		})
		if err != nil {
			return nil, fmt.Errorf("render payslip: %w", err)
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		writeCalcError(w, err, reqID)
		return
	}

	pdf := v.([]byte)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="liquidacion.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	var payload ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	start, err := payroll.ParseDate(payload.Start)
	if err != nil {
		FailField(w, http.StatusUnprocessableEntity, "validation_error", "start", "start must be YYYY-MM-DD", reqID)
		return
	}
	if payload.Weeks < 1 || payload.Weeks > maxWeeks {
		FailField(w, http.StatusUnprocessableEntity, "validation_error", "weeks", fmt.Sprintf("weeks must be between 1 and %d", maxWeeks), reqID)
		return
	}
	schedule := payroll.DefaultWeeklySchedule()
	if payload.Schedule != nil {
		schedule = *payload.Schedule
		for i, d := range schedule {
			if !d.Active {
				continue
			}
			if payroll.ValidateClock(d.Entry) != nil || payroll.ValidateClock(d.Exit) != nil {
				FailField(w, http.StatusUnprocessableEntity, "validation_error", "schedule",
					payroll.DayNames[i]+" must use HH:MM times", reqID)
				return
			}
		}
	}
	existing, err := toShifts(payload.Existing)
	if err != nil {
		writeCalcError(w, err, reqID)
		return
	}

	generated := payroll.GenerateShifts(schedule, start, payload.Weeks, existing, uuid.NewString)
	Success(w, toPayloads(generated), reqID)
}

func decodeLaborData(w http.ResponseWriter, r *http.Request) (payroll.LaborData, bool) {
	var payload SummaryRequest
	return decodeLaborDataInto(w, r, &payload)
}

func decodeLaborDataInto(w http.ResponseWriter, r *http.Request, payload *SummaryRequest) (payroll.LaborData, bool) {
	reqID := GetRequestID(r.Context())
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return payroll.LaborData{}, false
	}
	shifts, err := toShifts(payload.Shifts)
	if err != nil {
		writeCalcError(w, err, reqID)
		return payroll.LaborData{}, false
	}
	if payload.Month != "" {
		month, err := time.Parse("2006-01", payload.Month)
		if err != nil {
			FailField(w, http.StatusUnprocessableEntity, "validation_error", "month", "month must be YYYY-MM", reqID)
			return payroll.LaborData{}, false
		}
		shifts = payroll.FilterMonth(shifts, month.Year(), month.Month())
	}
	return payroll.LaborData{
		WorkerName:    payload.WorkerName,
		MonthlySalary: payload.MonthlySalary,
		Shifts:        shifts,
	}, true
}

func toShifts(in []ShiftPayload) ([]payroll.Shift, error) {
	out := make([]payroll.Shift, 0, len(in))
	for i, p := range in {
		date, err := payroll.ParseDate(p.Date)
		if err != nil {
			id := p.ID
			if id == "" {
				id = fmt.Sprintf("#%d", i+1)
			}
			return nil, &payroll.ValidationError{ShiftID: id, Field: "date", Reason: "must be YYYY-MM-DD"}
		}
		out = append(out, payroll.Shift{
			ID:             p.ID,
			Date:           date,
			EntryTime:      p.EntryTime,
			ExitTime:       p.ExitTime,
			ManualOvertime: p.ManualOvertime,
		})
	}
	return out, nil
}

func toPayloads(in []payroll.Shift) []ShiftPayload {
	out := make([]ShiftPayload, 0, len(in))
	for _, s := range in {
		out = append(out, ShiftPayload{
			ID:             s.ID,
			Date:           s.Date.Format(payroll.DateLayout),
			EntryTime:      s.EntryTime,
			ExitTime:       s.ExitTime,
			ManualOvertime: s.ManualOvertime,
		})
	}
	return out
}

func writeCalcError(w http.ResponseWriter, err error, reqID string) {
	var verr *payroll.ValidationError
	var cerr *payroll.ComputationError
	switch {
	case errors.As(err, &verr):
		FailField(w, http.StatusUnprocessableEntity, "validation_error", verr.Field, verr.Error(), reqID)
	case errors.As(err, &cerr):
		FailField(w, http.StatusUnprocessableEntity, "computation_error", cerr.Field, cerr.Error(), reqID)
	default:
		Fail(w, http.StatusInternalServerError, "internal_error", err.Error(), reqID)
	}
}

func formatted(s payroll.PaySummary) map[string]string {
	return map[string]string{
		"totalHours":          payroll.FormatHours(s.TotalHours),
		"totalEarned":         payroll.FormatCurrency(s.TotalEarned),
		"ordinaryPay":         payroll.FormatCurrency(s.OrdinaryPay),
		"daytimeExtraPay":     payroll.FormatCurrency(s.DaytimeExtraPay),
		"nighttimeExtraPay":   payroll.FormatCurrency(s.NighttimeExtraPay),
		"sundayExtraPay":      payroll.FormatCurrency(s.SundayExtraPay),
		"sundayNightExtraPay": payroll.FormatCurrency(s.SundayNightExtraPay),
	}
}
