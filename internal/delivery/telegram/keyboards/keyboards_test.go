package keyboards

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"worker-calculator/pkg/payroll"
)

func TestBuildMonthKeyboard(t *testing.T) {
	shifts := []payroll.Shift{
		{ID: "1", Date: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Date: time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	title, markup := BuildMonthKeyboard(2025, MonthCounts(shifts, 2025))
	if title != "Selecciona el mes (2025):" {
		t.Fatalf("unexpected title %q", title)
	}
	if len(markup.InlineKeyboard) != 4 {
		t.Fatalf("expected 3 month rows and navigation, got %d rows", len(markup.InlineKeyboard))
	}
	jan := markup.InlineKeyboard[0][0]
	if jan.Text != "Ene (2)" || jan.Unique != "pick_month" || !strings.HasSuffix(jan.Data, "2025-01") {
		t.Fatalf("expected January with two shifts, got %q %q %q", jan.Text, jan.Unique, jan.Data)
	}
	if mar := markup.InlineKeyboard[0][2]; mar.Text != "Mar" || mar.Unique != "cal_ignore" {
		t.Fatalf("expected an inert empty March, got %q %q", mar.Text, mar.Unique)
	}
}

func TestShiftListCapsAndOffersClear(t *testing.T) {
	var shifts []payroll.Shift
	for i := 0; i < MaxListedShifts+5; i++ {
		shifts = append(shifts, payroll.Shift{
			ID:        fmt.Sprintf("id-%d", i),
			Date:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			EntryTime: "08:00",
			ExitTime:  "17:00",
		})
	}
	rows := ShiftList(shifts).InlineKeyboard
	if len(rows) != MaxListedShifts+1 {
		t.Fatalf("expected %d rows, got %d", MaxListedShifts+1, len(rows))
	}
	if first := rows[0][0]; first.Unique != "del_shift" || !strings.HasSuffix(first.Data, "id-5") {
		t.Fatalf("expected the oldest listed shift to be id-5, got %q %q", first.Unique, first.Data)
	}
	if got := rows[len(rows)-1][0].Unique; got != "clear_all" {
		t.Fatalf("expected clear button last, got %q", got)
	}

	if rows := ShiftList(nil).InlineKeyboard; len(rows) != 0 {
		t.Fatalf("expected no buttons for an empty list, got %d rows", len(rows))
	}
}

func TestSalariesIncludesMinimumWage(t *testing.T) {
	rows := Salaries().InlineKeyboard
	if len(rows) != len(payroll.CommonSalaries)+1 {
		t.Fatalf("expected a row per preset plus custom, got %d", len(rows))
	}
	if first := rows[0][0]; first.Unique != "salary_pick" || !strings.HasSuffix(first.Data, "1423500") {
		t.Fatalf("expected minimum wage first, got %q %q", first.Unique, first.Data)
	}
}

func TestScheduleEditor(t *testing.T) {
	schedule := payroll.DefaultWeeklySchedule()
	markup := ScheduleEditor(schedule)
	rows := markup.InlineKeyboard
	if len(rows) != 8 {
		t.Fatalf("expected 7 days and a generate row, got %d rows", len(rows))
	}
	if got := rows[0][0].Text; got != "✅ Lunes 08:00-17:00" {
		t.Fatalf("unexpected Monday label %q", got)
	}
	if got := rows[6][0].Text; got != "⬜ Domingo libre" {
		t.Fatalf("unexpected Sunday label %q", got)
	}
	edit := rows[6][1]
	if edit.Unique != "sched_edit" || !strings.HasSuffix(edit.Data, "6") {
		t.Fatalf("expected edit button for day 6, got %q %q", edit.Unique, edit.Data)
	}
	if rows[7][0].Unique != "sched_generate" {
		t.Fatalf("expected generate button, got %q", rows[7][0].Unique)
	}
}
