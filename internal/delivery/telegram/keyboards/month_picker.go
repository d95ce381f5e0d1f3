package keyboards

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"worker-calculator/pkg/payroll"
)

var monthAbbr = [12]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// MonthCounts tallies shifts per month of year.
func MonthCounts(shifts []payroll.Shift, year int) map[time.Month]int {
	counts := make(map[time.Month]int)
	for _, s := range shifts {
		if s.Date.Year() == year {
			counts[s.Date.Month()]++
		}
	}
	return counts
}

// BuildMonthKeyboard lays out the months of year four per row with the
// number of shifts recorded in each. Empty months are inert.
func BuildMonthKeyboard(year int, counts map[time.Month]int) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}

	var rows []telebot.Row
	row := telebot.Row{}
	for m := time.January; m <= time.December; m++ {
		label := monthAbbr[m-1]
		unique := "cal_ignore"
		if n := counts[m]; n > 0 {
			label += " (" + strconv.Itoa(n) + ")"
			unique = "pick_month"
		}
		row = append(row, markup.Data(label, unique, fmt.Sprintf("%04d-%02d", year, int(m))))
		if len(row) == 4 {
			rows = append(rows, row)
			row = telebot.Row{}
		}
	}
	rows = append(rows, markup.Row(
		markup.Data("« "+strconv.Itoa(year-1), "month_prev", strconv.Itoa(year)),
		markup.Data(strconv.Itoa(year+1)+" »", "month_next", strconv.Itoa(year)),
	))
	markup.Inline(rows...)

	return "Selecciona el mes (" + strconv.Itoa(year) + "):", markup
}
