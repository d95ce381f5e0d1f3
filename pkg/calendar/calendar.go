package calendar

import (
	"log"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// CalendarController handles the inline date picker. OnDate is called with
// the picked date.
type CalendarController struct {
	Bot    *telebot.Bot
	OnDate func(time.Time, telebot.Context) error
}

var esMonths = map[time.Month]string{
	time.January:   "Enero",
	time.February:  "Febrero",
	time.March:     "Marzo",
	time.April:     "Abril",
	time.May:       "Mayo",
	time.June:      "Junio",
	time.July:      "Julio",
	time.August:    "Agosto",
	time.September: "Septiembre",
	time.October:   "Octubre",
	time.November:  "Noviembre",
	time.December:  "Diciembre",
}

var weekdayHeader = []string{"L", "M", "X", "J", "V", "S", "D"}

// MonthName returns the Spanish name of month.
func MonthName(month time.Month) string {
	if name, ok := esMonths[month]; ok {
		return name
	}
	return month.String()
}

// ShowCalendar sends or edits a date picker for the current month.
func (cc *CalendarController) ShowCalendar(c telebot.Context) error {
	now := time.Now()
	return SendCalendar(c, now.Year(), int(now.Month()))
}

// SendCalendar sends or edits the picker for the given month.
func SendCalendar(c telebot.Context, year, month int) error {
	title, markup := BuildCalendar(year, month)
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// BuildCalendar lays the month out in Monday-first weeks so Sundays always
// sit in the last column.
func BuildCalendar(year, month int) (string, *telebot.ReplyMarkup) {
	year, month = normalize(year, month)
	markup := &telebot.ReplyMarkup{}

	var rows []telebot.Row
	header := telebot.Row{}
	for _, d := range weekdayHeader {
		header = append(header, markup.Data(d, "cal_ignore", d))
	}
	rows = append(rows, header)

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	week := telebot.Row{}
	for i := 0; i < (int(first.Weekday())+6)%7; i++ {
		week = append(week, markup.Data(" ", "cal_ignore", "pad"+strconv.Itoa(i)))
	}
	days := daysInMonth(year, month)
	for d := 1; d <= days; d++ {
		btn := markup.Data(strconv.Itoa(d), "cal_day", strconv.Itoa(d)+"-"+strconv.Itoa(month)+"-"+strconv.Itoa(year))
		week = append(week, btn)
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		for i := len(week); i < 7; i++ {
			week = append(week, markup.Data(" ", "cal_ignore", "tail"+strconv.Itoa(i)))
		}
		rows = append(rows, week)
	}

	prev := markup.Data("<", "cal_prev", strconv.Itoa(month-1)+"-"+strconv.Itoa(year))
	next := markup.Data(">", "cal_next", strconv.Itoa(month+1)+"-"+strconv.Itoa(year))
	rows = append(rows, telebot.Row{prev, next})
	markup.Inline(rows...)

	title := "Selecciona la fecha: " + MonthName(time.Month(month)) + " " + strconv.Itoa(year)
	return title, markup
}

// HandleCallback answers cal_* callbacks. The bot has a single OnCallback
// handler, so the callback router delegates here instead of the calendar
// registering its own.
func (cc *CalendarController) HandleCallback(c telebot.Context) error {
	if c.Callback() == nil {
		return nil
	}
	raw := strings.TrimPrefix(c.Data(), "\f")
	split := strings.SplitN(raw, "|", 2)
	if len(split) != 2 {
		return nil
	}
	payload := split[1]

	switch split[0] {
	case "cal_day":
		date, ok := ParseDay(payload)
		if !ok || cc.OnDate == nil {
			return c.Send("Fecha inválida")
		}
		return cc.OnDate(date, c)
	case "cal_prev", "cal_next":
		parts := SplitDateData(payload)
		if len(parts) != 2 {
			return c.Send("Mes inválido")
		}
		month, _ := strconv.Atoi(parts[0])
		year, _ := strconv.Atoi(parts[1])
		return SendCalendar(c, year, month)
	case "cal_ignore":
		return nil
	}
	log.Printf("[calendar] unknown callback %q", split[0])
	return nil
}

// ParseDay parses a cal_day payload ("d-m-yyyy").
func ParseDay(payload string) (time.Time, bool) {
	parts := SplitDateData(payload)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// SplitDateData splits a date payload into its parts.
func SplitDateData(data string) []string {
	return strings.Split(data, "-")
}

func normalize(year, month int) (int, int) {
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}
	return year, month
}

func daysInMonth(year, month int) int {
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}
