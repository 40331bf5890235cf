package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/duailibe/jcli-create/internal/ui"
)

const dateLayout = "2006-01-02"

// acceptedLayouts are tried in order; the first that parses wins, so an
// ambiguous "03/04/2026" reads month first.
var acceptedLayouts = []string{
	"2006-1-2",
	"1/2/2006",
	"2/1/2006",
	"20060102",
}

var errDateFormat = errors.New("Invalid date format. Try YYYY-MM-DD or just the day number")

// DatePicker walks a month calendar. Each call to Step consumes one answer
// and either moves the displayed month, finishes with a date (possibly
// empty, meaning no date), or rejects the answer.
type DatePicker struct {
	Today time.Time
	Year  int
	Month time.Month
}

func NewDatePicker(today time.Time) *DatePicker {
	return &DatePicker{Today: today, Year: today.Year(), Month: today.Month()}
}

// Step applies one answer. done reports that the interaction is over and
// date holds the selection. A non-nil error rejects the answer and leaves
// the picker unchanged.
func (d *DatePicker) Step(input string) (date string, done bool, err error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "":
		return "", true, nil
	case "t":
		return d.Today.Format(dateLayout), true, nil
	case "n":
		d.shift(1)
		return "", false, nil
	case "p":
		d.shift(-1)
		return "", false, nil
	}

	for _, layout := range acceptedLayouts {
		if parsed, parseErr := time.Parse(layout, input); parseErr == nil {
			return parsed.Format(dateLayout), true, nil
		}
	}

	day, convErr := strconv.Atoi(input)
	if convErr != nil || day < 1 || day > 31 {
		return "", false, errDateFormat
	}
	if day > daysIn(d.Year, d.Month) {
		return "", false, fmt.Errorf("Invalid day %d for %s", day, d.Month)
	}
	return time.Date(d.Year, d.Month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout), true, nil
}

func (d *DatePicker) shift(months int) {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	d.Year, d.Month = first.Year(), first.Month()
}

// Weeks returns the displayed month as Monday-first rows of day numbers,
// with zero for cells outside the month.
func (d *DatePicker) Weeks() [][7]int {
	offset := (int(time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()) + 6) % 7
	total := daysIn(d.Year, d.Month)

	var weeks [][7]int
	var week [7]int
	col := offset
	for day := 1; day <= total; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// Render draws the displayed month with today highlighted.
func (d *DatePicker) Render(out *ui.Printer) {
	out.Title(fmt.Sprintf("Calendar for %s %d", d.Month, d.Year))
	out.Println(strings.Repeat("-", 40))
	out.Println(" Mo Tu We Th Fr Sa Su")

	showingToday := d.Year == d.Today.Year() && d.Month == d.Today.Month()
	for _, week := range d.Weeks() {
		var b strings.Builder
		for _, day := range week {
			switch {
			case day == 0:
				b.WriteString("   ")
			case showingToday && day == d.Today.Day():
				b.WriteString(out.Accent(fmt.Sprintf("%2d", day)) + " ")
			default:
				fmt.Fprintf(&b, "%2d ", day)
			}
		}
		out.Println(strings.TrimRight(b.String(), " "))
	}

	out.Println()
	out.Println(out.Accent("Today is highlighted"))
	out.Println("Commands: [n]ext month, [p]revious month, [t]oday, or enter date (YYYY-MM-DD)")
}

// PickDate runs the calendar until a date is chosen or skipped.
func (p *Prompter) PickDate(today time.Time) (string, error) {
	picker := NewDatePicker(today)
	for {
		picker.Render(p.out)
		p.out.Printf("\nEnter command or date: ")
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}

		date, done, stepErr := picker.Step(answer)
		if stepErr != nil {
			p.out.Error(stepErr.Error())
			continue
		}
		if done {
			return date, nil
		}
	}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
