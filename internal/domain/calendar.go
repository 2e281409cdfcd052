package domain

import (
	"fmt"
	"time"
)

// WeekdayHeaders заголовки колонок календаря, неделя начинается с воскресенья
var WeekdayHeaders = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// CalendarMonth месяц, отображаемый в календаре.
// Month использует time.Month (1-12).
type CalendarMonth struct {
	Year  int
	Month time.Month
}

// MonthOf возвращает месяц, содержащий дату. Значимы только год и месяц.
func MonthOf(t time.Time) CalendarMonth {
	return CalendarMonth{Year: t.Year(), Month: t.Month()}
}

// ParseMonth разбирает строку вида "2024-03"
func ParseMonth(s string) (CalendarMonth, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return CalendarMonth{}, err
	}
	return MonthOf(t), nil
}

// First возвращает первый день месяца (UTC, полночь)
func (m CalendarMonth) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Shift сдвигает месяц на delta с переносом года
func (m CalendarMonth) Shift(delta int) CalendarMonth {
	return MonthOf(time.Date(m.Year, m.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC))
}

// DaysInMonth количество дней: нулевой день следующего месяца есть последний день текущего
func (m CalendarMonth) DaysInMonth() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks индекс дня недели первого числа (0 = воскресенье)
func (m CalendarMonth) LeadingBlanks() int {
	return int(m.First().Weekday())
}

// Contains проверяет, что день существует в месяце
func (m CalendarMonth) Contains(day int) bool {
	return day >= 1 && day <= m.DaysInMonth()
}

// Date возвращает полную дату дня месяца
func (m CalendarMonth) Date(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// ISODate форматирует день месяца как YYYY-MM-DD
func (m CalendarMonth) ISODate(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day)
}

// IsPastDay день раньше сегодняшнего (в прошлом месяце или раньше сегодня в текущем)
func (m CalendarMonth) IsPastDay(day int, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return m.Date(day).Before(today)
}

// Label "March 2024"
func (m CalendarMonth) Label() string {
	return m.First().Format(MonthLabelFormat)
}

func (m CalendarMonth) String() string {
	return m.First().Format(MonthFormat)
}

// MonthGrid видимая раскладка месяца.
// Cells содержит LeadingBlanks нулей (пустые клетки), затем дни 1..DaysInMonth.
type MonthGrid struct {
	Month         CalendarMonth
	LeadingBlanks int
	DaysInMonth   int
	Cells         []int
	Label         string
}

// BuildMonthGrid строит сетку месяца, содержащего reference
func BuildMonthGrid(reference time.Time) MonthGrid {
	month := MonthOf(reference)
	blanks := month.LeadingBlanks()
	days := month.DaysInMonth()

	cells := make([]int, blanks, blanks+days)
	for day := 1; day <= days; day++ {
		cells = append(cells, day)
	}

	return MonthGrid{
		Month:         month,
		LeadingBlanks: blanks,
		DaysInMonth:   days,
		Cells:         cells,
		Label:         month.Label(),
	}
}
