package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimeLabelLayout формат отображения слота: "9:00 AM"
const TimeLabelLayout = "3:04 PM"

var ErrInvalidTimeLabel = errors.New("invalid time label format")

// Альтернативные форматы, которые может прислать сервис доступности
var acceptedLayouts = []string{
	TimeLabelLayout,
	"03:04 PM",
	"3:04PM",
	"15:04",
	"15:04:05",
}

// TimeLabel время слота в 12-часовом формате ("9:00 AM", "10:00 PM").
// Хранит количество минут от полуночи.
type TimeLabel struct {
	minutes int
}

// NewTimeLabel создает TimeLabel из часов и минут (24-часовой формат)
func NewTimeLabel(hour, minute int) (TimeLabel, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeLabel{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeLabel, hour, minute)
	}
	return TimeLabel{minutes: hour*60 + minute}, nil
}

// ParseTimeLabel разбирает строку времени в одном из допустимых форматов
func ParseTimeLabel(s string) (TimeLabel, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range acceptedLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return TimeLabel{minutes: t.Hour()*60 + t.Minute()}, nil
		}
	}
	return TimeLabel{}, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, s)
}

// MustParseTimeLabel используется для констант
func MustParseTimeLabel(s string) TimeLabel {
	l, err := ParseTimeLabel(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Minutes возвращает количество минут от полуночи
func (l TimeLabel) Minutes() int {
	return l.minutes
}

// String возвращает метку в каноническом виде "9:00 AM"
func (l TimeLabel) String() string {
	t := time.Date(0, 1, 1, l.minutes/60, l.minutes%60, 0, 0, time.UTC)
	return t.Format(TimeLabelLayout)
}

// Clock возвращает время в 24-часовом формате "HH:MM"
func (l TimeLabel) Clock() string {
	return fmt.Sprintf("%02d:%02d", l.minutes/60, l.minutes%60)
}

func (l TimeLabel) IsBefore(other TimeLabel) bool {
	return l.minutes < other.minutes
}

func (l TimeLabel) Equal(other TimeLabel) bool {
	return l.minutes == other.minutes
}

// Value реализует driver.Valuer для записи в колонку TIME
func (l TimeLabel) Value() (driver.Value, error) {
	return l.Clock(), nil
}

// Scan реализует sql.Scanner
func (l *TimeLabel) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimeLabel(v)
		if err != nil {
			return err
		}
		*l = parsed
	case []byte:
		parsed, err := ParseTimeLabel(string(v))
		if err != nil {
			return err
		}
		*l = parsed
	case time.Time:
		l.minutes = v.Hour()*60 + v.Minute()
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeLabel, src)
	}
	return nil
}
