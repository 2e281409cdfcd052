package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
)

// Request модели

// CreateSessionRequest запрос на открытие сессии бронирования
type CreateSessionRequest struct {
	Auth     domain.SessionContext `json:"-"`
	TalentID string                `json:"talentId"`
}

// SelectDateRequest выбор дня в отображаемом месяце
type SelectDateRequest struct {
	Day int `json:"day"`
}

// SelectTimeRequest выбор времени из доступных слотов
type SelectTimeRequest struct {
	Time string `json:"time"`
}

// SelectDurationRequest выбор длительности сессии
type SelectDurationRequest struct {
	Duration string `json:"duration"`
}

// ChangeMonthRequest переключение месяца (+1 / -1)
type ChangeMonthRequest struct {
	Delta int `json:"delta"`
}

// Response модели

// CalendarCell клетка календаря. Day = 0 для пустой клетки.
type CalendarCell struct {
	Day        int  `json:"day"`
	Blank      bool `json:"blank"`
	Past       bool `json:"past"`
	Selected   bool `json:"selected"`
	Selectable bool `json:"selectable"`
}

// CalendarResponse сетка месяца
type CalendarResponse struct {
	Month         string         `json:"month"` // "2024-03"
	Label         string         `json:"label"` // "March 2024"
	Weekdays      []string       `json:"weekdays"`
	LeadingBlanks int            `json:"leadingBlanks"`
	DaysInMonth   int            `json:"daysInMonth"`
	Cells         []CalendarCell `json:"cells"`
}

// SlotResponse строка колонки времени
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Selected  bool   `json:"selected"`
}

// StepResponse шаг индикатора прогресса
type StepResponse struct {
	Number    int    `json:"number"`
	Label     string `json:"label"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
}

// SessionResponse производное состояние сессии бронирования
type SessionResponse struct {
	ID                string           `json:"id"`
	TalentID          string           `json:"talentId"`
	Stage             string           `json:"stage"`
	Steps             []StepResponse   `json:"steps"`
	Calendar          CalendarResponse `json:"calendar"`
	SelectedDate      *string          `json:"selectedDate"`      // "2024-03-15"
	SelectedDateLabel string           `json:"selectedDateLabel"` // "Friday, Mar 15"
	SelectedTime      *string          `json:"selectedTime"`      // "10:00 AM"
	Duration          string           `json:"duration"`
	Durations         []string         `json:"durations"`
	Loading           bool             `json:"loading"`
	LookupFailed      bool             `json:"lookupFailed"`
	DayOfWeek         string           `json:"dayOfWeek"`
	AvailableLabels   []string         `json:"availableLabels"`
	Slots             []SlotResponse   `json:"slots"`
	Summary           string           `json:"summary"`
	CanAdvance        bool             `json:"canAdvance"`
	Applied           bool             `json:"applied"` // false, если переход был отклонен
	UpdatedAt         string           `json:"updatedAt"`
}

// ConfirmationResponse подтверждение завершенного бронирования
type ConfirmationResponse struct {
	ID          int64  `json:"id"`
	SessionID   string `json:"sessionId"`
	TalentID    string `json:"talentId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	Duration    string `json:"duration"`
	CreatedAt   string `json:"createdAt"`
}

// ConfirmationListResponse список подтверждений таланта
type ConfirmationListResponse struct {
	Confirmations []ConfirmationResponse `json:"confirmations"`
	Total         int                    `json:"total"`
}

const noTimeSelected = "No time selected"

var stepLabels = []struct {
	stage domain.BookingStage
	label string
}{
	{domain.StageSelectingTime, "Select Time"},
	{domain.StageEnteringDetails, "Details"},
	{domain.StagePaying, "Payment"},
}

// FromMonthGrid конвертирует сетку месяца без привязки к сессии
func FromMonthGrid(grid domain.MonthGrid, now time.Time) CalendarResponse {
	return buildCalendar(grid, now, nil)
}

// FromDomainSession конвертирует сессию в ответ
func FromDomainSession(s *domain.BookingSession, applied bool, now time.Time) *SessionResponse {
	resp := &SessionResponse{
		ID:              s.ID.String(),
		TalentID:        s.TalentID,
		Stage:           string(s.Stage),
		Steps:           buildSteps(s.Stage),
		Calendar:        buildCalendar(domain.BuildMonthGrid(s.Month.First()), now, s.SelectedDate),
		Duration:        s.Duration,
		Durations:       domain.Durations,
		Loading:         s.Loading,
		LookupFailed:    s.LookupFailed,
		DayOfWeek:       s.DayOfWeek,
		AvailableLabels: make([]string, 0, len(s.AvailableLabels)),
		Summary:         noTimeSelected,
		CanAdvance:      s.CanAdvance(),
		Applied:         applied,
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}

	for _, l := range s.AvailableLabels {
		resp.AvailableLabels = append(resp.AvailableLabels, l.String())
	}

	views := s.Slots()
	resp.Slots = make([]SlotResponse, len(views))
	for i, v := range views {
		resp.Slots[i] = SlotResponse{
			Time:      v.Label.String(),
			Available: v.Available,
			Selected:  v.Selected,
		}
	}

	if s.SelectedDate != nil {
		date := s.SelectedDate.Format(domain.DateFormat)
		resp.SelectedDate = &date
		resp.SelectedDateLabel = s.SelectedDate.Format(domain.DayLabelFormat)
	}
	if s.SelectedTime != nil {
		t := s.SelectedTime.String()
		resp.SelectedTime = &t
	}
	if s.HasCompleteSelection() {
		resp.Summary = fmt.Sprintf("%s • %s", resp.SelectedDateLabel, *resp.SelectedTime)
	}

	return resp
}

// FromDomainConfirmation конвертирует подтверждение в ответ
func FromDomainConfirmation(c *domain.Confirmation) *ConfirmationResponse {
	return &ConfirmationResponse{
		ID:          c.ID,
		SessionID:   c.SessionID.String(),
		TalentID:    c.TalentID,
		BookingDate: c.BookingDate.Format(domain.DateFormat),
		StartTime:   c.StartTime.String(),
		Duration:    c.DurationLabel,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainConfirmationList конвертирует список подтверждений
func FromDomainConfirmationList(list []*domain.Confirmation) *ConfirmationListResponse {
	items := make([]ConfirmationResponse, len(list))
	for i, c := range list {
		items[i] = *FromDomainConfirmation(c)
	}
	return &ConfirmationListResponse{
		Confirmations: items,
		Total:         len(items),
	}
}

func buildSteps(stage domain.BookingStage) []StepResponse {
	steps := make([]StepResponse, len(stepLabels))
	current := stage.Number()
	for i, sl := range stepLabels {
		n := sl.stage.Number()
		steps[i] = StepResponse{
			Number:    n,
			Label:     sl.label,
			Active:    current >= n,
			Completed: current > n,
		}
	}
	return steps
}

func buildCalendar(grid domain.MonthGrid, now time.Time, selected *time.Time) CalendarResponse {
	cells := make([]CalendarCell, len(grid.Cells))
	for i, day := range grid.Cells {
		if day == 0 {
			cells[i] = CalendarCell{Blank: true}
			continue
		}
		past := grid.Month.IsPastDay(day, now)
		cells[i] = CalendarCell{
			Day:        day,
			Past:       past,
			Selected:   selected != nil && selected.Equal(grid.Month.Date(day)),
			Selectable: !past,
		}
	}

	return CalendarResponse{
		Month:         grid.Month.String(),
		Label:         grid.Label,
		Weekdays:      domain.WeekdayHeaders,
		LeadingBlanks: grid.LeadingBlanks,
		DaysInMonth:   grid.DaysInMonth,
		Cells:         cells,
	}
}
