package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SkillSlot-BookingService/pkg/types"
)

// BookingStage represents the stage of the booking flow
type BookingStage string

const (
	StageSelectingTime   BookingStage = "selecting_time"
	StageEnteringDetails BookingStage = "entering_details"
	StagePaying          BookingStage = "paying"
	StageCompleted       BookingStage = "completed"
)

// Number returns the 1-based step number shown in the progress bar
func (s BookingStage) Number() int {
	switch s {
	case StageSelectingTime:
		return 1
	case StageEnteringDetails:
		return 2
	case StagePaying:
		return 3
	case StageCompleted:
		return 4
	default:
		return 0
	}
}

// ResolveTicket identifies one availability resolution started by SelectDate
type ResolveTicket struct {
	Generation uint64
	Date       time.Time
}

// BookingSession is the selection state of one booking page visit.
// It is not safe for concurrent use; the owner serializes access.
type BookingSession struct {
	ID       uuid.UUID
	TalentID string
	Auth     SessionContext

	Month        CalendarMonth
	SelectedDate *time.Time
	SelectedTime *types.TimeLabel
	Duration     string

	Loading         bool
	AvailableLabels []types.TimeLabel
	DayOfWeek       string
	LookupFailed    bool
	Generation      uint64

	Stage BookingStage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingSession creates a session showing the month of now
func NewBookingSession(id uuid.UUID, talentID string, auth SessionContext, now time.Time) *BookingSession {
	return &BookingSession{
		ID:              id,
		TalentID:        talentID,
		Auth:            auth,
		Month:           MonthOf(now),
		Duration:        DefaultDuration,
		AvailableLabels: []types.TimeLabel{},
		Stage:           StageSelectingTime,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Query returns the lookup key for the ticket's date
func (s *BookingSession) Query(ticket ResolveTicket) DaySlotQuery {
	return DaySlotQuery{TalentID: s.TalentID, ISODate: ticket.Date.Format(DateFormat)}
}

// SelectDate selects a day of the visible month and starts a new resolution.
// Clears the selected time and the availability list.
// Returns false when the day does not exist, is in the past or the stage is not SelectingTime.
func (s *BookingSession) SelectDate(day int, now time.Time) (ResolveTicket, bool) {
	if s.Stage != StageSelectingTime || !s.Month.Contains(day) || s.Month.IsPastDay(day, now) {
		return ResolveTicket{}, false
	}

	date := s.Month.Date(day)
	s.SelectedDate = &date
	s.SelectedTime = nil
	s.AvailableLabels = []types.TimeLabel{}
	s.DayOfWeek = ""
	s.LookupFailed = false
	s.Loading = true
	s.Generation++
	s.UpdatedAt = now

	return ResolveTicket{Generation: s.Generation, Date: date}, true
}

// isCurrent ticket belongs to the latest SelectDate
func (s *BookingSession) isCurrent(ticket ResolveTicket) bool {
	return ticket.Generation == s.Generation &&
		s.SelectedDate != nil &&
		s.SelectedDate.Equal(ticket.Date)
}

// ApplyAvailability replaces the availability list with the result.
// Stale tickets are discarded and false is returned.
func (s *BookingSession) ApplyAvailability(ticket ResolveTicket, result AvailabilityResult, now time.Time) bool {
	if !s.isCurrent(ticket) {
		return false
	}

	labels := make([]types.TimeLabel, len(result.AvailableLabels))
	copy(labels, result.AvailableLabels)

	s.AvailableLabels = labels
	s.DayOfWeek = result.DayOfWeek
	s.LookupFailed = false
	s.Loading = false
	s.UpdatedAt = now
	return true
}

// FailAvailability marks the lookup as failed: no slots, loading finished.
func (s *BookingSession) FailAvailability(ticket ResolveTicket, now time.Time) bool {
	if !s.isCurrent(ticket) {
		return false
	}

	s.AvailableLabels = []types.TimeLabel{}
	s.LookupFailed = true
	s.Loading = false
	s.UpdatedAt = now
	return true
}

// IsSlotAvailable returns true if the label is in the current availability list
func (s *BookingSession) IsSlotAvailable(label types.TimeLabel) bool {
	return !s.Loading && containsLabel(s.AvailableLabels, label)
}

// SelectTime sets the time only if raw is exactly one of the available labels
// ("10:00 AM"); other spellings of the same time are a no-op.
func (s *BookingSession) SelectTime(raw string, now time.Time) bool {
	if s.Stage != StageSelectingTime || s.SelectedDate == nil {
		return false
	}
	label, err := types.ParseTimeLabel(raw)
	if err != nil || label.String() != raw || !s.IsSlotAvailable(label) {
		return false
	}

	s.SelectedTime = &label
	s.UpdatedAt = now
	return true
}

// SelectDuration sets the session duration; allowed until payment starts
func (s *BookingSession) SelectDuration(label string, now time.Time) bool {
	if !IsValidDuration(label) {
		return false
	}
	if s.Stage != StageSelectingTime && s.Stage != StageEnteringDetails {
		return false
	}

	s.Duration = label
	s.UpdatedAt = now
	return true
}

// ChangeMonth shifts the visible month. The selection is a full date and survives navigation.
func (s *BookingSession) ChangeMonth(delta int, now time.Time) {
	s.Month = s.Month.Shift(delta)
	s.UpdatedAt = now
}

// HasCompleteSelection returns true if both date and time are chosen
func (s *BookingSession) HasCompleteSelection() bool {
	return s.SelectedDate != nil && s.SelectedTime != nil
}

// CanAdvance reports whether Advance would succeed
func (s *BookingSession) CanAdvance() bool {
	switch s.Stage {
	case StageSelectingTime:
		return s.HasCompleteSelection()
	case StageEnteringDetails, StagePaying:
		return true
	default:
		return false
	}
}

// Advance moves one stage forward; refused (no-op) when the gate is not met
func (s *BookingSession) Advance(now time.Time) bool {
	if !s.CanAdvance() {
		return false
	}

	switch s.Stage {
	case StageSelectingTime:
		s.Stage = StageEnteringDetails
	case StageEnteringDetails:
		s.Stage = StagePaying
	case StagePaying:
		s.Stage = StageCompleted
	}
	s.UpdatedAt = now
	return true
}

// Retreat moves one stage back keeping the selection; not possible once completed
func (s *BookingSession) Retreat(now time.Time) bool {
	switch s.Stage {
	case StageEnteringDetails:
		s.Stage = StageSelectingTime
	case StagePaying:
		s.Stage = StageEnteringDetails
	default:
		return false
	}
	s.UpdatedAt = now
	return true
}

// IsCompleted returns true if the flow reached the terminal stage
func (s *BookingSession) IsCompleted() bool {
	return s.Stage == StageCompleted
}

// Slots returns the canonical time column with availability flags
func (s *BookingSession) Slots() []SlotView {
	views := make([]SlotView, 0, len(canonicalTimeLabels))
	for _, label := range canonicalTimeLabels {
		views = append(views, SlotView{
			Label:     label,
			Available: s.IsSlotAvailable(label),
			Selected:  s.SelectedTime != nil && s.SelectedTime.Equal(label),
		})
	}
	return views
}

// Confirmation builds the handoff record; nil if the selection is incomplete
func (s *BookingSession) Confirmation(now time.Time) *Confirmation {
	if !s.HasCompleteSelection() {
		return nil
	}
	return &Confirmation{
		SessionID:     s.ID,
		TalentID:      s.TalentID,
		BookingDate:   *s.SelectedDate,
		StartTime:     *s.SelectedTime,
		DurationLabel: s.Duration,
		CreatedAt:     now,
	}
}

// Clone returns a deep copy
func (s *BookingSession) Clone() *BookingSession {
	c := *s
	if s.SelectedDate != nil {
		d := *s.SelectedDate
		c.SelectedDate = &d
	}
	if s.SelectedTime != nil {
		t := *s.SelectedTime
		c.SelectedTime = &t
	}
	c.AvailableLabels = make([]types.TimeLabel, len(s.AvailableLabels))
	copy(c.AvailableLabels, s.AvailableLabels)
	return &c
}
