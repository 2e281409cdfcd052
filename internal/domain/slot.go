package domain

import (
	"time"

	"github.com/m04kA/SkillSlot-BookingService/pkg/types"
)

var canonicalTimeLabels = buildCanonicalTimeLabels()

func buildCanonicalTimeLabels() []types.TimeLabel {
	labels := make([]types.TimeLabel, 0, LastSlotHour-FirstSlotHour+1)
	for hour := FirstSlotHour; hour <= LastSlotHour; hour++ {
		label, err := types.NewTimeLabel(hour, 0)
		if err != nil {
			panic(err)
		}
		labels = append(labels, label)
	}
	return labels
}

// CanonicalTimeLabels returns a copy of the fixed slot list (9:00 AM .. 10:00 PM)
func CanonicalTimeLabels() []types.TimeLabel {
	out := make([]types.TimeLabel, len(canonicalTimeLabels))
	copy(out, canonicalTimeLabels)
	return out
}

// IsCanonicalTimeLabel returns true if the label belongs to the canonical list
func IsCanonicalTimeLabel(label types.TimeLabel) bool {
	return containsLabel(canonicalTimeLabels, label)
}

// FilterCanonical keeps labels that belong to the canonical list, in canonical order, without duplicates
func FilterCanonical(labels []types.TimeLabel) []types.TimeLabel {
	out := make([]types.TimeLabel, 0, len(labels))
	for _, c := range canonicalTimeLabels {
		if containsLabel(labels, c) {
			out = append(out, c)
		}
	}
	return out
}

func containsLabel(labels []types.TimeLabel, label types.TimeLabel) bool {
	for _, l := range labels {
		if l.Equal(label) {
			return true
		}
	}
	return false
}

// DaySlotQuery lookup key for one date selection
type DaySlotQuery struct {
	TalentID string
	ISODate  string
}

// AvailabilityResult resolved slots for one date
type AvailabilityResult struct {
	Date            time.Time
	DayOfWeek       string
	AvailableLabels []types.TimeLabel
}

// HasSlots returns true if at least one label is available
func (r *AvailabilityResult) HasSlots() bool {
	return len(r.AvailableLabels) > 0
}

// SlotView one row of the time column: canonical label plus availability flag
type SlotView struct {
	Label     types.TimeLabel
	Available bool
	Selected  bool
}
