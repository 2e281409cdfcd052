package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SkillSlot-BookingService/pkg/types"
)

// Confirmation is handed off when a booking session reaches the Completed stage.
// Payment outcome is not tracked here.
type Confirmation struct {
	ID            int64
	SessionID     uuid.UUID
	TalentID      string
	BookingDate   time.Time
	StartTime     types.TimeLabel
	DurationLabel string
	CreatedAt     time.Time
}
