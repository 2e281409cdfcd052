package get_calendar

import (
	"context"

	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession/models"
)

type CalendarService interface {
	GetCalendar(ctx context.Context, month string) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
