package resolve_availability

import (
	"context"

	"github.com/m04kA/SkillSlot-BookingService/internal/integrations/availabilityservice"
)

// AvailabilityServiceClient интерфейс клиента сервиса доступности
type AvailabilityServiceClient interface {
	GetAvailability(ctx context.Context, token, talentID, date string) (*availabilityservice.Availability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
