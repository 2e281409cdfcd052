package change_month

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession/models"
)

type SessionService interface {
	ChangeMonth(ctx context.Context, id uuid.UUID, auth domain.SessionContext, req *models.ChangeMonthRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
