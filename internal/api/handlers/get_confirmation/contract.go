package get_confirmation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession/models"
)

type ConfirmationService interface {
	GetConfirmation(ctx context.Context, id uuid.UUID, auth domain.SessionContext) (*models.ConfirmationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
