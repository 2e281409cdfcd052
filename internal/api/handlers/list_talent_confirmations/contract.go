package list_talent_confirmations

import (
	"context"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession/models"
)

type ConfirmationService interface {
	ListTalentConfirmations(ctx context.Context, talentID string, auth domain.SessionContext) (*models.ConfirmationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
