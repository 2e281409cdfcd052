package close_session

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
)

type SessionService interface {
	Close(ctx context.Context, id uuid.UUID, auth domain.SessionContext) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
