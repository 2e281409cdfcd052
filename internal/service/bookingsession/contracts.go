package bookingsession

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
	resolveAvailability "github.com/m04kA/SkillSlot-BookingService/internal/usecase/resolve_availability"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.BookingSession) error
	Get(ctx context.Context, id uuid.UUID) (*domain.BookingSession, error)
	Update(ctx context.Context, id uuid.UUID, fn func(s *domain.BookingSession) error) (*domain.BookingSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) []uuid.UUID
}

// ConfirmationRepository интерфейс хранилища подтверждений
type ConfirmationRepository interface {
	Create(ctx context.Context, c *domain.Confirmation) (*domain.Confirmation, error)
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.Confirmation, error)
	ListByTalent(ctx context.Context, talentID string, limit uint64) ([]*domain.Confirmation, error)
}

// AvailabilityResolver use case получения доступности на день
type AvailabilityResolver interface {
	Execute(ctx context.Context, req *resolveAvailability.Request) (*resolveAvailability.Response, error)
}

// MetricsCollector интерфейс сбора метрик (может быть nil)
type MetricsCollector interface {
	ObserveLookup(outcome string, seconds float64)
	SessionOpened()
	SessionClosed()
	StageEntered(stage string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
