package resolve_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
	"github.com/m04kA/SkillSlot-BookingService/pkg/types"
)

// UseCase use case для получения свободных слотов таланта на выбранный день
type UseCase struct {
	availabilityClient AvailabilityServiceClient
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityClient AvailabilityServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityClient: availabilityClient,
		logger:             logger,
	}
}

// Execute выполняет один запрос к сервису доступности.
// Не изменяет состояние сессии: результат применяет вызывающая сторона.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Формируем запрос на день
	query := domain.DaySlotQuery{
		TalentID: req.TalentID,
		ISODate:  req.Month.ISODate(req.Day),
	}

	// 3. Обращаемся к сервису доступности
	availability, err := uc.availabilityClient.GetAvailability(ctx, req.Session.Token, query.TalentID, query.ISODate)
	if err != nil {
		uc.logger.Warn("ResolveAvailability: lookup failed for talent=%s, date=%s: %v",
			query.TalentID, query.ISODate, err)
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	// 4. Нормализуем метки и оставляем только канонические слоты
	labels := normalizeLabels(availability.AvailableHours, uc.logger)

	dayOfWeek := availability.DayOfWeek
	if dayOfWeek == "" {
		dayOfWeek = req.Month.Date(req.Day).Weekday().String()
	}

	uc.logger.Info("ResolveAvailability: talent=%s, date=%s, labels=%d",
		query.TalentID, query.ISODate, len(labels))

	return &Response{
		Query: query,
		Result: domain.AvailabilityResult{
			Date:            req.Month.Date(req.Day),
			DayOfWeek:       dayOfWeek,
			AvailableLabels: labels,
		},
	}, nil
}

// normalizeLabels разбирает метки сервиса, нераспознанные пропускаются
func normalizeLabels(raw []string, logger Logger) []types.TimeLabel {
	parsed := make([]types.TimeLabel, 0, len(raw))
	for _, r := range raw {
		label, err := types.ParseTimeLabel(r)
		if err != nil {
			logger.Warn("ResolveAvailability: skipping unrecognized time label %q", r)
			continue
		}
		parsed = append(parsed, label)
	}
	return domain.FilterCanonical(parsed)
}
