package resolve_availability

import (
	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
)

// Request модель запроса на получение доступности таланта на день
type Request struct {
	Session  domain.SessionContext // Контекст авторизации (токен передается сервису)
	TalentID string                // ID таланта
	Month    domain.CalendarMonth  // Отображаемый месяц
	Day      int                   // День месяца
}

// Response модель ответа
type Response struct {
	Query  domain.DaySlotQuery       // Запрос, по которому получен результат
	Result domain.AvailabilityResult // Нормализованный результат
}
