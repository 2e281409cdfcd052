package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SkillSlot-BookingService/internal/api/handlers"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession"
)

const msgInvalidMonth = "некорректный месяц, ожидается YYYY-MM"

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	calendar, err := h.service.GetCalendar(r.Context(), month)
	if err != nil {
		if errors.Is(err, bookingsession.ErrInvalidInput) {
			h.logger.Warn("GET /calendar - Invalid month: %q", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /calendar - Failed: month=%q, error=%v", month, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, calendar)
}
