package change_month

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SkillSlot-BookingService/internal/api/handlers"
	"github.com/m04kA/SkillSlot-BookingService/internal/api/middleware"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession/models"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingToken       = "отсутствует токен авторизации"
	msgNotFound           = "сессия бронирования не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidDelta       = "шаг месяца должен быть 1 или -1"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-sessions/{sessionId}/month
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/month - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	auth, ok := middleware.GetSessionContext(r.Context())
	if !ok {
		h.logger.Warn("POST /booking-sessions/{id}/month - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req models.ChangeMonthRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/month - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.ChangeMonth(r.Context(), sessionID, auth, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsession.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/month - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookingsession.ErrAccessDenied):
			h.logger.Warn("POST /booking-sessions/{id}/month - Access denied: session_id=%s", sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookingsession.ErrInvalidInput):
			h.logger.Warn("POST /booking-sessions/{id}/month - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidDelta)

		default:
			h.logger.Error("POST /booking-sessions/{id}/month - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/month - OK: session_id=%s, applied=%t, stage=%s",
		sessionID, resp.Applied, resp.Stage)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
