package select_date

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
	msgUnavailable        = "сервис останавливается, повторите позже"
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

// Handle PUT /api/v1/booking-sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("PUT /booking-sessions/{id}/date - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	auth, ok := middleware.GetSessionContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /booking-sessions/{id}/date - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req models.SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking-sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.SelectDate(r.Context(), sessionID, auth, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsession.ErrSessionNotFound):
			h.logger.Warn("PUT /booking-sessions/{id}/date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookingsession.ErrAccessDenied):
			h.logger.Warn("PUT /booking-sessions/{id}/date - Access denied: session_id=%s", sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookingsession.ErrShuttingDown):
			h.logger.Warn("PUT /booking-sessions/{id}/date - Service shutting down: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUnavailable)

		default:
			h.logger.Error("PUT /booking-sessions/{id}/date - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /booking-sessions/{id}/date - OK: session_id=%s, applied=%t, stage=%s",
		sessionID, resp.Applied, resp.Stage)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
