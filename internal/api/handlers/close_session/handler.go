package close_session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SkillSlot-BookingService/internal/api/handlers"
	"github.com/m04kA/SkillSlot-BookingService/internal/api/middleware"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgMissingToken     = "отсутствует токен авторизации"
	msgNotFound         = "сессия бронирования не найдена"
	msgForbidden        = "доступ запрещен"
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

// Handle DELETE /api/v1/booking-sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("DELETE /booking-sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	auth, ok := middleware.GetSessionContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /booking-sessions/{id} - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.Close(r.Context(), sessionID, auth); err != nil {
		switch {
		case errors.Is(err, bookingsession.ErrSessionNotFound):
			h.logger.Warn("DELETE /booking-sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookingsession.ErrAccessDenied):
			h.logger.Warn("DELETE /booking-sessions/{id} - Access denied: session_id=%s", sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /booking-sessions/{id} - Failed to close session: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /booking-sessions/{id} - Session closed: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
