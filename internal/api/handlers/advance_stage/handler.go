package advance_stage

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

// Handle POST /api/v1/booking-sessions/{sessionId}/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/advance - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	auth, ok := middleware.GetSessionContext(r.Context())
	if !ok {
		h.logger.Warn("POST /booking-sessions/{id}/advance - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	resp, err := h.service.Advance(r.Context(), sessionID, auth)
	if err != nil {
		switch {
		case errors.Is(err, bookingsession.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/advance - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookingsession.ErrAccessDenied):
			h.logger.Warn("POST /booking-sessions/{id}/advance - Access denied: session_id=%s", sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /booking-sessions/{id}/advance - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/advance - OK: session_id=%s, applied=%t, stage=%s",
		sessionID, resp.Applied, resp.Stage)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
