package get_confirmation

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
	msgNotFound         = "бронирование еще не подтверждено"
)

type Handler struct {
	service ConfirmationService
	logger  Logger
}

func NewHandler(service ConfirmationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-sessions/{sessionId}/confirmation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("GET /booking-sessions/{id}/confirmation - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	auth, ok := middleware.GetSessionContext(r.Context())
	if !ok {
		h.logger.Warn("GET /booking-sessions/{id}/confirmation - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	confirmation, err := h.service.GetConfirmation(r.Context(), sessionID, auth)
	if err != nil {
		switch {
		case errors.Is(err, bookingsession.ErrConfirmationNotFound):
			h.logger.Warn("GET /booking-sessions/{id}/confirmation - Not confirmed: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookingsession.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgMissingToken)

		default:
			h.logger.Error("GET /booking-sessions/{id}/confirmation - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-sessions/{id}/confirmation - OK: session_id=%s, confirmation_id=%d",
		sessionID, confirmation.ID)
	handlers.RespondJSON(w, http.StatusOK, confirmation)
}
