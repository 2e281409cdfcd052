package create_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SkillSlot-BookingService/internal/api/handlers"
	"github.com/m04kA/SkillSlot-BookingService/internal/api/middleware"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession/models"
)

const (
	msgMissingToken    = "отсутствует токен авторизации"
	msgInvalidTalentID = "некорректный ID таланта"
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

// Handle POST /api/v1/talents/{talentId}/booking-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	talentID := mux.Vars(r)["talentId"]

	auth, ok := middleware.GetSessionContext(r.Context())
	if !ok {
		h.logger.Warn("POST /talents/{id}/booking-sessions - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	resp, err := h.service.Create(r.Context(), &models.CreateSessionRequest{
		Auth:     auth,
		TalentID: talentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsession.ErrUnauthorized):
			h.logger.Warn("POST /talents/{id}/booking-sessions - Unauthorized: talent_id=%s", talentID)
			handlers.RespondUnauthorized(w, msgMissingToken)

		case errors.Is(err, bookingsession.ErrInvalidInput):
			h.logger.Warn("POST /talents/{id}/booking-sessions - Invalid talent ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTalentID)

		default:
			h.logger.Error("POST /talents/{id}/booking-sessions - Failed to open session: talent_id=%s, error=%v",
				talentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /talents/{id}/booking-sessions - Session opened: session_id=%s, talent_id=%s",
		resp.ID, talentID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
