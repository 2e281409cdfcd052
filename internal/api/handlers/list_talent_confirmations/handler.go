package list_talent_confirmations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SkillSlot-BookingService/internal/api/handlers"
	"github.com/m04kA/SkillSlot-BookingService/internal/api/middleware"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession"
)

const (
	msgMissingToken    = "отсутствует токен авторизации"
	msgInvalidTalentID = "некорректный ID таланта"
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

// Handle GET /api/v1/talents/{talentId}/confirmations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	talentID := mux.Vars(r)["talentId"]

	auth, ok := middleware.GetSessionContext(r.Context())
	if !ok {
		h.logger.Warn("GET /talents/{id}/confirmations - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	list, err := h.service.ListTalentConfirmations(r.Context(), talentID, auth)
	if err != nil {
		switch {
		case errors.Is(err, bookingsession.ErrInvalidInput):
			h.logger.Warn("GET /talents/{id}/confirmations - Invalid talent ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTalentID)

		case errors.Is(err, bookingsession.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgMissingToken)

		default:
			h.logger.Error("GET /talents/{id}/confirmations - Failed: talent_id=%s, error=%v", talentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /talents/{id}/confirmations - OK: talent_id=%s, total=%d", talentID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
