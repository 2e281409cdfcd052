package advance_stage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SkillSlot-BookingService/internal/api/handlers"
	"github.com/m04kA/SkillSlot-BookingService/internal/api/middleware"
	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession/models"
	"github.com/m04kA/SkillSlot-BookingService/pkg/logger"
)

type fakeService struct {
	gotID   uuid.UUID
	gotAuth domain.SessionContext
	err     error
}

func (f *fakeService) Advance(_ context.Context, id uuid.UUID, auth domain.SessionContext) (*models.SessionResponse, error) {
	f.gotID, f.gotAuth = id, auth
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{ID: id.String(), Stage: "completed", Applied: true}, nil
}

func serve(t *testing.T, svc SessionService, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/booking-sessions/{sessionId}/advance", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	svc := &fakeService{}
	id := uuid.New()

	rec := serve(t, svc, "/api/v1/booking-sessions/"+id.String()+"/advance", "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, id, svc.gotID)
	assert.Equal(t, "tok", svc.gotAuth.Token)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Stage)
	assert.True(t, resp.Applied)
}

func TestHandler_Errors(t *testing.T) {
	path := "/api/v1/booking-sessions/" + uuid.New().String() + "/advance"

	tests := []struct {
		name        string
		path        string
		token       string
		svcErr      error
		wantStatus  int
		wantMessage string
	}{
		{name: "no token", path: path, wantStatus: http.StatusUnauthorized},
		{name: "bad id", path: "/api/v1/booking-sessions/not-a-uuid/advance", token: "t", wantStatus: http.StatusBadRequest, wantMessage: msgInvalidSessionID},
		{name: "not found", path: path, token: "t", svcErr: bookingsession.ErrSessionNotFound, wantStatus: http.StatusNotFound, wantMessage: msgNotFound},
		{name: "forbidden", path: path, token: "t", svcErr: bookingsession.ErrAccessDenied, wantStatus: http.StatusForbidden, wantMessage: msgForbidden},
		{
			name:       "confirmation write failed",
			path:       path,
			token:      "t",
			svcErr:     fmt.Errorf("%w: failed to record confirmation: %v", bookingsession.ErrInternal, errors.New("connection refused")),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeService{err: tt.svcErr}, tt.path, tt.token)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantMessage != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}
