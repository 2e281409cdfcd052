package create_session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SkillSlot-BookingService/internal/api/handlers"
	"github.com/m04kA/SkillSlot-BookingService/internal/api/middleware"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession"
	"github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession/models"
	"github.com/m04kA/SkillSlot-BookingService/pkg/logger"
)

type fakeService struct {
	gotReq *models.CreateSessionRequest
	err    error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateSessionRequest) (*models.SessionResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{ID: "0b9d6c1e-7f3a-4c55-9a63-0f4f3c2a1b11", TalentID: req.TalentID, Stage: "selecting_time"}, nil
}

func serve(t *testing.T, svc SessionService, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/talents/{talentId}/booking-sessions", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	svc := &fakeService{}

	rec := serve(t, svc, "/api/v1/talents/42/booking-sessions", "tok")
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, svc.gotReq)
	assert.Equal(t, "42", svc.gotReq.TalentID)
	assert.Equal(t, "tok", svc.gotReq.Auth.Token)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "42", resp.TalentID)
	assert.Equal(t, "selecting_time", resp.Stage)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		svcErr      error
		wantStatus  int
		wantMessage string
		wantCalled  bool
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized, wantMessage: msgMissingToken},
		{name: "unauthorized", token: "t", svcErr: bookingsession.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantMessage: msgMissingToken, wantCalled: true},
		{
			name:        "invalid talent",
			token:       "t",
			svcErr:      fmt.Errorf("%w: talent id is empty", bookingsession.ErrInvalidInput),
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgInvalidTalentID,
			wantCalled:  true,
		},
		{name: "internal", token: "t", svcErr: bookingsession.ErrInternal, wantStatus: http.StatusInternalServerError, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.svcErr}
			rec := serve(t, svc, "/api/v1/talents/42/booking-sessions", tt.token)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, svc.gotReq != nil)

			if tt.wantMessage != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}
