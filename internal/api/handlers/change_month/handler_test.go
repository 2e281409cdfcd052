package change_month

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
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
	gotID    uuid.UUID
	gotAuth  domain.SessionContext
	gotDelta int
	err      error
}

func (f *fakeService) ChangeMonth(_ context.Context, id uuid.UUID, auth domain.SessionContext, req *models.ChangeMonthRequest) (*models.SessionResponse, error) {
	f.gotID, f.gotAuth, f.gotDelta = id, auth, req.Delta
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{ID: id.String(), Stage: "selecting_time", Applied: true}, nil
}

func serve(t *testing.T, svc SessionService, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/booking-sessions/{sessionId}/month", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
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

	rec := serve(t, svc, "/api/v1/booking-sessions/"+id.String()+"/month", `{"delta":-1}`, "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, id, svc.gotID)
	assert.Equal(t, "tok", svc.gotAuth.Token)
	assert.Equal(t, -1, svc.gotDelta)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Applied)
}

func TestHandler_Errors(t *testing.T) {
	id := uuid.New().String()
	path := "/api/v1/booking-sessions/" + id + "/month"

	tests := []struct {
		name        string
		path        string
		body        string
		token       string
		svcErr      error
		wantStatus  int
		wantMessage string
	}{
		{name: "no token", path: path, body: `{"delta":1}`, wantStatus: http.StatusUnauthorized},
		{name: "bad id", path: "/api/v1/booking-sessions/not-a-uuid/month", body: `{"delta":1}`, token: "t", wantStatus: http.StatusBadRequest, wantMessage: msgInvalidSessionID},
		{name: "bad body", path: path, body: `{"delta":"next"}`, token: "t", wantStatus: http.StatusBadRequest, wantMessage: msgInvalidRequestBody},
		{
			name:        "invalid delta",
			path:        path,
			body:        `{"delta":3}`,
			token:       "t",
			svcErr:      fmt.Errorf("%w: month delta must be 1 or -1, got 3", bookingsession.ErrInvalidInput),
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgInvalidDelta,
		},
		{name: "not found", path: path, body: `{"delta":1}`, token: "t", svcErr: bookingsession.ErrSessionNotFound, wantStatus: http.StatusNotFound, wantMessage: msgNotFound},
		{name: "forbidden", path: path, body: `{"delta":1}`, token: "t", svcErr: bookingsession.ErrAccessDenied, wantStatus: http.StatusForbidden, wantMessage: msgForbidden},
		{name: "internal", path: path, body: `{"delta":1}`, token: "t", svcErr: bookingsession.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeService{err: tt.svcErr}, tt.path, tt.body, tt.token)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantMessage != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}
