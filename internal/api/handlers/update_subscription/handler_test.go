package update_subscription

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors/models"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/logger"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) UpdateSubscriptionStatus(ctx context.Context, instructorID int64, req *models.UpdateSubscriptionRequest) (*models.InstructorResponse, error) {
	args := m.Called(ctx, instructorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InstructorResponse), args.Error(1)
}

func serve(h *Handler, instructorID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/internal/instructors/"+instructorID+"/subscription", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"instructorId": instructorID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name         string
		instructorID string
		body         string
		result       *models.InstructorResponse
		err          error
		status       int
	}{
		{name: "activated", instructorID: "4", body: `{"status":"active"}`, result: &models.InstructorResponse{ID: 4, SubscriptionStatus: "active"}, status: http.StatusOK},
		{name: "bad id", instructorID: "x", body: `{"status":"active"}`, status: http.StatusBadRequest},
		{name: "bad body", instructorID: "4", body: `{`, status: http.StatusBadRequest},
		{name: "unknown status", instructorID: "4", body: `{"status":"paused"}`, err: instructors.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "not found", instructorID: "4", body: `{"status":"active"}`, err: instructors.ErrInstructorNotFound, status: http.StatusNotFound},
		{name: "internal", instructorID: "4", body: `{"status":"active"}`, err: instructors.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMock{}
			if tt.result != nil || tt.err != nil {
				svc.On("UpdateSubscriptionStatus", mock.Anything, int64(4), mock.Anything).Return(tt.result, tt.err)
			}

			rec := serve(NewHandler(svc, logger.NewNop()), tt.instructorID, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
