package delete_blocked_range

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/schedule"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/logger"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) DeleteBlockedRange(ctx context.Context, instructorID, rangeID int64) error {
	return m.Called(ctx, instructorID, rangeID).Error(0)
}

func serve(h *Handler, rangeID string, instructorID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/me/blocked-ranges/"+rangeID, nil)
	req = mux.SetURLVars(req, map[string]string{"rangeId": rangeID})
	if instructorID > 0 {
		req = req.WithContext(middleware.WithInstructorID(req.Context(), instructorID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name         string
		rangeID      string
		instructorID int64
		err          error
		callService  bool
		status       int
	}{
		{name: "deleted", rangeID: "12", instructorID: 2, callService: true, status: http.StatusNoContent},
		{name: "foreign or missing", rangeID: "12", instructorID: 2, err: schedule.ErrBlockedRangeNotFound, callService: true, status: http.StatusNotFound},
		{name: "internal", rangeID: "12", instructorID: 2, err: schedule.ErrInternal, callService: true, status: http.StatusInternalServerError},
		{name: "no session", rangeID: "12", status: http.StatusUnauthorized},
		{name: "bad id", rangeID: "-1", instructorID: 2, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMock{}
			if tt.callService {
				svc.On("DeleteBlockedRange", mock.Anything, tt.instructorID, int64(12)).Return(tt.err)
			}

			rec := serve(NewHandler(svc, logger.NewNop()), tt.rangeID, tt.instructorID)

			assert.Equal(t, tt.status, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
