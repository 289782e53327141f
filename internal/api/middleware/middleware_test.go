package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InstructorScheduler/pkg/auth"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/logger"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/metrics"
)

func echoInstructor(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetInstructorID(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(7), id)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	token, err := tokens.Issue(7, "jonas@example.com")
	require.NoError(t, err)

	other := auth.NewTokenManager("other-secret", time.Hour)
	forged, err := other.Issue(7, "jonas@example.com")
	require.NoError(t, err)

	handler := Auth(tokens, "session")(echoInstructor(t))

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{name: "bearer token", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, status: http.StatusNoContent},
		{name: "session cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: token}) }, status: http.StatusNoContent},
		{name: "no credentials", setup: func(r *http.Request) {}, status: http.StatusUnauthorized},
		{name: "other scheme", setup: func(r *http.Request) { r.Header.Set("Authorization", "Basic "+token) }, status: http.StatusUnauthorized},
		{name: "forged token", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+forged) }, status: http.StatusUnauthorized},
		{name: "garbage", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc.def.ghi") }, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me/bookings", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInternalToken(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name     string
		expected string
		header   string
		status   int
	}{
		{name: "valid", expected: "s3cret", header: "s3cret", status: http.StatusOK},
		{name: "wrong", expected: "s3cret", header: "guess", status: http.StatusUnauthorized},
		{name: "missing", expected: "s3cret", header: "", status: http.StatusUnauthorized},
		{name: "unconfigured", expected: "", header: "", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/v1/internal/instructors/1/subscription", nil)
			if tt.header != "" {
				req.Header.Set(InternalTokenHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			InternalToken(tt.expected)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	var seen string
	handler := RequestLogger(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, incoming, seen)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", seen)
}

func TestRecover(t *testing.T) {
	handler := Recover(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.New("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/bookings/{bookingId}/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodPatch)

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/status", nil))
	}

	counter := m.HTTPRequestsTotal.WithLabelValues(http.MethodPatch, "/api/v1/bookings/{bookingId}/status", "409")
	assert.Equal(t, float64(3), testutil.ToFloat64(counter))
}
