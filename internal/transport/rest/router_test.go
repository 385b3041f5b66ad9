package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"aijobradar/internal/service"
)

// The repos are never reached in these cases, so nil is fine: the router is
// exercised only up to the middleware boundary.
func newTestRouter() http.Handler {
	return NewRouter(&Container{
		AuthService:    service.NewAuthService(nil, "test-secret"),
		ProfileService: service.NewProfileService(nil),
		Logger:         zap.NewNop(),
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{"GET", "/v1/profile"},
		{"POST", "/v1/risk"},
		{"GET", "/v1/risk"},
		{"POST", "/v1/whatif"},
		{"GET", "/v1/courses"},
		{"POST", "/v1/coach"},
		{"GET", "/v1/stats/industries"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestProtectedRouteRejectsBadToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWeeklyAlertsRequireCronSecret(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("POST", "/v1/alerts/weekly", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("OPTIONS", "/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
