package system

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lizzyKeypad/internal/mocks"
)

func setup(t *testing.T) (*gin.Engine, *mocks.MockIOperationRepository, *mocks.MockISessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIOperationRepository(ctrl)
	sessions := mocks.NewMockISessionStore(ctrl)
	r := gin.New()
	New(repo, sessions, nil).RegisterRoutes(r)
	return r, repo, sessions
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiveness(t *testing.T) {
	r, _, _ := setup(t)

	w := get(r, "/liveness")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestReadyness(t *testing.T) {
	tests := []struct {
		name        string
		repoErr     error
		sessionsErr error
		callSession bool
		status      int
	}{
		{name: "всё доступно", callSession: true, status: http.StatusOK},
		{name: "БД недоступна", repoErr: errors.New("db down"), status: http.StatusServiceUnavailable},
		{name: "Redis недоступен", sessionsErr: errors.New("redis down"), callSession: true, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, repo, sessions := setup(t)
			repo.EXPECT().Ping(gomock.Any()).Return(tt.repoErr)
			if tt.callSession {
				sessions.EXPECT().Ping(gomock.Any()).Return(tt.sessionsErr)
			}

			w := get(r, "/readyness")

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestMetrics(t *testing.T) {
	r, _, _ := setup(t)

	w := get(r, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
