package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"transfleet/internal/repository"
	mock_repository "transfleet/internal/repository/mocks"
	"transfleet/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler(transformerRepository repository.TransformerRepository) ApiHandler {
	log := zap.NewNop().Sugar()
	return ApiHandler{
		TransformerRepository: transformerRepository,
		ReportService:         service.NewReportService(transformerRepository, log),
		MaintenanceService:    service.NewMaintenanceService(transformerRepository, log),
		StatsService:          service.NewStatsService(transformerRepository, log),
		Logger:                log,
		ShuttingDown:          &atomic.Bool{},
	}
}

func performRequest(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func Test_unknownRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := newTestHandler(mock_repository.NewMockTransformerRepository(ctrl))
	engine := handler.InitializeRouterEngine()

	w := performRequest(engine, "GET", "/api/nope")
	require.Equal(t, http.StatusNotFound, w.Code)

	body := map[string]string{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "not found", body["error"])
}

func Test_shutdownReturns503(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := newTestHandler(mock_repository.NewMockTransformerRepository(ctrl))
	handler.ShuttingDown.Store(true)
	engine := handler.InitializeRouterEngine()

	for _, path := range []string{
		"/api/customers",
		"/api/customers/contracts",
		"/api/customers/unique",
		"/api/customers/count",
		"/api/health",
	} {
		w := performRequest(engine, "GET", path)
		require.Equal(t, http.StatusServiceUnavailable, w.Code, path)

		body := map[string]any{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, false, body["success"])
	}

	w := performRequest(engine, "POST", "/api/cleanup")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func Test_healthCheck(t *testing.T) {
	t.Run("healthy when database responds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transformerRepository := mock_repository.NewMockTransformerRepository(ctrl)
		transformerRepository.EXPECT().Ping(gomock.Any()).Return(nil)

		handler := newTestHandler(transformerRepository)
		engine := handler.InitializeRouterEngine()

		w := performRequest(engine, "GET", "/api/health")
		require.Equal(t, http.StatusOK, w.Code)

		body := healthCheckResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.True(t, body.Success)
		require.Equal(t, "healthy", body.Status)
		require.Equal(t, "connected", body.Database)
	})

	t.Run("unhealthy when database is unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transformerRepository := mock_repository.NewMockTransformerRepository(ctrl)
		transformerRepository.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			return errors.New("connection refused")
		})

		handler := newTestHandler(transformerRepository)
		engine := handler.InitializeRouterEngine()

		w := performRequest(engine, "GET", "/api/health")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		body := healthCheckResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.False(t, body.Success)
		require.Equal(t, "unhealthy", body.Status)
		require.Equal(t, "disconnected", body.Database)
	})
}
