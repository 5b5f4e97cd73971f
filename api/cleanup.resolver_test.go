package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	mock_repository "transfleet/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_cleanupDatabase(t *testing.T) {
	t.Run("reports deleted count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transformerRepository := mock_repository.NewMockTransformerRepository(ctrl)

		transformerRepository.EXPECT().DeleteInvalid().Return(int64(4), nil)

		handler := newTestHandler(transformerRepository)
		engine := handler.InitializeRouterEngine()

		w := performRequest(engine, "POST", "/api/cleanup")
		require.Equal(t, http.StatusOK, w.Code)

		body := cleanupResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.True(t, body.Success)
		require.Equal(t, int64(4), body.DeletedCount)
		require.Equal(t, "Successfully cleaned up 4 empty records", body.Message)
	})

	t.Run("storage error becomes a 500 envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transformerRepository := mock_repository.NewMockTransformerRepository(ctrl)

		transformerRepository.EXPECT().DeleteInvalid().Return(int64(0), errors.New("connection refused"))

		handler := newTestHandler(transformerRepository)
		engine := handler.InitializeRouterEngine()

		w := performRequest(engine, "POST", "/api/cleanup")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		body := map[string]any{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, false, body["success"])
		require.Contains(t, body["error"], "failed to clean up database")
	})
}
