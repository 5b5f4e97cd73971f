package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"transfleet/internal/db/models/postgres/public/model"
	mock_repository "transfleet/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_getFleetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	transformerRepository := mock_repository.NewMockTransformerRepository(ctrl)

	transformerRepository.EXPECT().List().Return([]model.Customers{
		{Serial: strPtr("s1"), Contract: strPtr("c1"), Customer: strPtr("Acme"), Power: decPtr(10)},
		{Serial: strPtr("s2"), Contract: strPtr("c2"), Customer: strPtr("Zeta"), Power: decPtr(30)},
	}, nil)

	handler := newTestHandler(transformerRepository)
	engine := handler.InitializeRouterEngine()

	w := performRequest(engine, "GET", "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)

	body := getFleetStatsResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, int64(2), body.Stats.RecordCount)
	require.InDelta(t, 40, body.Stats.TotalPower, 1e-9)
	require.InDelta(t, 20, body.Stats.MeanPower, 1e-9)
}
