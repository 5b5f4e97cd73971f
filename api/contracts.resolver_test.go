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

// The legacy endpoint returns every row in the body while count reports
// distinct contract ids. That mismatch is intentional behavior the
// dashboard relies on; this test pins it.
func Test_getCustomersContracts_countMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	transformerRepository := mock_repository.NewMockTransformerRepository(ctrl)

	transformerRepository.EXPECT().List().Return([]model.Customers{
		{Serial: strPtr("s1"), Contract: strPtr("c1"), Customer: strPtr("Acme"), Power: decPtr(10)},
		{Serial: strPtr("s2"), Contract: strPtr("c1"), Customer: strPtr("Acme"), Power: decPtr(5)},
		{Serial: strPtr("s3"), Contract: strPtr("c2"), Customer: strPtr("Zeta"), Power: decPtr(7)},
	}, nil)
	transformerRepository.EXPECT().ListContractIDs().Return([]string{"c1", "c2"}, nil)

	handler := newTestHandler(transformerRepository)
	engine := handler.InitializeRouterEngine()

	w := performRequest(engine, "GET", "/api/customers/contracts")
	require.Equal(t, http.StatusOK, w.Code)

	body := getCustomersContractsResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Len(t, body.Contracts, 3)
	require.Equal(t, 2, body.Count)
}
