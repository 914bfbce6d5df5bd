package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/account-server/internal/model"
	"github.com/carson-networks/account-server/internal/storage/sqlconfig"
)

type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) OwnerSummary(ctx context.Context, ownerID int64) (*sqlconfig.OwnerSummary, error) {
	args := m.Called(ctx, ownerID)
	summary, _ := args.Get(0).(*sqlconfig.OwnerSummary)
	return summary, args.Error(1)
}

func (m *mockStatsService) Totals(ctx context.Context) (*sqlconfig.Totals, error) {
	args := m.Called(ctx)
	totals, _ := args.Get(0).(*sqlconfig.Totals)
	return totals, args.Error(1)
}

func (m *mockStatsService) TopAccounts(ctx context.Context, limit int) ([]model.Account, error) {
	args := m.Called(ctx, limit)
	accounts, _ := args.Get(0).([]model.Account)
	return accounts, args.Error(1)
}

func (m *mockStatsService) RangeCounts(ctx context.Context) (*sqlconfig.RangeCounts, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(*sqlconfig.RangeCounts)
	return counts, args.Error(1)
}

func newTestAPI(t *testing.T) (humatest.TestAPI, *mockStatsService) {
	t.Helper()
	svc := &mockStatsService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })

	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api, svc
}

func TestOwnerSummary(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("OwnerSummary", mock.Anything, int64(10)).Return(&sqlconfig.OwnerSummary{
		OwnerID:        10,
		AccountCount:   3,
		TotalBalance:   decimal.NewFromInt(100),
		AverageBalance: decimal.RequireFromString("33.333333"),
		MinBalance:     decimal.NewFromInt(10),
		MaxBalance:     decimal.NewFromInt(60),
	}, nil)

	resp := api.Get("/api/accounts/owner/10/summary")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body OwnerSummary
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, OwnerSummary{
		OwnerID:        10,
		AccountCount:   3,
		TotalBalance:   100,
		AverageBalance: 33.33,
		MinBalance:     10,
		MaxBalance:     60,
	}, body)
}

func TestTop_DefaultAndBounds(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("TopAccounts", mock.Anything, 10).Return([]model.Account{{ID: 1, OwnerID: 2, Balance: decimal.NewFromInt(9000)}}, nil)
	svc.On("TopAccounts", mock.Anything, 3).Return([]model.Account{}, nil)

	resp := api.Get("/api/stats/top")
	require.Equal(t, http.StatusOK, resp.Code)
	var body []Account
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []Account{{ID: 1, OwnerID: 2, Balance: 9000}}, body)

	assert.Equal(t, http.StatusOK, api.Get("/api/stats/top?limit=3").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, api.Get("/api/stats/top?limit=101").Code)
}

func TestTotalAndRanges(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("Totals", mock.Anything).Return(&sqlconfig.Totals{AccountCount: 2, TotalBalance: decimal.NewFromInt(600)}, nil)
	svc.On("RangeCounts", mock.Anything).Return(&sqlconfig.RangeCounts{Low: 4, Mid: 2, High: 1}, nil)

	resp := api.Get("/api/stats/total")
	require.Equal(t, http.StatusOK, resp.Code)
	var totals Totals
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &totals))
	assert.Equal(t, Totals{AccountCount: 2, TotalBalance: 600}, totals)

	resp = api.Get("/api/stats/ranges")
	require.Equal(t, http.StatusOK, resp.Code)
	var ranges []RangeCount
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &ranges))
	assert.Equal(t, []RangeCount{
		{Range: "[0,1000)", Count: 4},
		{Range: "[1000,5000)", Count: 2},
		{Range: "[5000,)", Count: 1},
	}, ranges)
}

func TestTotal_Error(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("Totals", mock.Anything).Return(nil, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, api.Get("/api/stats/total").Code)
}
