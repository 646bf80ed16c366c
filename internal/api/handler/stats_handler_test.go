package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/debtwise-ledger/internal/stats"
)

func TestStatsHandler_Dashboard(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	mockService := new(MockDebtService)
	handler := NewStatsHandler(logger, mockService)

	summary := stats.Summary{
		TotalDebt:        decimal.NewFromInt(1500),
		MonthlyPayment:   decimal.NewFromInt(1000),
		ActiveDebtsCount: 2,
	}
	mockService.On("Statistics", mock.Anything).Return(summary)

	router := setupTestRouter()
	router.GET("/dashboard", handler.Dashboard)

	req, _ := http.NewRequest(http.MethodGet, "/dashboard", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var topLevelResponse Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &topLevelResponse))

	dataBytes, _ := json.Marshal(topLevelResponse.Data)
	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(dataBytes, &resp))

	assert.Equal(t, "1500", resp.TotalDebt)
	assert.Equal(t, "1000", resp.MonthlyPayment)
	assert.Equal(t, 2, resp.ActiveDebtsCount)
}

func TestStatsHandler_Statistics(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("WithDebts", func(t *testing.T) {
		mockService := new(MockDebtService)
		handler := NewStatsHandler(logger, mockService)

		d := testDebt(t)
		summary := stats.Summary{
			TotalDebt:             decimal.NewFromInt(1200),
			MonthlyPayment:        decimal.NewFromInt(100),
			ActiveDebtsCount:      1,
			AverageInterestRate:   decimal.NewFromFloat(19.99),
			AveragePaymentPerDebt: decimal.NewFromInt(100),
			MonthsUntilDebtFree:   9,
			LargestDebt:           d,
			SmallestDebt:          d,
			NearestDueDate:        d,
		}
		mockService.On("Statistics", mock.Anything).Return(summary)

		router := setupTestRouter()
		router.GET("/statistics", handler.Statistics)

		req, _ := http.NewRequest(http.MethodGet, "/statistics", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var topLevelResponse Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &topLevelResponse))

		dataBytes, _ := json.Marshal(topLevelResponse.Data)
		var resp StatisticsResponse
		require.NoError(t, json.Unmarshal(dataBytes, &resp))

		assert.Equal(t, "1200", resp.TotalDebt)
		assert.Equal(t, "19.99", resp.AverageInterestRate)
		assert.Equal(t, "100", resp.AveragePaymentPerDebt)
		assert.Equal(t, 9, resp.MonthsUntilDebtFree)
		require.NotNil(t, resp.LargestDebt)
		assert.Equal(t, d.ID.String(), resp.LargestDebt.ID)
		require.NotNil(t, resp.NearestDueDate)
		assert.Equal(t, d.ID.String(), resp.NearestDueDate.ID)
	})

	t.Run("EmptyLedger", func(t *testing.T) {
		mockService := new(MockDebtService)
		handler := NewStatsHandler(logger, mockService)

		mockService.On("Statistics", mock.Anything).Return(stats.Summary{})

		router := setupTestRouter()
		router.GET("/statistics", handler.Statistics)

		req, _ := http.NewRequest(http.MethodGet, "/statistics", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var topLevelResponse Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &topLevelResponse))

		dataBytes, _ := json.Marshal(topLevelResponse.Data)
		var resp StatisticsResponse
		require.NoError(t, json.Unmarshal(dataBytes, &resp))

		assert.Equal(t, "0", resp.TotalDebt)
		assert.Equal(t, 0, resp.ActiveDebtsCount)
		assert.Nil(t, resp.LargestDebt)
		assert.Nil(t, resp.SmallestDebt)
		assert.Nil(t, resp.NearestDueDate)
	})
}
