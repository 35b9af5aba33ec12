package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BankerBot_Go/internal/domain"
)

func TestHandleGetStats(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &mockStatsService{}
		mockSvc.On("GetSummary", mock.Anything).Return(&domain.StatsSummary{
			GamesPlayed:    4,
			GamesWon:       3,
			TotalWinnings:  120000.50,
			BestWinning:    100000,
			AverageWinning: 30000.125,
			WinRate:        75,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rec := httptest.NewRecorder()

		HandleGetStats(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"games_played":4`)
		assert.Contains(t, rec.Body.String(), `"win_rate":75`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Service Error", func(t *testing.T) {
		mockSvc := &mockStatsService{}
		mockSvc.On("GetSummary", mock.Anything).Return(nil, errors.New("repository failure"))

		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rec := httptest.NewRecorder()

		HandleGetStats(mockSvc)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgGenericServerError)
	})
}

func TestHandleResetStats(t *testing.T) {
	mockSvc := &mockStatsService{}
	mockSvc.On("Reset", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/stats/reset", nil)
	rec := httptest.NewRecorder()

	HandleResetStats(mockSvc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgStatsResetSuccess)
	mockSvc.AssertExpectations(t)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	HandleHealthz()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleReadyz(t *testing.T) {
	t.Run("No Check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()

		HandleReadyz(nil)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Backend Down", func(t *testing.T) {
		check := func(ctx context.Context) error { return errors.New("connection refused") }

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()

		HandleReadyz(check)(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "unavailable")
	})

	t.Run("Backend Up", func(t *testing.T) {
		check := func(ctx context.Context) error { return nil }

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()

		HandleReadyz(check)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
