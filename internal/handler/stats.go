package handler

import (
	"net/http"

	"github.com/osse101/BankerBot_Go/internal/logger"
	"github.com/osse101/BankerBot_Go/internal/stats"
)

// HandleGetStats handles GET requests for the aggregate game statistics
func HandleGetStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.GetSummary(r.Context())
		if err != nil {
			respondServiceError(w, r, "get stats", err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleResetStats handles POST requests to clear the recorded statistics
func HandleResetStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context()); err != nil {
			respondServiceError(w, r, "reset stats", err)
			return
		}

		logger.FromContext(r.Context()).Info("Statistics reset")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStatsResetSuccess})
	}
}
