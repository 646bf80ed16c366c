package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/debtwise-ledger/internal/api/service"
)

// StatsHandler handles HTTP requests for derived statistics
type StatsHandler struct {
	debtService service.DebtService
	logger      *slog.Logger
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(logger *slog.Logger, debtService service.DebtService) *StatsHandler {
	return &StatsHandler{
		debtService: debtService,
		logger:      logger,
	}
}

// Dashboard returns the headline figures for the dashboard view
func (h *StatsHandler) Dashboard(c *gin.Context) {
	summary := h.debtService.Statistics(c.Request.Context())
	RespondOK(c, ToDashboardResponse(&summary))
}

// Statistics returns the full derived statistics set
func (h *StatsHandler) Statistics(c *gin.Context) {
	summary := h.debtService.Statistics(c.Request.Context())
	RespondOK(c, ToStatisticsResponse(&summary))
}
