package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/debtwise-ledger/internal/api/service"
)

// HistoryHandler handles HTTP requests for the audit trail
type HistoryHandler struct {
	historyService service.HistoryService
	logger         *slog.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(logger *slog.Logger, historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		logger:         logger,
	}
}

// List returns a paginated page of audit records, newest first
func (h *HistoryHandler) List(c *gin.Context) {
	var params PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.logger.Error("Invalid pagination parameters", "error", err)
		RespondBadRequest(c, "Invalid pagination parameters: "+err.Error())
		return
	}

	records, total, err := h.historyService.GetRecent(c.Request.Context(), params.Page, params.PerPage)
	if err != nil {
		h.logger.Error("Failed to load audit history", "error", err)
		RespondInternalError(c)
		return
	}

	RespondWithPaginatedData(c, http.StatusOK, ToHistoryListResponse(records), params.Page, params.PerPage, int(total))
}

// ListByDebt returns a paginated page of audit records for one debt,
// newest first. A debt that never existed simply has an empty trail.
func (h *HistoryHandler) ListByDebt(c *gin.Context) {
	idParam := c.Param("id")
	debtID, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid debt ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid debt ID")
		return
	}

	var params PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.logger.Error("Invalid pagination parameters", "error", err)
		RespondBadRequest(c, "Invalid pagination parameters: "+err.Error())
		return
	}

	records, total, err := h.historyService.GetByDebt(c.Request.Context(), debtID, params.Page, params.PerPage)
	if err != nil {
		h.logger.Error("Failed to load audit history for debt", "debt_id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondWithPaginatedData(c, http.StatusOK, ToHistoryListResponse(records), params.Page, params.PerPage, int(total))
}
