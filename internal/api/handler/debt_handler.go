package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/debtwise-ledger/internal/api/middleware"
	"github.com/debtwise-ledger/internal/api/service"
	"github.com/debtwise-ledger/internal/domain/debt"
)

// DebtHandler handles HTTP requests for ledger operations
type DebtHandler struct {
	debtService service.DebtService
	logger      *slog.Logger
}

// NewDebtHandler creates a new debt handler
func NewDebtHandler(logger *slog.Logger, debtService service.DebtService) *DebtHandler {
	return &DebtHandler{
		debtService: debtService,
		logger:      logger,
	}
}

// Create handles creation of a new debt, validating the request fields
func (h *DebtHandler) Create(c *gin.Context) {
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	d, err := h.debtService.AddDebt(
		c.Request.Context(),
		req.Name,
		req.Amount,
		req.InterestRate,
		req.DueDate,
		debt.Type(req.Type),
		middleware.GetCorrelationID(c),
	)
	if err != nil {
		if errors.Is(err, debt.ErrNegativeAmount) ||
			errors.Is(err, debt.ErrNegativeInterestRate) ||
			errors.Is(err, debt.ErrUnknownType) {
			h.logger.Warn("Rejected debt creation", "error", err)
			RespondBadRequest(c, err.Error())
			return
		}
		h.logger.Error("Failed to create debt", "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, ToDebtResponse(d))
}

// List returns the full debt list in insertion order
func (h *DebtHandler) List(c *gin.Context) {
	debts := h.debtService.ListDebts(c.Request.Context())
	RespondOK(c, ToDebtListResponse(debts))
}

// GetByID retrieves a debt by its ID, returning 404 if not found
func (h *DebtHandler) GetByID(c *gin.Context) {
	id, ok := h.parseDebtID(c)
	if !ok {
		return
	}

	d, err := h.debtService.GetDebt(c.Request.Context(), id)
	if err != nil {
		var notFound debt.ErrDebtNotFound
		if errors.As(err, &notFound) {
			RespondNotFound(c, "Debt not found")
			return
		}
		h.logger.Error("Failed to get debt", "debtID", id, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, ToDebtResponse(d))
}

// Update replaces the identified debt wholesale
func (h *DebtHandler) Update(c *gin.Context) {
	id, ok := h.parseDebtID(c)
	if !ok {
		return
	}

	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	replacement, err := debt.New(req.Name, req.Amount, req.InterestRate, req.DueDate, debt.Type(req.Type))
	if err != nil {
		h.logger.Warn("Rejected debt update", "debtID", id, "error", err)
		RespondBadRequest(c, err.Error())
		return
	}
	replacement.ID = id

	updated, err := h.debtService.UpdateDebt(c.Request.Context(), *replacement, middleware.GetCorrelationID(c))
	if err != nil {
		var notFound debt.ErrDebtNotFound
		if errors.As(err, &notFound) {
			RespondNotFound(c, "Debt not found")
			return
		}
		h.logger.Error("Failed to update debt", "debtID", id, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, ToDebtResponse(updated))
}

// Delete removes the identified debt, returning 404 if not found
func (h *DebtHandler) Delete(c *gin.Context) {
	id, ok := h.parseDebtID(c)
	if !ok {
		return
	}

	if err := h.debtService.RemoveDebt(c.Request.Context(), id, middleware.GetCorrelationID(c)); err != nil {
		var notFound debt.ErrDebtNotFound
		if errors.As(err, &notFound) {
			RespondNotFound(c, "Debt not found")
			return
		}
		h.logger.Error("Failed to remove debt", "debtID", id, "error", err)
		RespondInternalError(c)
		return
	}

	RespondNoContent(c)
}

// RemovePositions removes the debts at the given list positions,
// silently ignoring positions that are out of range
func (h *DebtHandler) RemovePositions(c *gin.Context) {
	var req RemovePositionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	h.debtService.RemoveAtPositions(c.Request.Context(), req.Positions, middleware.GetCorrelationID(c))
	RespondNoContent(c)
}

// MakePayment applies a payment to the identified debt
func (h *DebtHandler) MakePayment(c *gin.Context) {
	id, ok := h.parseDebtID(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Amount.Sign() <= 0 {
		RespondBadRequest(c, "Payment amount must be positive")
		return
	}

	result, err := h.debtService.MakePayment(c.Request.Context(), id, req.Amount, middleware.GetCorrelationID(c))
	if err != nil {
		var notFound debt.ErrDebtNotFound
		if errors.As(err, &notFound) {
			RespondNotFound(c, "Debt not found")
			return
		}
		h.logger.Error("Failed to apply payment", "debtID", id, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, &PaymentResponse{
		DebtID:  id.String(),
		Applied: result.Applied.String(),
		PaidOff: result.PaidOff,
		Debt:    ToDebtResponse(result.Debt),
	})
}

// ClearAll empties the ledger
func (h *DebtHandler) ClearAll(c *gin.Context) {
	h.debtService.ClearAll(c.Request.Context(), middleware.GetCorrelationID(c))
	RespondNoContent(c)
}

func (h *DebtHandler) parseDebtID(c *gin.Context) (uuid.UUID, bool) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid debt ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid debt ID")
		return uuid.Nil, false
	}
	return id, true
}
