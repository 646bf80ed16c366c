package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise-ledger/internal/domain/debt"
	"github.com/debtwise-ledger/internal/domain/history"
	"github.com/debtwise-ledger/internal/stats"
)

// CreateDebtRequest represents a request to create a new debt
type CreateDebtRequest struct {
	Name         string          `json:"name" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	DueDate      time.Time       `json:"due_date" binding:"required"`
	Type         string          `json:"type" binding:"required"`
}

// UpdateDebtRequest represents a request to replace an existing debt
type UpdateDebtRequest struct {
	Name         string          `json:"name" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	DueDate      time.Time       `json:"due_date" binding:"required"`
	Type         string          `json:"type" binding:"required"`
}

// PaymentRequest represents a request to apply a payment to a debt
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// RemovePositionsRequest represents a request to remove debts at list positions
type RemovePositionsRequest struct {
	Positions []int `json:"positions" binding:"required"`
}

// DebtResponse represents a debt in API responses
type DebtResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Amount       string    `json:"amount"`
	InterestRate string    `json:"interest_rate"`
	DueDate      time.Time `json:"due_date"`
	Type         string    `json:"type"`
	TypeName     string    `json:"type_name"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
}

// DebtListResponse represents a list of debts in API responses
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
	Count int            `json:"count"`
}

// PaymentResponse represents the outcome of a payment
type PaymentResponse struct {
	DebtID  string        `json:"debt_id"`
	Applied string        `json:"applied"`
	PaidOff bool          `json:"paid_off"`
	Debt    *DebtResponse `json:"debt,omitempty"`
}

// DashboardResponse represents the headline figures for the dashboard view
type DashboardResponse struct {
	TotalDebt        string `json:"total_debt"`
	MonthlyPayment   string `json:"monthly_payment"`
	ActiveDebtsCount int    `json:"active_debts_count"`
}

// StatisticsResponse represents the full derived statistics set
type StatisticsResponse struct {
	TotalDebt             string        `json:"total_debt"`
	MonthlyPayment        string        `json:"monthly_payment"`
	ActiveDebtsCount      int           `json:"active_debts_count"`
	AverageInterestRate   string        `json:"average_interest_rate"`
	AveragePaymentPerDebt string        `json:"average_payment_per_debt"`
	MonthsUntilDebtFree   int           `json:"months_until_debt_free"`
	LargestDebt           *DebtResponse `json:"largest_debt,omitempty"`
	SmallestDebt          *DebtResponse `json:"smallest_debt,omitempty"`
	NearestDueDate        *DebtResponse `json:"nearest_due_date,omitempty"`
}

// HistoryRecordResponse represents an audit record in API responses
type HistoryRecordResponse struct {
	ID            string    `json:"id"`
	Action        string    `json:"action"`
	DebtID        string    `json:"debt_id,omitempty"`
	DebtName      string    `json:"debt_name,omitempty"`
	Amount        string    `json:"amount,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// PaginationParams represents pagination query parameters
type PaginationParams struct {
	Page    int `form:"page,default=1" binding:"min=1"`
	PerPage int `form:"per_page,default=10" binding:"min=1,max=100"`
}

// ToDebtResponse converts a domain debt to its API representation
func ToDebtResponse(d *debt.Debt) *DebtResponse {
	if d == nil {
		return nil
	}
	return &DebtResponse{
		ID:           d.ID.String(),
		Name:         d.Name,
		Amount:       d.Amount.String(),
		InterestRate: d.InterestRate.String(),
		DueDate:      d.DueDate,
		Type:         string(d.Type),
		TypeName:     d.Type.DisplayName(),
		Icon:         d.Type.Icon(),
		Color:        d.Type.Color(),
	}
}

// ToDebtListResponse converts a slice of domain debts to its API representation
func ToDebtListResponse(debts []debt.Debt) *DebtListResponse {
	out := make([]DebtResponse, 0, len(debts))
	for i := range debts {
		out = append(out, *ToDebtResponse(&debts[i]))
	}
	return &DebtListResponse{Debts: out, Count: len(out)}
}

// ToDashboardResponse converts a statistics summary to the dashboard view
func ToDashboardResponse(s *stats.Summary) *DashboardResponse {
	return &DashboardResponse{
		TotalDebt:        s.TotalDebt.String(),
		MonthlyPayment:   s.MonthlyPayment.String(),
		ActiveDebtsCount: s.ActiveDebtsCount,
	}
}

// ToStatisticsResponse converts a statistics summary to its API representation
func ToStatisticsResponse(s *stats.Summary) *StatisticsResponse {
	return &StatisticsResponse{
		TotalDebt:             s.TotalDebt.String(),
		MonthlyPayment:        s.MonthlyPayment.String(),
		ActiveDebtsCount:      s.ActiveDebtsCount,
		AverageInterestRate:   s.AverageInterestRate.String(),
		AveragePaymentPerDebt: s.AveragePaymentPerDebt.String(),
		MonthsUntilDebtFree:   s.MonthsUntilDebtFree,
		LargestDebt:           ToDebtResponse(s.LargestDebt),
		SmallestDebt:          ToDebtResponse(s.SmallestDebt),
		NearestDueDate:        ToDebtResponse(s.NearestDueDate),
	}
}

// ToHistoryRecordResponse converts an audit record to its API representation
func ToHistoryRecordResponse(r *history.Record) *HistoryRecordResponse {
	resp := &HistoryRecordResponse{
		ID:            r.ID.String(),
		Action:        string(r.Action),
		DebtName:      r.DebtName,
		CorrelationID: r.CorrelationID,
		CreatedAt:     r.CreatedAt,
	}
	if r.DebtID != nil {
		resp.DebtID = r.DebtID.String()
	}
	if r.Amount != nil {
		resp.Amount = r.Amount.String()
	}
	return resp
}

// ToHistoryListResponse converts a slice of audit records to its API representation
func ToHistoryListResponse(records []*history.Record) []HistoryRecordResponse {
	out := make([]HistoryRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *ToHistoryRecordResponse(r))
	}
	return out
}
