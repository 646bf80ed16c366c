// Package stats derives dashboard and statistics figures from a debt
// list. Everything here is a pure function of (debts, now): no state,
// safe for concurrent use, recomputed from scratch on every call.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise-ledger/internal/domain/debt"
)

// Summary holds every aggregate figure derived from a debt list.
// Extremal entries are nil when the list is empty.
type Summary struct {
	TotalDebt             decimal.Decimal `json:"total_debt"`
	MonthlyPayment        decimal.Decimal `json:"monthly_payment"`
	ActiveDebtsCount      int             `json:"active_debts_count"`
	AverageInterestRate   decimal.Decimal `json:"average_interest_rate"`
	AveragePaymentPerDebt decimal.Decimal `json:"average_payment_per_debt"`
	MonthsUntilDebtFree   int             `json:"months_until_debt_free"`
	LargestDebt           *debt.Debt      `json:"largest_debt,omitempty"`
	SmallestDebt          *debt.Debt      `json:"smallest_debt,omitempty"`
	NearestDueDate        *debt.Debt      `json:"nearest_due_date,omitempty"`
}

// Compute derives the full summary from the ordered debt list and the
// injected current time. Deterministic for identical inputs.
func Compute(debts []debt.Debt, now time.Time) Summary {
	summary := Summary{
		TotalDebt:             decimal.Zero,
		MonthlyPayment:        decimal.Zero,
		ActiveDebtsCount:      len(debts),
		AverageInterestRate:   decimal.Zero,
		AveragePaymentPerDebt: decimal.Zero,
	}
	if len(debts) == 0 {
		return summary
	}

	interestSum := decimal.Zero
	for i := range debts {
		d := debts[i]

		summary.TotalDebt = summary.TotalDebt.Add(d.Amount)
		interestSum = interestSum.Add(d.InterestRate)

		months := MonthsRemaining(now, d)
		summary.MonthlyPayment = summary.MonthlyPayment.Add(d.Amount.Div(decimal.NewFromInt(int64(months))))
		if months > summary.MonthsUntilDebtFree {
			summary.MonthsUntilDebtFree = months
		}

		// Strict comparisons keep the first encountered entry on ties
		if summary.LargestDebt == nil || d.Amount.GreaterThan(summary.LargestDebt.Amount) {
			summary.LargestDebt = &debts[i]
		}
		if summary.SmallestDebt == nil || d.Amount.LessThan(summary.SmallestDebt.Amount) {
			summary.SmallestDebt = &debts[i]
		}
		if summary.NearestDueDate == nil || d.DueDate.Before(summary.NearestDueDate.DueDate) {
			summary.NearestDueDate = &debts[i]
		}
	}

	count := decimal.NewFromInt(int64(len(debts)))
	summary.AverageInterestRate = interestSum.Div(count)
	summary.AveragePaymentPerDebt = summary.MonthlyPayment.Div(count)

	return summary
}

// MonthsRemaining returns the whole calendar months from now until the
// debt's due date, floored at one. A debt due in the past or within the
// current month contributes its full balance as its monthly share.
func MonthsRemaining(now time.Time, d debt.Debt) int {
	months := WholeMonthsBetween(now, d.DueDate)
	if months < 1 {
		return 1
	}
	return months
}

// WholeMonthsBetween counts complete calendar months from one instant
// to another on the proleptic Gregorian calendar, evaluated in UTC.
// The raw year/month delta is reduced by one when the later instant has
// not yet reached the earlier one's day-of-month (then clock time), so
// Jan 15 -> Mar 14 is one month while Jan 15 -> Mar 15 is two. Negative
// when to precedes from.
func WholeMonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return -WholeMonthsBetween(to, from)
	}

	f, t := from.UTC(), to.UTC()
	months := (t.Year()-f.Year())*12 + int(t.Month()) - int(f.Month())
	if t.Day() < f.Day() {
		months--
	} else if t.Day() == f.Day() && clockOf(t) < clockOf(f) {
		months--
	}
	return months
}

func clockOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
