package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtwise-ledger/internal/data/memory"
	"github.com/debtwise-ledger/internal/domain/debt"
	"github.com/debtwise-ledger/internal/ledger"
)

var testLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

func newService(t *testing.T) *DebtServiceImpl {
	t.Helper()
	store := ledger.NewStore(context.Background(), testLogger, memory.NewKV())
	return NewDebtService(testLogger, store, nil)
}

func addDebt(t *testing.T, s *DebtServiceImpl, name string, amount int64, months int) *debt.Debt {
	t.Helper()
	due := time.Now().UTC().AddDate(0, months, 0)
	d, err := s.AddDebt(context.Background(), name, decimal.NewFromInt(amount), decimal.NewFromFloat(12.5), due, debt.TypeCreditCard, "")
	require.NoError(t, err)
	return d
}

func TestDebtServiceImpl_AddDebt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		s := newService(t)

		d := addDebt(t, s, "Visa", 1200, 6)

		assert.NotEqual(t, uuid.Nil, d.ID)
		list := s.ListDebts(ctx)
		require.Len(t, list, 1)
		assert.Equal(t, d.ID, list[0].ID)
	})

	t.Run("InvalidDebtData", func(t *testing.T) {
		s := newService(t)

		_, err := s.AddDebt(ctx, "Bad", decimal.NewFromInt(-5), decimal.Zero, time.Now(), debt.TypeCreditCard, "")

		assert.ErrorIs(t, err, debt.ErrNegativeAmount)
		assert.Empty(t, s.ListDebts(ctx))
	})
}

func TestDebtServiceImpl_GetDebt(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	d := addDebt(t, s, "Visa", 1200, 6)

	t.Run("Success", func(t *testing.T) {
		got, err := s.GetDebt(ctx, d.ID)
		require.NoError(t, err)
		assert.True(t, got.Equal(*d))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := s.GetDebt(ctx, uuid.New())
		assert.ErrorIs(t, err, debt.ErrDebtNotFound{})
	})
}

func TestDebtServiceImpl_UpdateDebt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		s := newService(t)
		d := addDebt(t, s, "Visa", 1200, 6)

		updated := *d
		updated.Name = "Visa Platinum"
		got, err := s.UpdateDebt(ctx, updated, "")

		require.NoError(t, err)
		assert.Equal(t, "Visa Platinum", got.Name)
		list := s.ListDebts(ctx)
		require.Len(t, list, 1)
		assert.Equal(t, "Visa Platinum", list[0].Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		s := newService(t)
		ghost := debt.Debt{ID: uuid.New(), Name: "Ghost", Amount: decimal.NewFromInt(1), Type: debt.TypeCarLoan}

		_, err := s.UpdateDebt(ctx, ghost, "")

		var notFound debt.ErrDebtNotFound
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, ghost.ID, notFound.DebtID)
		assert.Empty(t, s.ListDebts(ctx), "no implicit insert")
	})
}

func TestDebtServiceImpl_RemoveDebt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		s := newService(t)
		keep := addDebt(t, s, "Keep", 100, 3)
		drop := addDebt(t, s, "Drop", 200, 3)

		require.NoError(t, s.RemoveDebt(ctx, drop.ID, ""))

		list := s.ListDebts(ctx)
		require.Len(t, list, 1)
		assert.Equal(t, keep.ID, list[0].ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		s := newService(t)
		err := s.RemoveDebt(ctx, uuid.New(), "")
		assert.ErrorIs(t, err, debt.ErrDebtNotFound{})
	})
}

func TestDebtServiceImpl_RemoveAtPositions(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	a := addDebt(t, s, "A", 1, 1)
	_ = addDebt(t, s, "B", 2, 1)
	c := addDebt(t, s, "C", 3, 1)
	_ = a

	s.RemoveAtPositions(ctx, []int{0, 2, 99}, "")

	list := s.ListDebts(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Name)
	_ = c
}

func TestDebtServiceImpl_MakePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialPayment", func(t *testing.T) {
		s := newService(t)
		d := addDebt(t, s, "Loan", 300, 6)

		result, err := s.MakePayment(ctx, d.ID, decimal.NewFromInt(120), "")

		require.NoError(t, err)
		assert.False(t, result.PaidOff)
		require.NotNil(t, result.Debt)
		assert.True(t, result.Debt.Amount.Equal(decimal.NewFromInt(180)))
		assert.True(t, result.Applied.Equal(decimal.NewFromInt(120)))
	})

	t.Run("ExactPaymentPaysOff", func(t *testing.T) {
		s := newService(t)
		d := addDebt(t, s, "Loan", 300, 6)

		result, err := s.MakePayment(ctx, d.ID, decimal.NewFromInt(300), "")

		require.NoError(t, err)
		assert.True(t, result.PaidOff)
		assert.Nil(t, result.Debt)
		assert.Empty(t, s.ListDebts(ctx))
	})

	t.Run("OverpaymentAppliesOnlyBalance", func(t *testing.T) {
		s := newService(t)
		d := addDebt(t, s, "Loan", 300, 6)

		result, err := s.MakePayment(ctx, d.ID, decimal.NewFromInt(1000), "")

		require.NoError(t, err)
		assert.True(t, result.PaidOff)
		assert.True(t, result.Applied.Equal(decimal.NewFromInt(300)))
	})

	t.Run("NotFound", func(t *testing.T) {
		s := newService(t)
		_, err := s.MakePayment(ctx, uuid.New(), decimal.NewFromInt(10), "")
		assert.ErrorIs(t, err, debt.ErrDebtNotFound{})
	})
}

func TestDebtServiceImpl_ClearAll(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	addDebt(t, s, "A", 1, 1)
	addDebt(t, s, "B", 2, 1)

	s.ClearAll(ctx, "")

	assert.Empty(t, s.ListDebts(ctx))
}

func TestDebtServiceImpl_Statistics(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_, err := s.AddDebt(ctx, "Card", decimal.NewFromInt(1000), decimal.NewFromInt(20), now.AddDate(0, 2, 0), debt.TypeCreditCard, "")
	require.NoError(t, err)
	_, err = s.AddDebt(ctx, "Loan", decimal.NewFromInt(500), decimal.NewFromInt(10), now.AddDate(0, 1, 0), debt.TypePersonalLoan, "")
	require.NoError(t, err)

	summary := s.Statistics(ctx)

	assert.Equal(t, 2, summary.ActiveDebtsCount)
	assert.True(t, summary.TotalDebt.Equal(decimal.NewFromInt(1500)))
	assert.True(t, summary.MonthlyPayment.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 2, summary.MonthsUntilDebtFree)
	require.NotNil(t, summary.NearestDueDate)
	assert.Equal(t, "Loan", summary.NearestDueDate.Name)
}

func TestDebtServiceImpl_StatisticsEmptyLedger(t *testing.T) {
	s := newService(t)

	summary := s.Statistics(context.Background())

	assert.Equal(t, 0, summary.ActiveDebtsCount)
	assert.True(t, summary.TotalDebt.IsZero())
	assert.Nil(t, summary.LargestDebt)
}
