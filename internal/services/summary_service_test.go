package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthyways/internal/models"
	"wealthyways/internal/testutil"
)

type recordedSummary struct {
	month      string
	over, warn int
}

type fakeRecorder struct {
	calls []recordedSummary
}

func (r *fakeRecorder) ObserveSummary(month string, _ time.Duration, over, warn int) {
	r.calls = append(r.calls, recordedSummary{month: month, over: over, warn: warn})
}

func seedJanuaryGroceries(t *testing.T, svc TransactionServicer) {
	t.Helper()
	_, err := svc.AddTransaction("2025-01-05", "", "Salary", 50000, models.TransactionTypeIncome)
	require.NoError(t, err)
	_, err = svc.AddTransaction("2025-01-10", "", "Groceries", -3200, models.TransactionTypeExpense)
	require.NoError(t, err)
	_, err = svc.AddTransaction("2025-01-15", "", "Groceries", -1800, models.TransactionTypeExpense)
	require.NoError(t, err)
}

func TestClassify(t *testing.T) {
	d := decimal.NewFromFloat
	tests := []struct {
		name         string
		spent, limit float64
		want         AlertStatus
	}{
		{"under_threshold", 100, 1000, AlertOK},
		{"exactly_threshold", 800, 1000, AlertOK},
		{"just_above_threshold", 800.01, 1000, AlertWarn},
		{"exactly_limit", 1000, 1000, AlertWarn},
		{"over_limit", 1000.01, 1000, AlertOver},
		{"zero_limit_spent", 1, 0, AlertOver},
		{"zero_limit_nothing_spent", 0, 0, AlertOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(d(tt.spent), d(tt.limit)))
		})
	}
}

func TestSummarizeMonth(t *testing.T) {
	t.Run("over_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txs := NewTransactionService(db)
		budgets := NewBudgetService(db)
		seedJanuaryGroceries(t, txs)
		_, err := budgets.AddBudget("2025-01", "Groceries", 4000)
		require.NoError(t, err)

		rec := &fakeRecorder{}
		summary, err := NewSummaryService(txs, budgets, rec).SummarizeMonth("2025-01")
		require.NoError(t, err)

		assert.Equal(t, "2025-01", summary.Month)
		assert.Equal(t, 50000.0, summary.TotalIncome)
		assert.Equal(t, 5000.0, summary.TotalExpense)
		assert.Equal(t, 45000.0, summary.Net)
		assert.Equal(t, []CategoryTotal{{Category: "Groceries", Amount: 5000}}, summary.ByCategory)

		require.Len(t, summary.BudgetUtilization, 1)
		row := summary.BudgetUtilization[0]
		assert.Equal(t, "Groceries", row.Category)
		assert.Equal(t, 4000.0, row.Limit)
		assert.Equal(t, 5000.0, row.Spent)
		assert.Equal(t, 0.0, row.Remaining)
		assert.Equal(t, 125.0, row.UtilizationPct)
		assert.Equal(t, AlertOver, row.Status)

		assert.Equal(t, []string{"Groceries"}, summary.Alerts.Over)
		assert.Empty(t, summary.Alerts.Warn)

		require.Len(t, rec.calls, 1)
		assert.Equal(t, recordedSummary{month: "2025-01", over: 1, warn: 0}, rec.calls[0])
	})

	t.Run("near_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txs := NewTransactionService(db)
		budgets := NewBudgetService(db)
		seedJanuaryGroceries(t, txs)
		_, err := budgets.AddBudget("2025-01", "Groceries", 6000)
		require.NoError(t, err)

		summary, err := NewSummaryService(txs, budgets, nil).SummarizeMonth("2025-01")
		require.NoError(t, err)

		row := summary.BudgetUtilization[0]
		assert.Equal(t, 83.3, row.UtilizationPct)
		assert.Equal(t, 1000.0, row.Remaining)
		assert.Equal(t, AlertWarn, row.Status)
		assert.Equal(t, []string{"Groceries"}, summary.Alerts.Warn)
		assert.Empty(t, summary.Alerts.Over)
	})

	t.Run("empty_month_with_budgets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txs := NewTransactionService(db)
		budgets := NewBudgetService(db)
		seedJanuaryGroceries(t, txs)
		_, err := budgets.AddBudget("2025-02", "Groceries", 4000)
		require.NoError(t, err)
		_, err = budgets.AddBudget("2025-02", "Transport", 1500)
		require.NoError(t, err)

		summary, err := NewSummaryService(txs, budgets, nil).SummarizeMonth("2025-02")
		require.NoError(t, err)

		assert.Zero(t, summary.TotalIncome)
		assert.Zero(t, summary.TotalExpense)
		assert.Zero(t, summary.Net)
		assert.Empty(t, summary.ByCategory)
		require.Len(t, summary.BudgetUtilization, 2)
		for _, row := range summary.BudgetUtilization {
			assert.Zero(t, row.Spent)
			assert.Zero(t, row.UtilizationPct)
			assert.Equal(t, row.Limit, row.Remaining)
			assert.Equal(t, AlertOK, row.Status)
		}
		assert.Empty(t, summary.Alerts.Over)
		assert.Empty(t, summary.Alerts.Warn)
	})

	t.Run("defaults_to_current_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txs := NewTransactionService(db)
		today := time.Now().Format("2006-01-02")
		testutil.CreateTestTransaction(t, db, today, "Food & Drinks", 25.5, models.TransactionTypeExpense)

		summary, err := NewSummaryService(txs, NewBudgetService(db), nil).SummarizeMonth("")
		require.NoError(t, err)

		assert.Equal(t, CurrentMonthKey(), summary.Month)
		assert.Equal(t, 25.5, summary.TotalExpense)
	})

	t.Run("invalid_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txs := NewTransactionService(db)

		_, err := NewSummaryService(txs, NewBudgetService(db), nil).SummarizeMonth("2025-13")
		testutil.AssertAppError(t, err, "INVALID_MONTH")
	})
}

func TestSummarize(t *testing.T) {
	tx := func(category string, amount float64, txType models.TransactionType) models.Transaction {
		return models.Transaction{Date: "2025-03-01", Category: category, Amount: amount, Type: txType}
	}

	t.Run("net_is_income_minus_expense", func(t *testing.T) {
		txs := []models.Transaction{
			tx("Salary", 1000.10, models.TransactionTypeIncome),
			tx("Side Hustle", 0.20, models.TransactionTypeIncome),
			tx("Groceries", -0.10, models.TransactionTypeExpense),
			tx("Transport", -0.20, models.TransactionTypeExpense),
		}
		s := Summarize("2025-03", txs, nil)

		assert.Equal(t, 1000.30, s.TotalIncome)
		assert.Equal(t, 0.30, s.TotalExpense)
		assert.Equal(t, 1000.0, s.Net)
	})

	t.Run("breakdown_sorted_by_amount_then_name", func(t *testing.T) {
		txs := []models.Transaction{
			tx("Transport", -50, models.TransactionTypeExpense),
			tx("Groceries", -120, models.TransactionTypeExpense),
			tx("Bills & Utilities", -50, models.TransactionTypeExpense),
			tx("Groceries", -30, models.TransactionTypeExpense),
			tx("Salary", 900, models.TransactionTypeIncome),
		}
		s := Summarize("2025-03", txs, nil)

		assert.Equal(t, []CategoryTotal{
			{Category: "Groceries", Amount: 150},
			{Category: "Bills & Utilities", Amount: 50},
			{Category: "Transport", Amount: 50},
		}, s.ByCategory)
	})

	t.Run("sub_cent_spend_crosses_warn_threshold", func(t *testing.T) {
		txs := []models.Transaction{tx("Groceries", -4800.004, models.TransactionTypeExpense)}
		budgets := []models.Budget{{Base: models.Base{ID: 1}, Month: "2025-03", Category: "Groceries", LimitAmount: 6000}}
		s := Summarize("2025-03", txs, budgets)

		require.Len(t, s.BudgetUtilization, 1)
		u := s.BudgetUtilization[0]
		assert.Equal(t, AlertWarn, u.Status)
		assert.Equal(t, 4800.0, u.Spent)
		assert.Equal(t, 1200.0, u.Remaining)
		assert.Equal(t, []string{"Groceries"}, s.Alerts.Warn)
	})

	t.Run("sub_cent_spend_crosses_limit", func(t *testing.T) {
		txs := []models.Transaction{tx("Travel", -100.001, models.TransactionTypeExpense)}
		budgets := []models.Budget{{Base: models.Base{ID: 1}, Month: "2025-03", Category: "Travel", LimitAmount: 100}}
		s := Summarize("2025-03", txs, budgets)

		require.Len(t, s.BudgetUtilization, 1)
		assert.Equal(t, AlertOver, s.BudgetUtilization[0].Status)
		assert.Equal(t, 0.0, s.BudgetUtilization[0].Remaining)
	})

	t.Run("zero_limit_budget", func(t *testing.T) {
		txs := []models.Transaction{tx("Travel", -10, models.TransactionTypeExpense)}
		budgets := []models.Budget{{Base: models.Base{ID: 1}, Month: "2025-03", Category: "Travel", LimitAmount: 0}}
		s := Summarize("2025-03", txs, budgets)

		row := s.BudgetUtilization[0]
		assert.Zero(t, row.UtilizationPct)
		assert.Zero(t, row.Remaining)
		assert.Equal(t, AlertOver, row.Status)
	})

	t.Run("budget_without_expenses", func(t *testing.T) {
		txs := []models.Transaction{tx("Salary", 500, models.TransactionTypeIncome)}
		budgets := []models.Budget{{Base: models.Base{ID: 7}, Month: "2025-03", Category: "Health", LimitAmount: 200}}
		s := Summarize("2025-03", txs, budgets)

		assert.Empty(t, s.ByCategory)
		assert.Equal(t, BudgetUtilization{
			BudgetID: 7, Category: "Health", Limit: 200, Spent: 0, Remaining: 200, UtilizationPct: 0, Status: AlertOK,
		}, s.BudgetUtilization[0])
	})

	t.Run("duplicate_budgets_each_reported", func(t *testing.T) {
		txs := []models.Transaction{tx("Shopping", -300, models.TransactionTypeExpense)}
		budgets := []models.Budget{
			{Base: models.Base{ID: 1}, Month: "2025-03", Category: "Shopping", LimitAmount: 200},
			{Base: models.Base{ID: 2}, Month: "2025-03", Category: "Shopping", LimitAmount: 350},
			{Base: models.Base{ID: 3}, Month: "2025-03", Category: "Shopping", LimitAmount: 100},
		}
		s := Summarize("2025-03", txs, budgets)

		require.Len(t, s.BudgetUtilization, 3)
		assert.Equal(t, AlertOver, s.BudgetUtilization[0].Status)
		assert.Equal(t, AlertWarn, s.BudgetUtilization[1].Status)
		assert.Equal(t, AlertOver, s.BudgetUtilization[2].Status)
		assert.Equal(t, []string{"Shopping"}, s.Alerts.Over)
		assert.Equal(t, []string{"Shopping"}, s.Alerts.Warn)
	})

	t.Run("remaining_never_negative", func(t *testing.T) {
		txs := []models.Transaction{tx("Food & Drinks", -999.99, models.TransactionTypeExpense)}
		budgets := []models.Budget{{Month: "2025-03", Category: "Food & Drinks", LimitAmount: 10}}
		s := Summarize("2025-03", txs, budgets)

		assert.Zero(t, s.BudgetUtilization[0].Remaining)
		assert.Equal(t, 9999.9, s.BudgetUtilization[0].UtilizationPct)
	})

	t.Run("empty_input", func(t *testing.T) {
		s := Summarize("2025-03", nil, nil)

		assert.NotNil(t, s.ByCategory)
		assert.NotNil(t, s.BudgetUtilization)
		assert.NotNil(t, s.Alerts.Over)
		assert.NotNil(t, s.Alerts.Warn)
	})
}
