package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apperrors "wealthyways/internal/errors"
	"wealthyways/internal/models"
)

var errConnReset = errors.New("connection reset by peer")

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func assertInternal(t *testing.T, err error) {
	t.Helper()

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
	assert.ErrorIs(t, err, errConnReset)
}

func TestStorageFailuresSurfaceAsInternalError(t *testing.T) {
	t.Run("add_transaction", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`INSERT INTO "transactions"`).WillReturnError(errConnReset)

		_, err := NewTransactionService(db).AddTransaction("2025-01-01", "", "Salary", 10, models.TransactionTypeIncome)
		assertInternal(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get_transactions", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "transactions"`).WillReturnError(errConnReset)

		_, err := NewTransactionService(db).GetTransactions("2025-01")
		assertInternal(t, err)
	})

	t.Run("list_months", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT DISTINCT`).WillReturnError(errConnReset)

		_, err := NewTransactionService(db).ListMonths()
		assertInternal(t, err)
	})

	t.Run("delete_budget", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectExec(`DELETE FROM "budgets"`).WillReturnError(errConnReset)

		err := NewBudgetService(db).DeleteBudget(1)
		assertInternal(t, err)
	})

	t.Run("update_goal_progress", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectExec(`UPDATE "savings_goals"`).WillReturnError(errConnReset)

		err := NewGoalService(db).UpdateGoalProgress(1, 50)
		assertInternal(t, err)
	})

	t.Run("summary_propagates_budget_failure", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "transactions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "t_date", "description", "category", "amount", "t_type"}))
		mock.ExpectQuery(`SELECT \* FROM "budgets"`).WillReturnError(errConnReset)

		svc := NewSummaryService(NewTransactionService(db), NewBudgetService(db), nil)
		_, err := svc.SummarizeMonth("2025-01")
		assertInternal(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
