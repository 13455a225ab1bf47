package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"wealthyways/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction inserts a transaction, deriving the stored sign from txType.
func CreateTestTransaction(t *testing.T, db *gorm.DB, date, category string, amount float64, txType models.TransactionType) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Date:        date,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Category:    category,
		Amount:      models.SignedAmount(txType, amount),
		Type:        txType,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget inserts a budget row.
func CreateTestBudget(t *testing.T, db *gorm.DB, month, category string, limit float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Month:       month,
		Category:    category,
		LimitAmount: limit,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal inserts a goal with a unique name and no deadline.
func CreateTestGoal(t *testing.T, db *gorm.DB, target, current float64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: current,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CountRows returns the number of rows stored for model.
func CountRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
