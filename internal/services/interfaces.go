package services

import (
	"wealthyways/internal/models"
	"wealthyways/internal/pagination"
)

// An empty month argument means "no month filter" for list operations and
// "the current month" for SummarizeMonth.

// TransactionServicer defines the contract for storing and reading transactions.
type TransactionServicer interface {
	AddTransaction(date, description, category string, amount float64, transactionType models.TransactionType) (*models.Transaction, error)
	GetTransactions(month string) ([]models.Transaction, error)
	GetTransactionsPage(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id uint) (*models.Transaction, error)
	DeleteTransaction(id uint) error
	ListMonths() ([]string, error)
}

// BudgetServicer defines the contract for storing and reading monthly budgets.
type BudgetServicer interface {
	AddBudget(month, category string, limitAmount float64) (*models.Budget, error)
	GetBudgets(month string) ([]models.Budget, error)
	GetBudgetByID(id uint) (*models.Budget, error)
	DeleteBudget(id uint) error
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	AddGoal(name string, targetAmount, currentAmount float64, deadline *string) (*models.Goal, error)
	GetGoals() ([]models.Goal, error)
	GetGoalByID(id uint) (*models.Goal, error)
	UpdateGoalProgress(id uint, currentAmount float64) error
	DeleteGoal(id uint) error
}

// SummaryServicer computes monthly summaries from the current ledger state.
type SummaryServicer interface {
	SummarizeMonth(month string) (*MonthSummary, error)
}
