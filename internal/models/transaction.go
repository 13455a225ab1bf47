package models

import "math"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single dated money movement.
// Amount is positive for income and negative for expenses; callers are
// responsible for keeping the sign consistent with Type.
type Transaction struct {
	Base
	Date        string          `gorm:"column:t_date;not null;index" json:"t_date"`
	Description string          `json:"description"`
	Category    string          `gorm:"not null" json:"category"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Type        TransactionType `gorm:"column:t_type;not null" json:"t_type"`
}

// SignedAmount converts a magnitude into the signed amount stored for the
// given transaction type.
func SignedAmount(t TransactionType, amount float64) float64 {
	if t == TransactionTypeExpense {
		return -math.Abs(amount)
	}
	return math.Abs(amount)
}
