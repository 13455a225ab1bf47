// Package categories holds the default category names offered to clients.
// Transactions and budgets reference categories by plain string; this list is
// a lookup aid and is never enforced by the store.
package categories

var defaults = []string{
	"Salary",
	"Side Hustle",
	"Food & Drinks",
	"Groceries",
	"Transport",
	"Bills & Utilities",
	"Shopping",
	"Entertainment",
	"Health",
	"Education",
	"Travel",
	"Others",
}

const (
	// DefaultTransactionCategory is preselected when recording a transaction.
	DefaultTransactionCategory = "Food & Drinks"
	// DefaultBudgetCategory is preselected when creating a budget.
	DefaultBudgetCategory = "Groceries"
)

// Registry is the read-only view of the default categories returned by the API.
type Registry struct {
	Categories         []string `json:"categories"`
	DefaultTransaction string   `json:"default_transaction"`
	DefaultBudget      string   `json:"default_budget"`
}

// Defaults returns a copy of the default category list in display order.
func Defaults() []string {
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}

// Known reports whether name is one of the default categories.
func Known(name string) bool {
	for _, c := range defaults {
		if c == name {
			return true
		}
	}
	return false
}

// Get returns the registry with its preselected defaults.
func Get() Registry {
	return Registry{
		Categories:         Defaults(),
		DefaultTransaction: DefaultTransactionCategory,
		DefaultBudget:      DefaultBudgetCategory,
	}
}
