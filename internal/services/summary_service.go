package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"wealthyways/internal/metrics"
	"wealthyways/internal/models"
)

// AlertStatus classifies a budget's spending against its limit.
type AlertStatus string

const (
	AlertOK   AlertStatus = "ok"
	AlertWarn AlertStatus = "warn"
	AlertOver AlertStatus = "over"
)

// WarnThreshold is the fraction of a limit above which a budget is close to it.
var WarnThreshold = decimal.NewFromFloat(0.8)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the expense magnitude of one category in a month.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// BudgetUtilization reports how much of one budget row has been spent.
type BudgetUtilization struct {
	BudgetID       uint        `json:"budget_id"`
	Category       string      `json:"category"`
	Limit          float64     `json:"limit"`
	Spent          float64     `json:"spent"`
	Remaining      float64     `json:"remaining"`
	UtilizationPct float64     `json:"utilization_pct"`
	Status         AlertStatus `json:"status"`
}

// Alerts lists the categories whose budgets are over or close to their limit.
type Alerts struct {
	Over []string `json:"over"`
	Warn []string `json:"warn"`
}

// MonthSummary is the computed financial picture of one month.
type MonthSummary struct {
	Month             string              `json:"month"`
	TotalIncome       float64             `json:"total_income"`
	TotalExpense      float64             `json:"total_expense"`
	Net               float64             `json:"net"`
	ByCategory        []CategoryTotal     `json:"by_category"`
	BudgetUtilization []BudgetUtilization `json:"budget_utilization"`
	Alerts            Alerts              `json:"alerts"`
}

// Classify returns over when spent exceeds limit, warn when spent is above
// WarnThreshold of the limit, and ok otherwise.
func Classify(spent, limit decimal.Decimal) AlertStatus {
	switch {
	case spent.GreaterThan(limit):
		return AlertOver
	case spent.GreaterThan(limit.Mul(WarnThreshold)):
		return AlertWarn
	default:
		return AlertOK
	}
}

// Summarize computes the summary of month from already-fetched rows. txs must
// belong to month and budgets must be the month's budgets in display order.
func Summarize(month string, txs []models.Transaction, budgets []models.Budget) *MonthSummary {
	income := decimal.Zero
	expense := decimal.Zero
	spentByCategory := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		amount := decimal.NewFromFloat(tx.Amount)
		switch tx.Type {
		case models.TransactionTypeIncome:
			income = income.Add(amount)
		case models.TransactionTypeExpense:
			expense = expense.Sub(amount)
			spentByCategory[tx.Category] = spentByCategory[tx.Category].Add(amount)
		}
	}

	byCategory := make([]CategoryTotal, 0, len(spentByCategory))
	for category, total := range spentByCategory {
		byCategory = append(byCategory, CategoryTotal{Category: category, Amount: total.Abs().Round(2).InexactFloat64()})
	}
	sort.Slice(byCategory, func(i, j int) bool {
		if byCategory[i].Amount != byCategory[j].Amount {
			return byCategory[i].Amount > byCategory[j].Amount
		}
		return byCategory[i].Category < byCategory[j].Category
	})

	utilization := make([]BudgetUtilization, 0, len(budgets))
	alerts := Alerts{Over: []string{}, Warn: []string{}}
	seen := map[AlertStatus]map[string]bool{AlertOver: {}, AlertWarn: {}}

	for _, b := range budgets {
		limit := decimal.NewFromFloat(b.LimitAmount)
		spent := spentByCategory[b.Category].Abs()

		pct := decimal.Zero
		if limit.IsPositive() {
			pct = spent.Div(limit).Mul(hundred).Round(1)
		}
		remaining := decimal.Max(decimal.Zero, limit.Sub(spent))
		status := Classify(spent, limit)

		utilization = append(utilization, BudgetUtilization{
			BudgetID:       b.ID,
			Category:       b.Category,
			Limit:          b.LimitAmount,
			Spent:          spent.Round(2).InexactFloat64(),
			Remaining:      remaining.Round(2).InexactFloat64(),
			UtilizationPct: pct.InexactFloat64(),
			Status:         status,
		})

		if status == AlertOK || seen[status][b.Category] {
			continue
		}
		seen[status][b.Category] = true
		if status == AlertOver {
			alerts.Over = append(alerts.Over, b.Category)
		} else {
			alerts.Warn = append(alerts.Warn, b.Category)
		}
	}

	return &MonthSummary{
		Month:             month,
		TotalIncome:       income.Round(2).InexactFloat64(),
		TotalExpense:      expense.Round(2).InexactFloat64(),
		Net:               income.Sub(expense).Round(2).InexactFloat64(),
		ByCategory:        byCategory,
		BudgetUtilization: utilization,
		Alerts:            alerts,
	}
}

type summaryService struct {
	transactions TransactionServicer
	budgets      BudgetServicer
	recorder     metrics.SummaryRecorder
}

// NewSummaryService creates a SummaryServicer reading through the given
// services. recorder may be nil.
func NewSummaryService(transactions TransactionServicer, budgets BudgetServicer, recorder metrics.SummaryRecorder) SummaryServicer {
	return &summaryService{transactions: transactions, budgets: budgets, recorder: recorder}
}

// SummarizeMonth recomputes the summary for month (default: current month)
// from the current store contents.
func (s *summaryService) SummarizeMonth(month string) (*MonthSummary, error) {
	start := time.Now()
	if month == "" {
		month = CurrentMonthKey()
	}

	txs, err := s.transactions.GetTransactions(month)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgets.GetBudgets(month)
	if err != nil {
		return nil, err
	}

	summary := Summarize(month, txs, budgets)

	if s.recorder != nil {
		s.recorder.ObserveSummary(month, time.Since(start), len(summary.Alerts.Over), len(summary.Alerts.Warn))
	}
	return summary, nil
}
