package handlers

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"wealthyways/internal/logger"
	"wealthyways/internal/models"
	"wealthyways/internal/services"
)

// ExportHandler streams ledger tables as CSV backups.
type ExportHandler struct {
	transactionService services.TransactionServicer
	budgetService      services.BudgetServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(transactionService services.TransactionServicer, budgetService services.BudgetServicer) *ExportHandler {
	return &ExportHandler{transactionService: transactionService, budgetService: budgetService}
}

var (
	transactionCSVHeader = []string{"id", "t_date", "description", "category", "amount", "t_type"}
	budgetCSVHeader      = []string{"id", "month", "category", "limit_amount"}
)

// ExportTransactions writes transactions as CSV
// @Summary     Export transactions
// @Tags        export
// @Produce     text/csv
// @Param       month query string false "Month (YYYY-MM)"
// @Success     200 {string} string "CSV file"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Router      /export/transactions.csv [get]
func (h *ExportHandler) ExportTransactions(c *gin.Context) {
	month, err := monthQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetTransactions(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Date,
			t.Description,
			t.Category,
			formatAmount(t.Amount),
			string(t.Type),
		})
	}
	writeCSV(c, "transactions.csv", transactionCSVHeader, rows)
}

// ExportBudgets writes budgets as CSV
// @Summary     Export budgets
// @Tags        export
// @Produce     text/csv
// @Param       month query string false "Month (YYYY-MM)"
// @Success     200 {string} string "CSV file"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Router      /export/budgets.csv [get]
func (h *ExportHandler) ExportBudgets(c *gin.Context) {
	month, err := monthQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetBudgets(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, budgetRow(b))
	}
	writeCSV(c, "budgets.csv", budgetCSVHeader, rows)
}

func budgetRow(b models.Budget) []string {
	return []string{
		strconv.FormatUint(uint64(b.ID), 10),
		b.Month,
		b.Category,
		formatAmount(b.LimitAmount),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeCSV(c *gin.Context, filename string, header []string, rows [][]string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w := csv.NewWriter(c.Writer)
	if err := w.Write(header); err != nil {
		logger.Get().Errorw("csv export failed", "file", filename, "error", err)
		return
	}
	if err := w.WriteAll(rows); err != nil {
		logger.Get().Errorw("csv export failed", "file", filename, "error", err)
	}
}
