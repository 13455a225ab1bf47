package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthyways/internal/errors"
	"wealthyways/internal/models"
	"wealthyways/internal/pagination"
	"wealthyways/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for recording a
// transaction. Amount is a magnitude; its stored sign follows Type.
type CreateTransactionRequest struct {
	Date        string                 `json:"t_date" binding:"required,iso_date"`
	Description string                 `json:"description" binding:"max=500"`
	Category    string                 `json:"category" binding:"required,max=100"`
	Amount      float64                `json:"amount" binding:"nonzero_amount"`
	Type        models.TransactionType `json:"t_type" binding:"required,transaction_type"`
}

// TransactionListResponse is returned when listing without pagination.
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// MonthsResponse lists the months available for selection.
type MonthsResponse struct {
	Months []string `json:"months"`
}

// CreateTransaction records a new transaction
// @Summary     Record a transaction
// @Description Record an income or expense. The amount sign is derived from t_type.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	transaction, err := h.transactionService.AddTransaction(
		req.Date,
		req.Description,
		req.Category,
		models.SignedAmount(req.Type, req.Amount),
		req.Type,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions lists transactions newest first
// @Summary     List transactions
// @Description List transactions, optionally for one month. Passing page or page_size returns a paginated envelope.
// @Tags        transactions
// @Produce     json
// @Param       month     query string false "Month (YYYY-MM)"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size (max 200)"
// @Success     200 {object} TransactionListResponse "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid month or paging"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	month, err := monthQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if page.Requested() {
		result, err := h.transactionService.GetTransactionsPage(month, page)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	transactions, err := h.transactionService.GetTransactions(month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	c.JSON(http.StatusOK, TransactionListResponse{Transactions: transactions})
}

// GetTransactionByID returns one transaction
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Description Delete a transaction by id. Deleting an unknown id succeeds without effect.
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted"})
}

// ListMonths returns the months that have transactions
// @Summary     List months
// @Description Distinct transaction months, newest first. An empty ledger returns the current month.
// @Tags        transactions
// @Produce     json
// @Success     200 {object} MonthsResponse "Months"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /months [get]
func (h *TransactionHandler) ListMonths(c *gin.Context) {
	months, err := h.transactionService.ListMonths()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthsResponse{Months: months})
}
