package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wealthyways/internal/models"
	"wealthyways/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	Month       string  `json:"month" binding:"required,month_key"`
	Category    string  `json:"category" binding:"required,max=100"`
	LimitAmount float64 `json:"limit_amount" binding:"gte=0"`
}

// BudgetListResponse wraps a list of budgets.
type BudgetListResponse struct {
	Budgets []models.Budget `json:"budgets"`
}

// CreateBudget handles budget creation
// @Summary     Create a budget
// @Description Add a spending cap for a month and category. Existing budgets for the same pair are kept.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	budget, err := h.budgetService.AddBudget(req.Month, req.Category, req.LimitAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets lists budgets
// @Summary     List budgets
// @Tags        budgets
// @Produce     json
// @Param       month query string false "Month (YYYY-MM)"
// @Success     200 {object} BudgetListResponse "Budgets"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
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
	if budgets == nil {
		budgets = []models.Budget{}
	}

	c.JSON(http.StatusOK, BudgetListResponse{Budgets: budgets})
}

// GetBudgetByID returns one budget
// @Summary     Get a budget
// @Tags        budgets
// @Produce     json
// @Param       id path int true "Budget ID"
// @Success     200 {object} models.Budget "Budget"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudgetByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget removes a budget
// @Summary     Delete a budget
// @Tags        budgets
// @Produce     json
// @Param       id path int true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Budget deleted"})
}
