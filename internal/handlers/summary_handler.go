package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wealthyways/internal/categories"
	"wealthyways/internal/services"
)

// SummaryHandler serves the monthly summary and the category registry.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary computes the summary of a month
// @Summary     Monthly summary
// @Description Totals, spending by category, budget utilization and alerts. Defaults to the current month.
// @Tags        summary
// @Produce     json
// @Param       month query string false "Month (YYYY-MM)"
// @Success     200 {object} services.MonthSummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	month, err := monthQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.SummarizeMonth(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetCategories returns the default categories
// @Summary     Default categories
// @Tags        categories
// @Produce     json
// @Success     200 {object} categories.Registry "Category registry"
// @Router      /categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, categories.Get())
}
