package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wealthyways/internal/models"
	"wealthyways/internal/services"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Name          string  `json:"name" binding:"required,max=200"`
	TargetAmount  float64 `json:"target_amount" binding:"gte=0"`
	CurrentAmount float64 `json:"current_amount" binding:"gte=0"`
	Deadline      *string `json:"deadline" binding:"omitempty,optional_iso_date"`
}

// UpdateGoalProgressRequest replaces a goal's saved amount.
type UpdateGoalProgressRequest struct {
	CurrentAmount *float64 `json:"current_amount" binding:"required,gte=0"`
}

// GoalResponse is a goal with its computed progress.
type GoalResponse struct {
	models.Goal
	ProgressRatio float64 `json:"progress"`
	ProgressPct   float64 `json:"progress_pct"`
}

// GoalListResponse wraps a list of goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

func toGoalResponse(g models.Goal) GoalResponse {
	return GoalResponse{Goal: g, ProgressRatio: g.Progress(), ProgressPct: g.ProgressPercent()}
}

// CreateGoal handles goal creation
// @Summary     Create a savings goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} GoalResponse "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	if req.Deadline != nil && *req.Deadline == "" {
		req.Deadline = nil
	}

	goal, err := h.goalService.AddGoal(req.Name, req.TargetAmount, req.CurrentAmount, req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": toGoalResponse(*goal)})
}

// GetGoals lists goals newest first
// @Summary     List savings goals
// @Tags        goals
// @Produce     json
// @Success     200 {object} GoalListResponse "Goals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	goals, err := h.goalService.GetGoals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := GoalListResponse{Goals: make([]GoalResponse, 0, len(goals))}
	for _, g := range goals {
		resp.Goals = append(resp.Goals, toGoalResponse(g))
	}
	c.JSON(http.StatusOK, resp)
}

// GetGoalByID returns one goal
// @Summary     Get a savings goal
// @Tags        goals
// @Produce     json
// @Param       id path int true "Goal ID"
// @Success     200 {object} GoalResponse "Goal"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoalByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoalByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": toGoalResponse(*goal)})
}

// UpdateGoalProgress sets the saved amount of a goal
// @Summary     Update goal progress
// @Description Replace current_amount. Unknown ids succeed without effect.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path int                       true "Goal ID"
// @Param       request body UpdateGoalProgressRequest true "New saved amount"
// @Success     200 {object} MessageResponse "Progress updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /goals/{id}/progress [patch]
func (h *GoalHandler) UpdateGoalProgress(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	if err := h.goalService.UpdateGoalProgress(id, *req.CurrentAmount); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Goal progress updated"})
}

// DeleteGoal removes a goal
// @Summary     Delete a savings goal
// @Tags        goals
// @Produce     json
// @Param       id path int true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Goal deleted"})
}
