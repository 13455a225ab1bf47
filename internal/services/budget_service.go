package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthyways/internal/errors"
	"wealthyways/internal/models"
)

// budgetService handles budget persistence and queries.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// AddBudget always inserts a new row, even when the same (month, category)
// pair already has a budget.
func (s *budgetService) AddBudget(month, category string, limitAmount float64) (*models.Budget, error) {
	budget := &models.Budget{
		Month:       month,
		Category:    category,
		LimitAmount: limitAmount,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// GetBudgets returns budgets ordered by month descending then category,
// optionally restricted to one month.
func (s *budgetService) GetBudgets(month string) ([]models.Budget, error) {
	q := s.db.Model(&models.Budget{})
	if month != "" {
		q = q.Where("month = ?", month)
	}

	var budgets []models.Budget
	if err := q.Order("month DESC").Order("category ASC").Order("id ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetByID returns a single budget.
func (s *budgetService) GetBudgetByID(id uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// DeleteBudget removes a budget; a missing id is a no-op.
func (s *budgetService) DeleteBudget(id uint) error {
	if err := s.db.Where("id = ?", id).Delete(&models.Budget{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
