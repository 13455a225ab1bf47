package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthyways/internal/errors"
	"wealthyways/internal/models"
)

type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

func (s *goalService) AddGoal(name string, targetAmount, currentAmount float64, deadline *string) (*models.Goal, error) {
	goal := &models.Goal{
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetGoals returns all goals, newest first.
func (s *goalService) GetGoals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Order("id DESC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

func (s *goalService) GetGoalByID(id uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoalProgress overwrites current_amount and nothing else. Unknown ids
// are silently ignored.
func (s *goalService) UpdateGoalProgress(id uint, currentAmount float64) error {
	err := s.db.Model(&models.Goal{}).
		Where("id = ?", id).
		Update("current_amount", currentAmount).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteGoal removes a goal; a missing id is a no-op.
func (s *goalService) DeleteGoal(id uint) error {
	if err := s.db.Where("id = ?", id).Delete(&models.Goal{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
