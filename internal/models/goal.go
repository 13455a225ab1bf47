package models

import "math"

// Goal is a savings target. CurrentAmount is the only mutable field.
type Goal struct {
	Base
	Name          string  `gorm:"not null" json:"name"`
	TargetAmount  float64 `gorm:"column:target_amount;not null" json:"target_amount"`
	CurrentAmount float64 `gorm:"column:current_amount;not null" json:"current_amount"`
	Deadline      *string `json:"deadline"`
}

// TableName keeps the table name used by the migrations.
func (Goal) TableName() string {
	return "savings_goals"
}

// Progress returns current/target, or 0 when the target is not positive.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount
}

// ProgressPercent is Progress as a percentage rounded to one decimal and
// capped at 100.
func (g *Goal) ProgressPercent() float64 {
	pct := math.Round(g.Progress()*1000) / 10
	return math.Min(100, pct)
}
