package models

// Budget is a spending cap for one category in one month. Several rows may
// exist for the same (month, category) pair; each is treated independently.
type Budget struct {
	Base
	Month       string  `gorm:"not null;index" json:"month"`
	Category    string  `gorm:"not null" json:"category"`
	LimitAmount float64 `gorm:"column:limit_amount;not null" json:"limit_amount"`
}
