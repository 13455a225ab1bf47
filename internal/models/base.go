package models

// Base contains the autoincrement primary key shared by all ledger tables.
// Rows carry no timestamps or soft-delete column: deletes are physical.
type Base struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
}
