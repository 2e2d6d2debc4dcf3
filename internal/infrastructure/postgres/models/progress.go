package models

import "time"

// UserProgressModel rows are never deleted. The composite unique index is
// what makes GetOrCreate race-safe: a concurrent create loses on the
// constraint and re-reads.
type UserProgressModel struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          string    `gorm:"uniqueIndex:idx_user_establishment;not null"`
	EstablishmentID string    `gorm:"uniqueIndex:idx_user_establishment;not null"`
	DrinksCount     int32     `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (UserProgressModel) TableName() string {
	return "user_progress"
}
