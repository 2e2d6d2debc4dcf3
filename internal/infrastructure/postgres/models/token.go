package models

import "time"

type RedemptionTokenModel struct {
	ID              string     `gorm:"primaryKey"`
	UserID          string     `gorm:"index;not null"`
	EstablishmentID string     `gorm:"index;not null"`
	Kind            string     `gorm:"not null"`
	IssuedAt        time.Time  `gorm:"not null"`
	ExpiresAt       time.Time  `gorm:"index:idx_token_expires;not null"`
	Consumed        bool       `gorm:"not null;default:false"`
	ConsumedAt      *time.Time `gorm:"default:null"`
}

func (RedemptionTokenModel) TableName() string {
	return "redemption_tokens"
}
