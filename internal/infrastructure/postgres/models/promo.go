package models

import "time"

type PromoModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	EstablishmentID string    `gorm:"index:idx_promo_establishment_active"`
	TicketsRequired int32     `gorm:"not null"`
	TicketCost      float64
	RewardValue     float64
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool      `gorm:"index:idx_promo_establishment_active"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (PromoModel) TableName() string {
	return "promos"
}
