package models

import "time"

type ValidationRecordModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	TokenID         string    `gorm:"index"`
	UserID          string    `gorm:"index;not null"`
	EstablishmentID string    `gorm:"index:idx_validation_establishment_ts;not null"`
	MerchantID      string
	Kind            string
	Outcome         string    `gorm:"not null"`
	Reason          string
	DrinksCount     int32
	Timestamp       time.Time `gorm:"index:idx_validation_establishment_ts;not null"`
}

func (ValidationRecordModel) TableName() string {
	return "validation_records"
}
