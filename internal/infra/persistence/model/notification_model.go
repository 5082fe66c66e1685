package model

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentNotificationModel is the GORM-specific struct for the
// 'shipment_notifications' table. It represents one customer shipment
// tracked through the reminder and delivery lifecycle.
type ShipmentNotificationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerName string    `gorm:"type:text;not null"`
	PhoneNumber  string    `gorm:"type:text;not null"`
	// Digits-only projection of PhoneNumber, maintained on every write so
	// suffix matching can run inside the database.
	PhoneDigits        string `gorm:"type:text;not null;index"`
	ImagePath          string `gorm:"type:text"`
	ReminderDays       int    `gorm:"not null"`
	ReminderTime       time.Time
	ReminderSent       bool `gorm:"not null;default:false;index"`
	DeliveryConfirmed  bool `gorm:"not null;default:false"`
	DeliveryDate       *time.Time
	DeliveryProofImage *string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShipmentNotificationModel) TableName() string {
	return "shipment_notifications"
}
