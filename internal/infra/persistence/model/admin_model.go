package model

import "time"

// AdministratorModel is the GORM-specific struct for the 'administrators'
// table. The Telegram account ID doubles as the primary key.
type AdministratorModel struct {
	TelegramID int64 `gorm:"primary_key;autoIncrement:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdministratorModel) TableName() string {
	return "administrators"
}
