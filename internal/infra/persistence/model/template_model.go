package model

import "time"

// MessageTemplateModel is the GORM-specific struct for the
// 'message_templates' table. Only operator overrides are stored; names
// without a row fall back to built-in default text.
type MessageTemplateModel struct {
	Name      string `gorm:"type:text;primary_key"`
	Text      string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageTemplateModel) TableName() string {
	return "message_templates"
}
