package models

import (
	"time"
)

// PaymentMethod is a top-up channel a citizen can pick. Payments are
// simulated end to end; the rows only drive validation and display.
type PaymentMethod struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string    `gorm:"column:code;size:20;not null;uniqueIndex" json:"code"`
	DisplayName string    `gorm:"column:display_name;size:100;not null" json:"display_name"`
	Provider    string    `gorm:"column:provider;size:50;not null" json:"provider"`
	Status      int       `gorm:"column:status;default:1" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}
