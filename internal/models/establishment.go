package models

import (
	"time"
)

// Establishment is a health facility eligible to redeem tickets. The list is
// seeded and fixed; establishment names in CSV exports are safe unquoted
// because of that.
type Establishment struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null;uniqueIndex" json:"name"`
	City      string    `gorm:"column:city;size:100" json:"city"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Establishment) TableName() string {
	return "establishments"
}
