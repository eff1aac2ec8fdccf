package models

import (
	"time"
)

// Role is the self-declared actor role. There is no authentication behind it;
// the program is a demonstration and identities are taken at face value.
type Role string

const (
	RoleCitizen     Role = "citizen"
	RoleBeneficiary Role = "beneficiary"
	RoleAgent       Role = "agent"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleBeneficiary, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Phone     string    `gorm:"column:phone;size:50" json:"phone"`
	Role      Role      `gorm:"column:role;size:20;not null;index" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
