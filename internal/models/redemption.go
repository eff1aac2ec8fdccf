package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Redemption is the audit record of one debit against a sponsorship. The
// reporting fold deliberately ignores this table and attributes consumption
// to the sponsorship's current establishment field.
type Redemption struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	SponsorshipID int64           `gorm:"column:sponsorship_id;not null;index" json:"sponsorship_id"`
	Establishment string          `gorm:"column:establishment;size:255;not null" json:"establishment"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	AgentName     string          `gorm:"column:agent_name;size:255" json:"agent_name"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Redemption) TableName() string {
	return "redemptions"
}
