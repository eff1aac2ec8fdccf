package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SponsorshipStatus string

const (
	SponsorshipActive    SponsorshipStatus = "active"
	SponsorshipExhausted SponsorshipStatus = "exhausted"
)

// EstablishmentUnused is the sentinel stored on a sponsorship that has never
// been redeemed anywhere.
const EstablishmentUnused = "Non utilisé"

// Sponsorship is a ring-fenced allocation of funds from a sponsor's wallet to
// a named beneficiary.
//
// Invariants:
//   - 0 <= RemainingAmount <= Amount; Amount never changes after creation.
//   - Status is exhausted iff RemainingAmount is zero; the transition
//     active -> exhausted happens at most once and never reverses.
//   - Establishment holds only the MOST RECENT redeeming facility (or the
//     unused sentinel). Per-visit history lives in the redemptions table.
//   - Version increments on every redemption; writers compare-and-swap on it.
type Sponsorship struct {
	ID               int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	SponsorUserID    int               `gorm:"column:sponsor_user_id;not null;index" json:"sponsor_user_id"`
	BeneficiaryName  string            `gorm:"column:beneficiary_name;size:255;not null" json:"beneficiary_name"`
	BeneficiaryPhone string            `gorm:"column:beneficiary_phone;size:50;not null;index" json:"beneficiary_phone"`
	Amount           decimal.Decimal   `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	RemainingAmount  decimal.Decimal   `gorm:"column:remaining_amount;type:decimal(20,2);not null" json:"remaining_amount"`
	Status           SponsorshipStatus `gorm:"column:status;size:20;not null;index" json:"status"`
	Establishment    string            `gorm:"column:establishment;size:255;not null" json:"establishment"`
	Version          int               `gorm:"column:version;not null;default:0" json:"version"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Sponsorship) TableName() string {
	return "sponsorships"
}
