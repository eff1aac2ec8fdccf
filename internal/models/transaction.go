package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TrxTypeCredit = "credit"
	TrxTypeDebit  = "debit"
)

// WalletTransaction is one entry of a wallet's activity log. Amount is always
// positive; TrxType carries the direction. Balance is the wallet balance after
// the entry was applied.
type WalletTransaction struct {
	ID            int             `gorm:"primaryKey;autoIncrement" json:"id"`
	WalletID      int             `gorm:"column:wallet_id;not null;index" json:"wallet_id"`
	UserID        int             `gorm:"column:user_id;not null;index" json:"user_id"`
	TransactionNo string          `gorm:"column:transaction_no;size:50;not null;index" json:"transaction_no"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	TrxType       string          `gorm:"column:trx_type;size:10;not null" json:"trx_type"`
	Method        string          `gorm:"column:method;size:20" json:"method"`
	Subject       string          `gorm:"column:subject;size:100;not null" json:"subject"`
	Balance       decimal.Decimal `gorm:"column:balance;type:decimal(20,2);not null" json:"balance"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
