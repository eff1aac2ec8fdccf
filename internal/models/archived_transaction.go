package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArchivedWalletTransaction holds wallet activity rotated out of the live log.
// The API only ever shows the newest entries per wallet; older rows land here
// instead of being discarded, so the full history stays queryable.
type ArchivedWalletTransaction struct {
	ID            int             `gorm:"primaryKey;autoIncrement" json:"id"`
	WalletID      int             `gorm:"column:wallet_id;not null;index" json:"wallet_id"`
	UserID        int             `gorm:"column:user_id;not null;index" json:"user_id"`
	TransactionNo string          `gorm:"column:transaction_no;size:50;not null" json:"transaction_no"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	TrxType       string          `gorm:"column:trx_type;size:10;not null" json:"trx_type"`
	Method        string          `gorm:"column:method;size:20" json:"method"`
	Subject       string          `gorm:"column:subject;size:100;not null" json:"subject"`
	Balance       decimal.Decimal `gorm:"column:balance;type:decimal(20,2);not null" json:"balance"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"created_at"`
	ArchivedAt    time.Time       `gorm:"column:archived_at;autoCreateTime" json:"archived_at"`
}

func (ArchivedWalletTransaction) TableName() string {
	return "archived_wallet_transactions"
}
