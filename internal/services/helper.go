package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Souley97/Kalpe-sante/internal/models"
	"github.com/Souley97/Kalpe-sante/pkg/common"
)

// HelperService writes wallet activity log entries for the other services.
type HelperService struct {
	DB *gorm.DB
}

func NewHelperService(db *gorm.DB) *HelperService {
	return &HelperService{DB: db}
}

type TransactionData struct {
	WalletID      int
	UserID        int
	TransactionNo string
	Amount        decimal.Decimal
	TrxType       string // models.TrxTypeCredit or models.TrxTypeDebit
	Method        string
	Subject       string
	Balance       decimal.Decimal // wallet balance after the operation
}

// SaveWalletTransaction appends one log entry. Pass tx when the entry must
// commit atomically with the balance change; pass nil to use the base
// connection.
func (s *HelperService) SaveWalletTransaction(tx *gorm.DB, data TransactionData) (models.WalletTransaction, error) {
	db := tx
	if db == nil {
		db = s.DB
	}

	if data.TransactionNo == "" {
		data.TransactionNo = common.GenerateTrxNo()
	}

	entry := models.WalletTransaction{
		WalletID:      data.WalletID,
		UserID:        data.UserID,
		TransactionNo: data.TransactionNo,
		Amount:        data.Amount,
		TrxType:       data.TrxType,
		Method:        data.Method,
		Subject:       data.Subject,
		Balance:       data.Balance,
	}

	if err := db.Create(&entry).Error; err != nil {
		return models.WalletTransaction{}, err
	}
	return entry, nil
}
