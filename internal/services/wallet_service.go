package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Souley97/Kalpe-sante/internal/models"
	"github.com/Souley97/Kalpe-sante/pkg/common"
)

// TransactionLogLimit is how many wallet log entries stay in the live table
// per wallet. Older entries are rotated to the archive table by the nightly
// archive job.
const TransactionLogLimit = 10

type WalletService struct {
	DB       *gorm.DB
	Helper   *HelperService
	Channels map[string]PaymentChannel
	Log      *logrus.Logger
}

func NewWalletService(db *gorm.DB, helper *HelperService, channels map[string]PaymentChannel, log *logrus.Logger) *WalletService {
	return &WalletService{DB: db, Helper: helper, Channels: channels, Log: log}
}

// GetOrCreateWallet returns the user's wallet, creating an empty one on first
// access.
func (s *WalletService) GetOrCreateWallet(userID int) (models.Wallet, error) {
	var wallet models.Wallet
	err := s.DB.Where("user_id = ?", userID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = models.Wallet{UserID: userID, Balance: decimal.Zero, Currency: "XOF"}
		if err := s.DB.Create(&wallet).Error; err != nil {
			return models.Wallet{}, err
		}
		return wallet, nil
	}
	if err != nil {
		return models.Wallet{}, err
	}
	return wallet, nil
}

type TopupDTO struct {
	UserID int
	Amount decimal.Decimal
	Method string
}

// Topup charges the chosen payment channel (simulated) and credits the
// wallet. The balance update and the log entry commit together.
func (s *WalletService) Topup(data TopupDTO) (models.Wallet, models.WalletTransaction, error) {
	if !data.Amount.IsPositive() {
		return models.Wallet{}, models.WalletTransaction{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	var method models.PaymentMethod
	if err := s.DB.Where("code = ? AND status = 1", data.Method).First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Wallet{}, models.WalletTransaction{}, &ValidationError{Field: "method", Reason: "is not an enabled payment method"}
		}
		return models.Wallet{}, models.WalletTransaction{}, err
	}

	channel, ok := s.Channels[method.Code]
	if !ok {
		return models.Wallet{}, models.WalletTransaction{}, &ValidationError{Field: "method", Reason: "has no payment channel configured"}
	}

	wallet, err := s.GetOrCreateWallet(data.UserID)
	if err != nil {
		return models.Wallet{}, models.WalletTransaction{}, err
	}

	ref, err := channel.Charge(data.UserID, data.Amount)
	if err != nil {
		return models.Wallet{}, models.WalletTransaction{}, err
	}

	var entry models.WalletTransaction
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Wallet{}).
			Where("id = ?", wallet.ID).
			UpdateColumn("balance", gorm.Expr("balance + ?", data.Amount))
		if res.Error != nil {
			return res.Error
		}

		if err := tx.First(&wallet, wallet.ID).Error; err != nil {
			return err
		}

		entry, err = s.Helper.SaveWalletTransaction(tx, TransactionData{
			WalletID:      wallet.ID,
			UserID:        data.UserID,
			TransactionNo: common.GenerateTrxNo(),
			Amount:        data.Amount,
			TrxType:       models.TrxTypeCredit,
			Method:        method.Code,
			Subject:       "Recharge",
			Balance:       wallet.Balance,
		})
		return err
	})
	if err != nil {
		return models.Wallet{}, models.WalletTransaction{}, err
	}

	s.Log.WithFields(logrus.Fields{
		"user_id": data.UserID,
		"amount":  data.Amount.String(),
		"method":  method.Code,
		"ref":     ref,
	}).Info("Wallet topped up")

	return wallet, entry, nil
}

// Balance returns the current wallet balance, zero for a fresh user.
func (s *WalletService) Balance(userID int) (decimal.Decimal, error) {
	wallet, err := s.GetOrCreateWallet(userID)
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}

// Transactions returns the newest log entries for a user, capped at
// TransactionLogLimit, newest first.
func (s *WalletService) Transactions(userID int) ([]models.WalletTransaction, error) {
	var entries []models.WalletTransaction
	err := s.DB.Where("user_id = ?", userID).
		Order("id DESC").
		Limit(TransactionLogLimit).
		Find(&entries).Error
	return entries, err
}

// ArchivedTransactions pages through rotated-out history, newest first.
func (s *WalletService) ArchivedTransactions(userID, page int) (common.PaginationResult, error) {
	const limit = 50
	if page < 1 {
		page = 1
	}

	query := s.DB.Model(&models.ArchivedWalletTransaction{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var entries []models.ArchivedWalletTransaction
	if err := query.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&entries).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(entries, total, page, limit, "Archived transactions fetched"), nil
}
