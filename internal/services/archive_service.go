package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Souley97/Kalpe-sante/internal/models"
)

// ArchiveService rotates old wallet log entries out of the live table. The
// live table keeps the newest TransactionLogLimit entries per wallet; the
// rest move to archived_wallet_transactions.
type ArchiveService struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewArchiveService(db *gorm.DB, log *logrus.Logger) *ArchiveService {
	return &ArchiveService{DB: db, Log: log}
}

// ArchiveAll runs the rotation across every wallet and returns how many
// entries moved.
func (s *ArchiveService) ArchiveAll() (int, error) {
	var walletIDs []int
	if err := s.DB.Model(&models.WalletTransaction{}).
		Distinct("wallet_id").
		Pluck("wallet_id", &walletIDs).Error; err != nil {
		return 0, err
	}

	moved := 0
	for _, id := range walletIDs {
		n, err := s.archiveWallet(id)
		if err != nil {
			return moved, err
		}
		moved += n
	}

	if moved > 0 {
		s.Log.WithField("entries", moved).Info("Wallet transactions archived")
	}
	return moved, nil
}

func (s *ArchiveService) archiveWallet(walletID int) (int, error) {
	var cutoff models.WalletTransaction
	err := s.DB.Where("wallet_id = ?", walletID).
		Order("id DESC").
		Offset(TransactionLogLimit - 1).
		First(&cutoff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var stale []models.WalletTransaction
	if err := s.DB.Where("wallet_id = ? AND id < ?", walletID, cutoff.ID).
		Order("id ASC").
		Find(&stale).Error; err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range stale {
			archived := models.ArchivedWalletTransaction{
				WalletID:      entry.WalletID,
				UserID:        entry.UserID,
				TransactionNo: entry.TransactionNo,
				Amount:        entry.Amount,
				TrxType:       entry.TrxType,
				Method:        entry.Method,
				Subject:       entry.Subject,
				Balance:       entry.Balance,
				CreatedAt:     entry.CreatedAt,
			}
			if err := tx.Create(&archived).Error; err != nil {
				return err
			}
		}
		return tx.Where("wallet_id = ? AND id < ?", walletID, cutoff.ID).
			Delete(&models.WalletTransaction{}).Error
	})
	if err != nil {
		return 0, err
	}
	return len(stale), nil
}
