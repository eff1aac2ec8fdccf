package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Souley97/Kalpe-sante/internal/models"
	"github.com/Souley97/Kalpe-sante/pkg/common"
)

// SponsorshipService owns the sponsorship ledger: creation debits the
// sponsor's wallet and ring-fences the amount for the named beneficiary.
type SponsorshipService struct {
	DB     *gorm.DB
	Helper *HelperService
	Log    *logrus.Logger
}

func NewSponsorshipService(db *gorm.DB, helper *HelperService, log *logrus.Logger) *SponsorshipService {
	return &SponsorshipService{DB: db, Helper: helper, Log: log}
}

type CreateSponsorshipDTO struct {
	SponsorUserID    int
	BeneficiaryName  string
	BeneficiaryPhone string
	Amount           decimal.Decimal
}

// Create validates the input, debits the sponsor's wallet and inserts the
// sponsorship record. Wallet debit, record insert and the wallet log entry
// commit in one database transaction, so a failure anywhere leaves no
// half-applied state.
func (s *SponsorshipService) Create(data CreateSponsorshipDTO) (models.Sponsorship, decimal.Decimal, error) {
	name := strings.TrimSpace(data.BeneficiaryName)
	phone := strings.TrimSpace(data.BeneficiaryPhone)

	if name == "" {
		return models.Sponsorship{}, decimal.Zero, &ValidationError{Field: "beneficiary_name", Reason: "is required"}
	}
	if phone == "" {
		return models.Sponsorship{}, decimal.Zero, &ValidationError{Field: "beneficiary_phone", Reason: "is required"}
	}
	if !data.Amount.IsPositive() {
		return models.Sponsorship{}, decimal.Zero, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	var (
		sponsorship models.Sponsorship
		newBalance  decimal.Decimal
	)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var wallet models.Wallet
		if err := tx.Where("user_id = ?", data.SponsorUserID).First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &InsufficientFundsError{Available: decimal.Zero, Requested: data.Amount}
			}
			return err
		}

		if data.Amount.GreaterThan(wallet.Balance) {
			return &InsufficientFundsError{Available: wallet.Balance, Requested: data.Amount}
		}

		res := tx.Model(&models.Wallet{}).
			Where("id = ?", wallet.ID).
			UpdateColumn("balance", gorm.Expr("balance - ?", data.Amount))
		if res.Error != nil {
			return res.Error
		}

		if err := tx.First(&wallet, wallet.ID).Error; err != nil {
			return err
		}
		newBalance = wallet.Balance

		sponsorship = models.Sponsorship{
			SponsorUserID:    data.SponsorUserID,
			BeneficiaryName:  name,
			BeneficiaryPhone: phone,
			Amount:           data.Amount,
			RemainingAmount:  data.Amount,
			Status:           models.SponsorshipActive,
			Establishment:    models.EstablishmentUnused,
		}
		if err := tx.Create(&sponsorship).Error; err != nil {
			return err
		}

		_, err := s.Helper.SaveWalletTransaction(tx, TransactionData{
			WalletID:      wallet.ID,
			UserID:        data.SponsorUserID,
			TransactionNo: common.GenerateTrxNo(),
			Amount:        data.Amount,
			TrxType:       models.TrxTypeDebit,
			Subject:       "Parrainage",
			Balance:       wallet.Balance,
		})
		return err
	})
	if err != nil {
		return models.Sponsorship{}, decimal.Zero, err
	}

	s.Log.WithFields(logrus.Fields{
		"sponsorship_id": sponsorship.ID,
		"sponsor":        data.SponsorUserID,
		"beneficiary":    phone,
		"amount":         data.Amount.String(),
	}).Info("Sponsorship created")

	return sponsorship, newBalance, nil
}

// List returns a sponsor's records, most recent first.
func (s *SponsorshipService) List(sponsorUserID int) ([]models.Sponsorship, error) {
	var records []models.Sponsorship
	err := s.DB.Where("sponsor_user_id = ?", sponsorUserID).
		Order("id DESC").
		Find(&records).Error
	return records, err
}

// All returns the whole ledger, most recent first.
func (s *SponsorshipService) All() ([]models.Sponsorship, error) {
	var records []models.Sponsorship
	err := s.DB.Order("id DESC").Find(&records).Error
	return records, err
}
