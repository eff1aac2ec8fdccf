package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Souley97/Kalpe-sante/internal/models"
	"github.com/Souley97/Kalpe-sante/pkg/ticketcode"
)

// RedemptionNotice is the payload queued after a successful debit so the
// beneficiary can be told how much of their ticket is left.
type RedemptionNotice struct {
	SponsorshipID    int64           `json:"sponsorship_id"`
	BeneficiaryName  string          `json:"beneficiary_name"`
	BeneficiaryPhone string          `json:"beneficiary_phone"`
	Establishment    string          `json:"establishment"`
	Amount           decimal.Decimal `json:"amount"`
	Remaining        decimal.Decimal `json:"remaining"`
	Exhausted        bool            `json:"exhausted"`
}

// NoticeEnqueuer hands a notice to the background queue. The worker package
// provides the real implementation; tests stub it.
type NoticeEnqueuer interface {
	EnqueueRedemptionNotice(notice RedemptionNotice) error
}

// RedemptionService debits sponsorship tickets at the point of care.
type RedemptionService struct {
	DB      *gorm.DB
	Log     *logrus.Logger
	Notices NoticeEnqueuer
}

func NewRedemptionService(db *gorm.DB, log *logrus.Logger, notices NoticeEnqueuer) *RedemptionService {
	return &RedemptionService{DB: db, Log: log, Notices: notices}
}

type RedeemDTO struct {
	Code          string
	Amount        decimal.Decimal
	Establishment string
	AgentName     string
}

// Redeem decodes the presented ticket code, checks the debit against the
// ticket's state and applies it.
//
// Rejections are checked in a fixed order: malformed code, unknown ticket,
// already exhausted, invalid amount or establishment, insufficient balance.
// An exhausted ticket is reported as exhausted whatever amount the agent
// typed.
//
// The balance update compare-and-swaps on the version column; losing the race
// against another terminal returns ErrConcurrentModification and the agent
// retries with fresh state.
func (s *RedemptionService) Redeem(data RedeemDTO) (models.Sponsorship, error) {
	code, err := ticketcode.Decode(data.Code)
	if err != nil {
		return models.Sponsorship{}, err
	}

	var sponsorship models.Sponsorship
	if err := s.DB.First(&sponsorship, code.SponsorshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Sponsorship{}, ErrNotFound
		}
		return models.Sponsorship{}, err
	}

	if sponsorship.Status == models.SponsorshipExhausted {
		return models.Sponsorship{}, ErrAlreadyExhausted
	}

	if !data.Amount.IsPositive() {
		return models.Sponsorship{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	establishment := strings.TrimSpace(data.Establishment)
	if establishment == "" {
		return models.Sponsorship{}, &ValidationError{Field: "establishment", Reason: "is required"}
	}
	var known models.Establishment
	if err := s.DB.Where("name = ?", establishment).First(&known).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Sponsorship{}, &ValidationError{Field: "establishment", Reason: "is not a registered facility"}
		}
		return models.Sponsorship{}, err
	}

	if data.Amount.GreaterThan(sponsorship.RemainingAmount) {
		return models.Sponsorship{}, &InsufficientBalanceError{
			SponsorshipID: sponsorship.ID,
			Remaining:     sponsorship.RemainingAmount,
			Requested:     data.Amount,
		}
	}

	remaining := sponsorship.RemainingAmount.Sub(data.Amount)
	status := models.SponsorshipActive
	if remaining.IsZero() {
		status = models.SponsorshipExhausted
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Sponsorship{}).
			Where("id = ? AND version = ?", sponsorship.ID, sponsorship.Version).
			Updates(map[string]interface{}{
				"remaining_amount": remaining,
				"status":           status,
				"establishment":    establishment,
				"version":          sponsorship.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentModification
		}

		return tx.Create(&models.Redemption{
			SponsorshipID: sponsorship.ID,
			Establishment: establishment,
			Amount:        data.Amount,
			AgentName:     strings.TrimSpace(data.AgentName),
		}).Error
	})
	if err != nil {
		return models.Sponsorship{}, err
	}

	sponsorship.RemainingAmount = remaining
	sponsorship.Status = status
	sponsorship.Establishment = establishment
	sponsorship.Version++

	s.Log.WithFields(logrus.Fields{
		"sponsorship_id": sponsorship.ID,
		"establishment":  establishment,
		"amount":         data.Amount.String(),
		"remaining":      remaining.String(),
		"status":         status,
	}).Info("Ticket redeemed")

	// The notice is best effort: a queue outage must not undo the debit.
	if s.Notices != nil {
		notice := RedemptionNotice{
			SponsorshipID:    sponsorship.ID,
			BeneficiaryName:  sponsorship.BeneficiaryName,
			BeneficiaryPhone: sponsorship.BeneficiaryPhone,
			Establishment:    establishment,
			Amount:           data.Amount,
			Remaining:        remaining,
			Exhausted:        status == models.SponsorshipExhausted,
		}
		if err := s.Notices.EnqueueRedemptionNotice(notice); err != nil {
			s.Log.WithError(err).WithField("sponsorship_id", sponsorship.ID).
				Warn("Could not enqueue redemption notice")
		}
	}

	return sponsorship, nil
}

// History returns the audit trail for one sponsorship, oldest first.
func (s *RedemptionService) History(sponsorshipID int64) ([]models.Redemption, error) {
	var rows []models.Redemption
	err := s.DB.Where("sponsorship_id = ?", sponsorshipID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
