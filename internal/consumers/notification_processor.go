package consumers

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Souley97/Kalpe-sante/internal/services"
)

// NotificationProcessor executes the queued background tasks: beneficiary
// notices after a debit and the nightly wallet log rotation.
type NotificationProcessor struct {
	DB      *gorm.DB
	SMS     *services.SMSService
	Archive *services.ArchiveService
	Log     *logrus.Logger
}

func NewNotificationProcessor(db *gorm.DB, sms *services.SMSService, archive *services.ArchiveService, log *logrus.Logger) *NotificationProcessor {
	return &NotificationProcessor{
		DB:      db,
		SMS:     sms,
		Archive: archive,
		Log:     log,
	}
}

func (p *NotificationProcessor) ProcessRedemptionNotice(notice services.RedemptionNotice) error {
	if notice.BeneficiaryPhone == "" {
		p.Log.WithField("sponsorship_id", notice.SponsorshipID).
			Warn("Redemption notice skipped, beneficiary has no phone")
		return nil
	}
	return p.SMS.Send(notice.BeneficiaryPhone, services.RedemptionMessage(notice))
}

func (p *NotificationProcessor) ProcessWalletArchive() error {
	moved, err := p.Archive.ArchiveAll()
	if err != nil {
		return err
	}
	p.Log.WithField("entries", moved).Info("Wallet archive task finished")
	return nil
}
