package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SMSService delivers short messages to beneficiaries. Delivery is simulated:
// the message is logged instead of handed to a gateway.
type SMSService struct {
	Log *logrus.Logger
}

func NewSMSService(log *logrus.Logger) *SMSService {
	return &SMSService{Log: log}
}

func (s *SMSService) Send(phone, message string) error {
	s.Log.WithFields(logrus.Fields{
		"phone":   phone,
		"message": message,
	}).Info("Simulated SMS sent")
	return nil
}

// RedemptionMessage formats the notice sent after a debit.
func RedemptionMessage(n RedemptionNotice) string {
	if n.Exhausted {
		return fmt.Sprintf("KALPÉ-SANTÉ: %s FCFA utilisés à %s. Votre ticket est épuisé.",
			n.Amount.StringFixed(0), n.Establishment)
	}
	return fmt.Sprintf("KALPÉ-SANTÉ: %s FCFA utilisés à %s. Solde restant: %s FCFA.",
		n.Amount.StringFixed(0), n.Establishment, n.Remaining.StringFixed(0))
}
