package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PaymentChannel charges a top-up through one payment provider and returns
// the provider's payment reference.
//
// All three channels here are simulations: the program demonstrates the
// voucher flow, not the money movement, so a charge always succeeds
// immediately. The interface is kept so a real provider integration slots in
// without touching WalletService.
type PaymentChannel interface {
	Code() string
	Charge(userID int, amount decimal.Decimal) (reference string, err error)
}

type OrangeMoneyChannel struct {
	Log *logrus.Logger
}

func NewOrangeMoneyChannel(log *logrus.Logger) *OrangeMoneyChannel {
	return &OrangeMoneyChannel{Log: log}
}

func (c *OrangeMoneyChannel) Code() string { return "orange" }

func (c *OrangeMoneyChannel) Charge(userID int, amount decimal.Decimal) (string, error) {
	ref := "OM-" + uuid.NewString()
	c.Log.WithFields(logrus.Fields{
		"channel": c.Code(),
		"user_id": userID,
		"amount":  amount.String(),
		"ref":     ref,
	}).Info("Simulated Orange Money charge")
	return ref, nil
}

type WaveChannel struct {
	Log *logrus.Logger
}

func NewWaveChannel(log *logrus.Logger) *WaveChannel {
	return &WaveChannel{Log: log}
}

func (c *WaveChannel) Code() string { return "wave" }

func (c *WaveChannel) Charge(userID int, amount decimal.Decimal) (string, error) {
	ref := "WV-" + uuid.NewString()
	c.Log.WithFields(logrus.Fields{
		"channel": c.Code(),
		"user_id": userID,
		"amount":  amount.String(),
		"ref":     ref,
	}).Info("Simulated Wave charge")
	return ref, nil
}

type BankCardChannel struct {
	Log *logrus.Logger
}

func NewBankCardChannel(log *logrus.Logger) *BankCardChannel {
	return &BankCardChannel{Log: log}
}

func (c *BankCardChannel) Code() string { return "card" }

func (c *BankCardChannel) Charge(userID int, amount decimal.Decimal) (string, error) {
	ref := "CB-" + uuid.NewString()
	c.Log.WithFields(logrus.Fields{
		"channel": c.Code(),
		"user_id": userID,
		"amount":  amount.String(),
		"ref":     ref,
	}).Info("Simulated card charge")
	return ref, nil
}

// DefaultChannels registers the three seeded payment methods.
func DefaultChannels(log *logrus.Logger) map[string]PaymentChannel {
	channels := map[string]PaymentChannel{}
	for _, c := range []PaymentChannel{
		NewOrangeMoneyChannel(log),
		NewWaveChannel(log),
		NewBankCardChannel(log),
	} {
		channels[c.Code()] = c
	}
	return channels
}
