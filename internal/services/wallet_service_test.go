package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Souley97/Kalpe-sante/internal/models"
)

func TestTopup(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	svc := NewWalletService(db, NewHelperService(db), DefaultChannels(log), log)
	user, _ := seedSponsor(t, db, "0")

	wallet, entry, err := svc.Topup(TopupDTO{UserID: user.ID, Amount: amount("10000"), Method: "orange"})
	require.NoError(t, err)

	assert.True(t, wallet.Balance.Equal(amount("10000")))
	assert.Equal(t, models.TrxTypeCredit, entry.TrxType)
	assert.Equal(t, "Recharge", entry.Subject)
	assert.Equal(t, "orange", entry.Method)
	assert.True(t, entry.Balance.Equal(amount("10000")))
	assert.NotEmpty(t, entry.TransactionNo)
}

func TestTopupCreatesWalletOnFirstUse(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	svc := NewWalletService(db, NewHelperService(db), DefaultChannels(log), log)

	user := models.User{Name: "Awa Sow", Role: models.RoleCitizen}
	require.NoError(t, db.Create(&user).Error)

	wallet, _, err := svc.Topup(TopupDTO{UserID: user.ID, Amount: amount("2500"), Method: "wave"})
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(amount("2500")))
	assert.Equal(t, "XOF", wallet.Currency)
}

func TestTopupRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	svc := NewWalletService(db, NewHelperService(db), DefaultChannels(log), log)
	user, _ := seedSponsor(t, db, "0")

	_, _, err := svc.Topup(TopupDTO{UserID: user.ID, Amount: amount("0"), Method: "orange"})
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.Topup(TopupDTO{UserID: user.ID, Amount: amount("-100"), Method: "orange"})
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.Topup(TopupDTO{UserID: user.ID, Amount: amount("100"), Method: "paypal"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTransactionsCappedAtLogLimit(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	svc := NewWalletService(db, NewHelperService(db), DefaultChannels(log), log)
	user, _ := seedSponsor(t, db, "0")

	for i := 0; i < TransactionLogLimit+5; i++ {
		_, _, err := svc.Topup(TopupDTO{UserID: user.ID, Amount: amount("100"), Method: "orange"})
		require.NoError(t, err)
	}

	entries, err := svc.Transactions(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, TransactionLogLimit)

	// Newest first.
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i-1].ID, entries[i].ID)
	}
}

func TestBalanceFreshUserIsZero(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	svc := NewWalletService(db, NewHelperService(db), DefaultChannels(log), log)

	user := models.User{Name: "Awa Sow", Role: models.RoleCitizen}
	require.NoError(t, db.Create(&user).Error)

	balance, err := svc.Balance(user.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}
