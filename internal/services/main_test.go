package services

import (
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Souley97/Kalpe-sante/internal/database"
	"github.com/Souley97/Kalpe-sante/internal/models"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema and
// seed data. One connection only: a second connection to :memory: would see
// an empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateDB(db))
	require.NoError(t, database.Seed(db))
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// seedSponsor creates a user with a funded wallet and returns both.
func seedSponsor(t *testing.T, db *gorm.DB, balance string) (models.User, models.Wallet) {
	t.Helper()

	user := models.User{Name: "Moussa Diop", Phone: "771234567", Role: models.RoleCitizen}
	require.NoError(t, db.Create(&user).Error)

	wallet := models.Wallet{
		UserID:   user.ID,
		Balance:  decimal.RequireFromString(balance),
		Currency: "XOF",
	}
	require.NoError(t, db.Create(&wallet).Error)
	return user, wallet
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// noticeRecorder stands in for the asynq-backed enqueuer.
type noticeRecorder struct {
	notices []RedemptionNotice
	err     error
}

func (r *noticeRecorder) EnqueueRedemptionNotice(n RedemptionNotice) error {
	if r.err != nil {
		return r.err
	}
	r.notices = append(r.notices, n)
	return nil
}
