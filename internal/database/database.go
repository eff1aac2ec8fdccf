package database

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Souley97/Kalpe-sante/internal/models"
)

var DB *gorm.DB

func Connect(log *logrus.Logger) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	log.Info("Database connection established")
}

func Migrate(log *logrus.Logger) {
	if err := MigrateDB(DB); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}
	if err := Seed(DB); err != nil {
		log.WithError(err).Fatal("Failed to seed database")
	}
	log.Info("Database migration completed")
}

// MigrateDB runs schema migration on the given connection. Split out from
// Migrate so tests can run it against an in-memory database.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.ArchivedWalletTransaction{},
		&models.Sponsorship{},
		&models.Redemption{},
		&models.PaymentMethod{},
		&models.Establishment{},
	)
}

// Seed inserts the fixed payment-method and establishment catalogues.
// Idempotent: existing rows are left alone.
func Seed(db *gorm.DB) error {
	methods := []models.PaymentMethod{
		{Code: "orange", DisplayName: "Orange Money", Provider: "orange-money", Status: 1},
		{Code: "wave", DisplayName: "Wave", Provider: "wave", Status: 1},
		{Code: "card", DisplayName: "Carte Bancaire", Provider: "bank-card", Status: 1},
	}
	for _, m := range methods {
		if err := db.Where(models.PaymentMethod{Code: m.Code}).FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}

	// Seed order matters: reporting keeps this relative order for ties.
	establishments := []models.Establishment{
		{Name: "CHU de Fann", City: "Dakar"},
		{Name: "Hôpital Principal", City: "Dakar"},
		{Name: "Centre de Santé Gaspard Kamara", City: "Dakar"},
		{Name: "Poste de Santé Médina", City: "Dakar"},
	}
	for _, e := range establishments {
		if err := db.Where(models.Establishment{Name: e.Name}).FirstOrCreate(&e).Error; err != nil {
			return err
		}
	}

	return nil
}
