package main

import (
	stdlog "log"

	"github.com/joho/godotenv"

	"github.com/Souley97/Kalpe-sante/internal/database"
	"github.com/Souley97/Kalpe-sante/pkg/logging"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		stdlog.Println("No .env file found in current directory, trying parent")
		if err := godotenv.Load("../.env"); err != nil {
			stdlog.Println("No .env file found, using system environment variables")
		}
	}

	log := logging.NewLoggerWithService("kalpe-sante-migrate")

	database.Connect(log)

	log.Info("Running database migrations...")
	database.Migrate(log)
	log.Info("Migrations completed successfully!")
}
