package main

import (
	stdlog "log"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/Souley97/Kalpe-sante/internal/consumers"
	"github.com/Souley97/Kalpe-sante/internal/database"
	"github.com/Souley97/Kalpe-sante/internal/services"
	"github.com/Souley97/Kalpe-sante/internal/worker"
	"github.com/Souley97/Kalpe-sante/pkg/logging"
)

func main() {
	// Load env
	if err := godotenv.Load("../../.env"); err != nil {
		stdlog.Println("No .env file found in ../../.env, trying .env")
		if err := godotenv.Load(".env"); err != nil {
			stdlog.Println("No .env file found, using system env")
		}
	}

	log := logging.NewLoggerWithService("kalpe-sante-worker")

	// Connect DB
	database.Connect(log)
	db := database.DB

	// Init Services
	smsService := services.NewSMSService(log)
	archiveService := services.NewArchiveService(db, log)
	processor := consumers.NewNotificationProcessor(db, smsService, archiveService, log)

	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	log.WithField("redis", redisAddr).Info("Starting background worker")
	worker.StartWorker(asynq.RedisClientOpt{Addr: redisAddr}, processor)
}
