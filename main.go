package main

import (
	stdlog "log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/Souley97/Kalpe-sante/internal/database"
	"github.com/Souley97/Kalpe-sante/internal/handlers"
	"github.com/Souley97/Kalpe-sante/internal/services"
	"github.com/Souley97/Kalpe-sante/internal/worker"
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

	log := logging.NewLoggerWithService("kalpe-sante-api")

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Initialize Database
	database.Connect(log)
	database.Migrate(log)
	db := database.DB

	// Redis/Asynq Client
	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer asynqClient.Close()
	enqueuer := worker.NewEnqueuer(asynqClient)

	// Init Services
	helperService := services.NewHelperService(db)
	channels := services.DefaultChannels(log)
	authService := services.NewAuthService(db, log)
	walletService := services.NewWalletService(db, helperService, channels, log)
	sponsorshipService := services.NewSponsorshipService(db, helperService, log)
	ticketService := services.NewTicketService(db)
	redemptionService := services.NewRedemptionService(db, log, enqueuer)
	reportingService := services.NewReportingService(db)

	// Nightly wallet log rotation
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 2 * * *", func() {
		if err := enqueuer.EnqueueWalletArchive(); err != nil {
			log.WithError(err).Warn("Could not enqueue wallet archive task")
		}
	}); err != nil {
		log.WithError(err).Fatal("Failed to schedule wallet archive job")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	walletHandler := handlers.NewWalletHandler(walletService)
	sponsorshipHandler := handlers.NewSponsorshipHandler(sponsorshipService, ticketService)
	redemptionHandler := handlers.NewRedemptionHandler(redemptionService)
	reportHandler := handlers.NewReportHandler(db, reportingService)

	// Initialize Gin
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authHandler.Me)
	}

	wallets := r.Group("/wallets")
	{
		wallets.GET("/balance", walletHandler.Balance)
		wallets.POST("/topup", walletHandler.Topup)
		wallets.GET("/transactions", walletHandler.Transactions)
		wallets.GET("/transactions/archive", walletHandler.ArchivedTransactions)
	}

	sponsorships := r.Group("/sponsorships")
	{
		sponsorships.POST("", sponsorshipHandler.Create)
		sponsorships.GET("", sponsorshipHandler.List)
	}

	r.GET("/tickets", sponsorshipHandler.TicketList)

	redemptions := r.Group("/redemptions")
	{
		redemptions.POST("", redemptionHandler.Redeem)
		redemptions.GET("/:id", redemptionHandler.History)
	}

	r.GET("/establishments", reportHandler.Establishments)

	reports := r.Group("/reports")
	{
		reports.GET("/summary", reportHandler.Summary)
		reports.GET("/export", reportHandler.ExportCSV)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("Starting HTTP server")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
