package main

import (
	"log"
	"time"

	"github.com/Cheppar/merch/config"
	authhandlers "github.com/Cheppar/merch/handlers/auth"
	"github.com/Cheppar/merch/handlers/dashboard"
	"github.com/Cheppar/merch/handlers/events"
	paymenthandlers "github.com/Cheppar/merch/handlers/payments"
	"github.com/Cheppar/merch/handlers/reservations"
	"github.com/Cheppar/merch/handlers/sessions"
	"github.com/Cheppar/merch/handlers/tickets"
	"github.com/Cheppar/merch/migrations"
	"github.com/Cheppar/merch/models"
	"github.com/Cheppar/merch/payments"
	"github.com/Cheppar/merch/seed"
	"github.com/Cheppar/merch/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase(cfg)

	migrations.MigrateEvents()
	migrations.MigrateOperatorAlerts()

	// Seed Initial Data
	if err := seed.SeedEvents(); err != nil {
		log.Fatalf("Failed to seed events: %v", err)
	}

	// Payment confirmation pipeline: gateway -> pending record -> poll
	// until terminal. The status source is the gaspayments table unless a
	// status endpoint is configured.
	var statusSource payments.StatusSource
	if cfg.StatusURL != "" {
		statusSource = payments.NewHTTPStatusSource(cfg.StatusURL, cfg.GatewayTimeout())
	} else {
		statusSource = &payments.TableStatusSource{DB: utils.PaymentsDB}
	}

	poller := &payments.Poller{
		Gateway: payments.NewSTKGateway(cfg.GatewayURL, cfg.GatewayTimeout()),
		Status:  statusSource,
		Config: payments.Config{
			InitialDelay: cfg.InitialDelay(),
			PollInterval: cfg.PollInterval(),
			MaxAttempts:  cfg.MaxAttempts,
		},
		Alert: payments.NewStorageAlerter(utils.PortalDB),
	}
	registry := payments.NewRegistry(poller)

	reservationHandler := reservations.NewHandler(cfg, registry)
	sessionHandler := sessions.NewHandler(cfg, registry)
	paymentHandler := paymenthandlers.NewHandler(cfg, registry, paymenthandlers.StoredRecords{DB: utils.PortalDB})
	eventHandler := events.NewHandler(utils.PortalDB)

	// Public routes
	public := r.Group("/")
	{
		public.POST("/login", authhandlers.Login)
		events.RegisterEventsRoutes(public, eventHandler)
		reservations.RegisterReservationRoutes(public, reservationHandler)
		sessions.RegisterSessionRoutes(public, sessionHandler)
		paymenthandlers.RegisterPaymentRoutes(public, paymentHandler)
		tickets.RegisterTicketRoutes(public)
	}

	// Staff routes
	protected := r.Group("/")
	protected.Use(authhandlers.AuthMiddleware())
	{
		protected.POST("/logout", authhandlers.Logout)
		dashboard.RegisterDashboardRoutes(protected)
		tickets.RegisterStaffTicketRoutes(protected)
	}

	// Migrate models
	utils.PortalDB.AutoMigrate(&models.User{})
	utils.PortalDB.AutoMigrate(&models.Reservation{})
	utils.PortalDB.AutoMigrate(&models.SessionBooking{})
	utils.PortalDB.AutoMigrate(&models.RSVP{})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
