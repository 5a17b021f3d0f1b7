package main

import (
	"log"
	"time"

	"sevakiosk/config"
	authController "sevakiosk/controllers/auth"
	"sevakiosk/database"
	"sevakiosk/middleware"
	"sevakiosk/otp"
	adminRoutes "sevakiosk/routers/adminRoutes"
	authRoutes "sevakiosk/routers/authRoutes"
	billingRoutes "sevakiosk/routers/billingRoutes"
	contentRoutes "sevakiosk/routers/contentRoutes"
	grievanceRoutes "sevakiosk/routers/grievanceRoutes"
	notificationRoutes "sevakiosk/routers/notificationRoutes"
	paymentRoutes "sevakiosk/routers/paymentRoutes"
	serviceRequestRoutes "sevakiosk/routers/serviceRequestRoutes"
	userRoutes "sevakiosk/routers/userRoutes"
	"sevakiosk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Wire the OTP engine from configuration; the policy is explicit, not
	// ambient, so per-deployment tuning never touches code.
	cfg := config.AppConfig
	sender := otp.NewSMSSender(
		cfg.SMSApiKey,
		cfg.SMSSenderID,
		cfg.SMSTemplateID,
		cfg.SMSApiURL,
		time.Duration(cfg.SMSTimeoutSeconds)*time.Second,
	)
	authController.Engine = otp.NewEngine(database.Database.Db, otp.Config{
		Validity:    time.Duration(cfg.OTPValidityMinutes) * time.Minute,
		Cooldown:    time.Duration(cfg.OTPCooldownSeconds) * time.Second,
		BurstLimit:  cfg.OTPBurstLimit,
		BurstWindow: time.Duration(cfg.OTPBurstWindowMinutes) * time.Minute,
		CodeLength:  cfg.OTPCodeLength,
	}, sender)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Use(middleware.APIAccessLogger)

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	billingRoutes.SetupBillingRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	grievanceRoutes.SetupGrievanceRoutes(app)
	serviceRequestRoutes.SetupServiceRequestRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	scheduler := utils.StartScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
