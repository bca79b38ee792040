package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"chefly/config"
	"chefly/routes"
	"chefly/store"
	"chefly/utils"
)

func main() {
	logger := log.New(os.Stdout, "CHEFLY: ", log.Ldate|log.Ltime|log.Lshortfile)

	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
	}))

	// Explicitly constructed dependencies; nothing reads globals at
	// request time, so tests can substitute fakes.
	dataStore := store.NewStore(db)
	hub := utils.NewHub()
	notifier := utils.NewNotifier(dataStore, utils.SMTPSender{}, hub,
		log.New(os.Stdout, "NOTIFY: ", log.LstdFlags))

	routes.SetupRoutes(app, dataStore, notifier, hub)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"version": "1.0.0",
		})
	})

	logger.Printf("Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
