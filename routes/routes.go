package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	controller "chefly/controllers"
	"chefly/middleware"
	"chefly/store"
	"chefly/utils"
)

// SetupRoutes registers the whole HTTP surface. Everything under /api/v1
// requires a Bearer token from the identity provider; the webhook and the
// invite verification endpoint are public.
func SetupRoutes(app *fiber.App, s store.Storer, notifier *utils.Notifier, hub *utils.Hub) {
	utils.InitStripe()

	profileController := controller.NewProfileController(s, log.New(os.Stdout, "PROFILE: ", log.LstdFlags))
	gigController := controller.NewGigController(s, log.New(os.Stdout, "GIG: ", log.LstdFlags))
	applicationController := controller.NewApplicationController(s, notifier, log.New(os.Stdout, "APPLICATION: ", log.LstdFlags))
	invoiceController := controller.NewInvoiceController(s, notifier, log.New(os.Stdout, "INVOICE: ", log.LstdFlags))
	reviewController := controller.NewReviewController(s, notifier, log.New(os.Stdout, "REVIEW: ", log.LstdFlags))
	notificationController := controller.NewNotificationController(s, hub, log.New(os.Stdout, "NOTIFICATION: ", log.LstdFlags))
	companyController := controller.NewCompanyController(s, log.New(os.Stdout, "COMPANY: ", log.LstdFlags))
	shiftController := controller.NewShiftController(s, notifier, log.New(os.Stdout, "SHIFT: ", log.LstdFlags))
	paymentController := controller.NewPaymentController(s, notifier, log.New(os.Stdout, "PAYMENT: ", log.LstdFlags))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public endpoints
	app.Post("/payment/webhook", paymentController.HandlePaymentWebhook)
	app.Post("/api/v1/companies/invites/verify", companyController.VerifyInvite)

	api := app.Group("/api/v1", middleware.Protected(s), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Profiles
	chefs := api.Group("/chefs")
	chefs.Post("/", profileController.CreateChefProfile)
	chefs.Get("/me", profileController.GetMyChefProfile)
	chefs.Put("/me", profileController.UpdateChefProfile)
	chefs.Get("/:id", profileController.GetChefProfile)

	businesses := api.Group("/businesses")
	businesses.Post("/", profileController.CreateBusinessProfile)
	businesses.Get("/me", profileController.GetMyBusinessProfile)
	businesses.Put("/me", profileController.UpdateBusinessProfile)
	businesses.Get("/:id", profileController.GetBusinessProfile)

	// Gigs
	gigs := api.Group("/gigs")
	gigs.Post("/", gigController.CreateGig)
	gigs.Get("/", gigController.ListGigs)
	gigs.Get("/mine", gigController.ListMyGigs)
	gigs.Post("/apply", applicationController.Apply)
	gigs.Get("/:id", gigController.GetGig)
	gigs.Put("/:id", gigController.UpdateGig)
	gigs.Delete("/:id", gigController.DeactivateGig)
	gigs.Get("/:id/applications", applicationController.ListForGig)
	gigs.Get("/:id/reviews", reviewController.ListForGig)

	// Applications
	applications := api.Group("/applications")
	applications.Get("/mine", applicationController.ListMine)
	applications.Put("/:id/shortlist", applicationController.Shortlist)
	applications.Put("/:id/reject", applicationController.Reject)
	applications.Put("/:id/accept", applicationController.Accept)
	applications.Put("/:id/confirm", applicationController.Confirm)

	// Invoices
	invoices := api.Group("/invoices")
	invoices.Post("/", invoiceController.Create)
	invoices.Get("/", invoiceController.ListMine)
	invoices.Get("/:id", invoiceController.Get)

	// Reviews
	reviews := api.Group("/reviews")
	reviews.Post("/", reviewController.Create)
	reviews.Get("/user/:id", reviewController.ListForUser)

	// Notifications
	notifications := api.Group("/notifications")
	notifications.Get("/", notificationController.List)
	notifications.Put("/:id/read", notificationController.MarkRead)
	notifications.Get("/preferences", notificationController.GetPreferences)
	notifications.Put("/preferences", notificationController.UpdatePreferences)

	app.Get("/api/v1/notifications/stream", websocket.New(
		controller.StreamNotifications(hub, log.New(os.Stdout, "WS: ", log.LstdFlags)),
	))

	// Companies
	companies := api.Group("/companies")
	companies.Post("/", companyController.Create)
	companies.Get("/", companyController.ListMine)
	companies.Get("/:id", companyController.Get)
	companies.Post("/:id/members", companyController.AddMember)
	companies.Post("/invites", companyController.CreateInvite)
	companies.Post("/invites/accept", companyController.AcceptInvite)

	// Shifts and QR check-in
	shifts := api.Group("/shifts")
	shifts.Post("/clock-in", shiftController.ClockIn)
	shifts.Put("/:id/clock-out", shiftController.ClockOut)
	shifts.Put("/:id/resolve", shiftController.Resolve)
	shifts.Get("/", shiftController.List)

	checkin := shifts.Group("/checkin-tokens", middleware.CheckinRateLimiter())
	checkin.Post("/", shiftController.CreateCheckinToken)
	checkin.Post("/validate", shiftController.ValidateCheckinToken)

	// Payments
	payments := api.Group("/payments")
	payments.Post("/connect-account", paymentController.ConnectAccount)
	payments.Post("/invoices/:id/intent", paymentController.CreateInvoiceIntent)

	// 404 fallback
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})

	log.Println("Routes initialized successfully")
}
