package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"

	"chefly/models"
	"chefly/store"
	"chefly/utils"
)

type PaymentController struct {
	Store    store.Storer
	Notifier *utils.Notifier
	Logger   *log.Logger
}

func NewPaymentController(s store.Storer, n *utils.Notifier, logger *log.Logger) *PaymentController {
	return &PaymentController{Store: s, Notifier: n, Logger: logger}
}

// ConnectAccount provisions a Stripe Connect payout account for the
// calling chef and stores the account id.
func (pc *PaymentController) ConnectAccount(c *fiber.Ctx) error {
	user := currentUser(c)

	if user.Role != models.RoleChef {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only chefs can create payout accounts",
		})
	}
	if user.StripeAccountID != nil {
		return c.JSON(fiber.Map{"account_id": *user.StripeAccountID})
	}

	acct, err := utils.CreateConnectAccount(user.Email)
	if err != nil {
		pc.Logger.Printf("stripe account creation failed for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create payout account",
		})
	}

	user.StripeAccountID = utils.Pointer(acct.ID)
	if err := pc.Store.SaveUser(user); err != nil {
		return storeError(c, pc.Logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"account_id": acct.ID})
}

// CreateInvoiceIntent lets the venue pay an invoice: creates a
// PaymentIntent for the invoice total and remembers the intent id so the
// webhook can settle it.
func (pc *PaymentController) CreateInvoiceIntent(c *fiber.Ctx) error {
	user := currentUser(c)

	business, err := pc.Store.GetBusinessProfileByUserID(user.ID)
	if err != nil {
		return storeError(c, pc.Logger, err)
	}

	invoiceID, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	invoice, err := pc.Store.GetInvoice(invoiceID)
	if err != nil {
		return storeError(c, pc.Logger, err)
	}
	if invoice.BusinessID != business.ID {
		return storeError(c, pc.Logger, store.ErrForbidden)
	}
	if invoice.Status == models.InvoicePaid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invoice is already paid",
		})
	}

	var customerID string
	if user.StripeCustomerID != nil {
		customerID = *user.StripeCustomerID
	}

	pi, err := utils.CreateInvoicePaymentIntent(invoice, customerID)
	if err != nil {
		pc.Logger.Printf("payment intent creation failed for invoice %d: %v", invoice.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process payment",
		})
	}

	invoice.StripePaymentIntentID = pi.ID
	if err := pc.Store.SaveInvoice(invoice); err != nil {
		return storeError(c, pc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"clientSecret": pi.ClientSecret,
		"invoice_id":   invoice.ID,
		"amount":       invoice.Total,
		"currency":     "gbp",
	})
}

// HandlePaymentWebhook settles invoices off Stripe events.
func (pc *PaymentController) HandlePaymentWebhook(c *fiber.Ctx) error {
	event, err := utils.ConstructStripeEvent(c)
	if err != nil {
		pc.Logger.Printf("stripe webhook rejected: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Error parsing payment intent",
			})
		}
		return pc.settleInvoice(c, &pi)

	default:
		return c.SendStatus(fiber.StatusOK)
	}
}

func (pc *PaymentController) settleInvoice(c *fiber.Ctx, pi *stripe.PaymentIntent) error {
	invoice, err := pc.Store.GetInvoiceByPaymentIntent(pi.ID)
	if err != nil {
		return storeError(c, pc.Logger, err)
	}

	paid, err := pc.Store.MarkInvoicePaid(invoice.ID)
	if err != nil {
		return storeError(c, pc.Logger, err)
	}

	// Settled; let the chef know, best-effort.
	if chef, err := pc.Store.GetChefProfile(paid.ChefID); err == nil {
		pc.Notifier.Notify(chef.UserID, models.EventInvoicePaid,
			"Invoice paid",
			fmt.Sprintf("Your invoice #%d for %.2f was paid.", paid.ID, paid.Total),
			fmt.Sprintf(`{"invoice_id": %d}`, paid.ID))
	}

	return c.SendStatus(fiber.StatusOK)
}
