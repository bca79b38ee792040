package utils

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/account"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"

	"chefly/config"
	"chefly/models"
)

func InitStripe() {
	stripe.Key = config.AppConfig.StripeSecretKey
}

// CreateConnectAccount provisions an Express payout account for a chef.
func CreateConnectAccount(email string) (*stripe.Account, error) {
	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	return account.New(params)
}

// MinorUnits converts a pound amount to pence. Rounded, not truncated:
// 19.99 pounds is 1998.99... in float and must still charge 1999 pence.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateInvoicePaymentIntent creates a PaymentIntent for an invoice total.
// Amounts are stored in pounds; Stripe wants minor units.
func CreateInvoicePaymentIntent(inv *models.GigInvoice, customerID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(MinorUnits(inv.Total)),
		Currency: stripe.String(string(stripe.CurrencyGBP)),
		Metadata: map[string]string{
			"invoice_id": strconv.Itoa(int(inv.ID)),
			"gig_id":     strconv.Itoa(int(inv.GigID)),
		},
		Description: stripe.String("Chefly gig invoice #" + strconv.Itoa(int(inv.ID))),
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}
	return paymentintent.New(params)
}

// ConstructStripeEvent verifies and decodes a Stripe webhook payload.
func ConstructStripeEvent(c *fiber.Ctx) (stripe.Event, error) {
	payload := c.Body()

	signature := c.Get("Stripe-Signature")
	if signature == "" {
		return stripe.Event{}, fiber.NewError(fiber.StatusBadRequest, "Missing Stripe-Signature header")
	}

	event, err := webhook.ConstructEventWithTolerance(
		payload,
		signature,
		config.AppConfig.StripeWebhookSecret,
		5*time.Minute,
	)
	if err != nil {
		return stripe.Event{}, fiber.NewError(fiber.StatusBadRequest, "Invalid webhook signature")
	}

	return event, nil
}
