package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"chefly/models"
	"chefly/store"
	"chefly/utils"
)

type InvoiceController struct {
	Store    store.Storer
	Notifier *utils.Notifier
	Logger   *log.Logger
}

func NewInvoiceController(s store.Storer, n *utils.Notifier, logger *log.Logger) *InvoiceController {
	return &InvoiceController{Store: s, Notifier: n, Logger: logger}
}

type invoiceRequest struct {
	GigID         uint    `json:"gig_id" validate:"required"`
	HoursWorked   float64 `json:"hours_worked" validate:"required,gt=0"`
	Rate          float64 `json:"rate" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,oneof=bank stripe"`
}

// Create raises an invoice for a gig the chef has confirmed. A duplicate
// for the same (gig, chef) hits the unique index and comes back 409.
func (ic *InvoiceController) Create(c *fiber.Ctx) error {
	user := currentUser(c)

	chef, err := ic.Store.GetChefProfileByUserID(user.ID)
	if err != nil {
		return storeError(c, ic.Logger, err)
	}

	var req invoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	gig, err := ic.Store.GetGig(req.GigID)
	if err != nil {
		return storeError(c, ic.Logger, err)
	}

	// Invoicing requires a confirmed engagement on this gig.
	apps, err := ic.Store.ListChefApplications(chef.ID)
	if err != nil {
		return storeError(c, ic.Logger, err)
	}
	var engaged bool
	for _, app := range apps {
		if app.GigID == gig.ID && app.Status == models.ApplicationConfirmed {
			engaged = true
			break
		}
	}
	if !engaged {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No confirmed application for this gig",
		})
	}

	invoice := models.GigInvoice{
		GigID:         gig.ID,
		ChefID:        chef.ID,
		BusinessID:    gig.BusinessID,
		HoursWorked:   req.HoursWorked,
		Rate:          req.Rate,
		PaymentMethod: req.PaymentMethod,
		Status:        models.InvoiceSubmitted,
	}
	if err := ic.Store.CreateInvoice(&invoice); err != nil {
		return storeError(c, ic.Logger, err)
	}

	// Committed; notify the venue best-effort.
	if business, err := ic.Store.GetBusinessProfile(gig.BusinessID); err == nil {
		ic.Notifier.Notify(business.UserID, models.EventInvoiceSubmitted,
			"Invoice received for "+gig.Title,
			fmt.Sprintf("%s submitted an invoice of %.2f for %q.", chef.DisplayName, invoice.Total, gig.Title),
			fmt.Sprintf(`{"gig_id": %d, "invoice_id": %d}`, gig.ID, invoice.ID))
	}

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func (ic *InvoiceController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	invoice, err := ic.Store.GetInvoice(id)
	if err != nil {
		return storeError(c, ic.Logger, err)
	}

	// Visible to the chef who raised it or the venue that owes it.
	user := currentUser(c)
	if chef, err := ic.Store.GetChefProfileByUserID(user.ID); err == nil && chef.ID == invoice.ChefID {
		return c.JSON(invoice)
	}
	if business, err := ic.Store.GetBusinessProfileByUserID(user.ID); err == nil && business.ID == invoice.BusinessID {
		return c.JSON(invoice)
	}
	return storeError(c, ic.Logger, store.ErrForbidden)
}

func (ic *InvoiceController) ListMine(c *fiber.Ctx) error {
	user := currentUser(c)

	if chef, err := ic.Store.GetChefProfileByUserID(user.ID); err == nil {
		invoices, err := ic.Store.ListChefInvoices(chef.ID)
		if err != nil {
			return storeError(c, ic.Logger, err)
		}
		return c.JSON(fiber.Map{"invoices": invoices, "count": len(invoices)})
	}

	business, err := ic.Store.GetBusinessProfileByUserID(user.ID)
	if err != nil {
		return storeError(c, ic.Logger, err)
	}
	invoices, err := ic.Store.ListBusinessInvoices(business.ID)
	if err != nil {
		return storeError(c, ic.Logger, err)
	}
	return c.JSON(fiber.Map{"invoices": invoices, "count": len(invoices)})
}
