package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"chefly/models"
	"chefly/store"
	"chefly/utils"
)

type ApplicationController struct {
	Store    store.Storer
	Notifier *utils.Notifier
	Logger   *log.Logger
}

func NewApplicationController(s store.Storer, n *utils.Notifier, logger *log.Logger) *ApplicationController {
	return &ApplicationController{Store: s, Notifier: n, Logger: logger}
}

type applyRequest struct {
	GigID   uint   `json:"gig_id" validate:"required"`
	Message string `json:"message" validate:"max=1000"`
}

// Apply creates a chef's application for a gig. One application per
// (gig, chef); a repeat lands on the unique index and comes back 409.
func (ac *ApplicationController) Apply(c *fiber.Ctx) error {
	user := currentUser(c)

	chef, err := ac.Store.GetChefProfileByUserID(user.ID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}

	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	gig, err := ac.Store.GetGig(req.GigID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}
	if !gig.IsActive || gig.IsBooked {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Gig is no longer open for applications",
		})
	}

	app := models.GigApplication{
		GigID:   gig.ID,
		ChefID:  chef.ID,
		Status:  models.ApplicationApplied,
		Message: req.Message,
	}
	if err := ac.Store.ApplyToGig(&app); err != nil {
		return storeError(c, ac.Logger, err)
	}

	// Best-effort: tell the venue a new application arrived.
	if business, err := ac.Store.GetBusinessProfile(gig.BusinessID); err == nil {
		ac.Notifier.Notify(business.UserID, models.EventApplicationReceived,
			"New application for "+gig.Title,
			fmt.Sprintf("%s applied to your gig %q.", chef.DisplayName, gig.Title),
			fmt.Sprintf(`{"gig_id": %d, "application_id": %d}`, gig.ID, app.ID))
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

func (ac *ApplicationController) ListForGig(c *fiber.Ctx) error {
	gigID, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := ac.ownedApplicationGig(c, gigID); err != nil {
		return storeError(c, ac.Logger, err)
	}

	apps, err := ac.Store.ListApplicationsForGig(gigID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}
	return c.JSON(fiber.Map{"applications": apps, "count": len(apps)})
}

func (ac *ApplicationController) ListMine(c *fiber.Ctx) error {
	chef, err := ac.Store.GetChefProfileByUserID(currentUser(c).ID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}

	apps, err := ac.Store.ListChefApplications(chef.ID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}
	return c.JSON(fiber.Map{"applications": apps, "count": len(apps)})
}

// Shortlist moves an application to shortlisted; Reject to rejected. Both
// are owner-of-the-gig operations on a single application.
func (ac *ApplicationController) Shortlist(c *fiber.Ctx) error {
	return ac.setStatus(c, models.ApplicationShortlisted)
}

func (ac *ApplicationController) Reject(c *fiber.Ctx) error {
	return ac.setStatus(c, models.ApplicationRejected)
}

func (ac *ApplicationController) setStatus(c *fiber.Ctx, status string) error {
	appID, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	app, err := ac.Store.GetApplication(appID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}
	if _, err := ac.ownedApplicationGig(c, app.GigID); err != nil {
		return storeError(c, ac.Logger, err)
	}

	updated, err := ac.Store.SetApplicationStatus(appID, status)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}
	return c.JSON(updated)
}

// Accept runs the accept-for-gig workflow: the chosen application becomes
// accepted, every competing non-rejected one is rejected, atomically.
func (ac *ApplicationController) Accept(c *fiber.Ctx) error {
	appID, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	app, err := ac.Store.GetApplication(appID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}
	gig, err := ac.ownedApplicationGig(c, app.GigID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}

	accepted, rejectedCount, err := ac.Store.AcceptChefForGig(appID, app.GigID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}

	// Best-effort: tell the chef they were selected.
	if chef, err := ac.Store.GetChefProfile(accepted.ChefID); err == nil {
		ac.Notifier.Notify(chef.UserID, models.EventApplicationAccepted,
			"You were selected for "+gig.Title,
			fmt.Sprintf("Your application for %q was accepted. Confirm to lock it in.", gig.Title),
			fmt.Sprintf(`{"gig_id": %d, "application_id": %d}`, gig.ID, accepted.ID))
	}

	return c.JSON(fiber.Map{
		"acceptedApplication": accepted,
		"rejectedCount":       rejectedCount,
	})
}

// Confirm is the chef's final acceptance: flips the application to
// confirmed and books the gig in one transaction, then notifies the venue
// outside it.
func (ac *ApplicationController) Confirm(c *fiber.Ctx) error {
	user := currentUser(c)

	appID, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	chef, err := ac.Store.GetChefProfileByUserID(user.ID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}

	app, err := ac.Store.GetApplication(appID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}
	if app.ChefID != chef.ID {
		return storeError(c, ac.Logger, store.ErrForbidden)
	}

	confirmed, gig, err := ac.Store.ConfirmGigApplication(appID)
	if err != nil {
		return storeError(c, ac.Logger, err)
	}

	// The transaction is committed; notification failure must not undo it.
	if business, err := ac.Store.GetBusinessProfile(gig.BusinessID); err == nil {
		ac.Notifier.Notify(business.UserID, models.EventGigConfirmed,
			gig.Title+" is booked",
			fmt.Sprintf("%s confirmed for %q. The gig is now booked.", chef.DisplayName, gig.Title),
			fmt.Sprintf(`{"gig_id": %d, "application_id": %d}`, gig.ID, confirmed.ID))
	}

	return c.JSON(confirmed)
}

// ownedApplicationGig loads a gig and checks the caller's venue owns it.
func (ac *ApplicationController) ownedApplicationGig(c *fiber.Ctx, gigID uint) (*models.Gig, error) {
	business, err := ac.Store.GetBusinessProfileByUserID(currentUser(c).ID)
	if err != nil {
		return nil, err
	}
	gig, err := ac.Store.GetGig(gigID)
	if err != nil {
		return nil, err
	}
	if gig.BusinessID != business.ID {
		return nil, store.ErrForbidden
	}
	return gig, nil
}
