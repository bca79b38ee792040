package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"chefly/config"
	"chefly/models"
	"chefly/store"
	"chefly/utils"
)

type ShiftController struct {
	Store    store.Storer
	Notifier *utils.Notifier
	Logger   *log.Logger
}

func NewShiftController(s store.Storer, n *utils.Notifier, logger *log.Logger) *ShiftController {
	return &ShiftController{Store: s, Notifier: n, Logger: logger}
}

type clockInRequest struct {
	BusinessID uint  `json:"business_id" validate:"required"`
	GigID      *uint `json:"gig_id"`
}

// ClockIn opens a shift for the calling chef, either against a gig they
// were accepted for or as standing venue staff.
func (sc *ShiftController) ClockIn(c *fiber.Ctx) error {
	chef, err := sc.Store.GetChefProfileByUserID(currentUser(c).ID)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}

	var req clockInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	shift, err := sc.Store.ClockIn(chef.ID, req.BusinessID, req.GigID)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shift)
}

// ClockOut closes the chef's open shift and submits it for review.
func (sc *ShiftController) ClockOut(c *fiber.Ctx) error {
	chef, err := sc.Store.GetChefProfileByUserID(currentUser(c).ID)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}

	shiftID, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	shift, err := sc.Store.ClockOut(shiftID, chef.ID)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}

	// Best-effort: the venue hears about the submitted timesheet.
	if business, err := sc.Store.GetBusinessProfile(shift.BusinessID); err == nil {
		sc.Notifier.Notify(business.UserID, models.EventShiftSubmitted,
			"Shift submitted",
			fmt.Sprintf("%s clocked out; shift #%d awaits review.", chef.DisplayName, shift.ID),
			fmt.Sprintf(`{"shift_id": %d}`, shift.ID))
	}

	return c.JSON(shift)
}

type resolveShiftRequest struct {
	Status string `json:"status" validate:"required,oneof=approved disputed void"`
	Note   string `json:"note" validate:"max=1000"`
}

// Resolve lets the venue approve, dispute, or void a shift.
func (sc *ShiftController) Resolve(c *fiber.Ctx) error {
	business, err := sc.Store.GetBusinessProfileByUserID(currentUser(c).ID)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}

	shiftID, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req resolveShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	shift, err := sc.Store.ResolveShift(shiftID, business.ID, req.Status, req.Note)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}
	return c.JSON(shift)
}

// List returns the caller's shifts: a chef sees their own, a venue sees
// the shifts worked at it.
func (sc *ShiftController) List(c *fiber.Ctx) error {
	user := currentUser(c)
	filter := store.ShiftFilter{Status: c.Query("status")}

	if chef, err := sc.Store.GetChefProfileByUserID(user.ID); err == nil {
		filter.ChefID = chef.ID
	} else if business, err := sc.Store.GetBusinessProfileByUserID(user.ID); err == nil {
		filter.BusinessID = business.ID
	} else {
		return storeError(c, sc.Logger, store.ErrNotFound)
	}

	shifts, err := sc.Store.ListShifts(filter)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}
	return c.JSON(fiber.Map{"shifts": shifts, "count": len(shifts)})
}

// CreateCheckinToken issues a short-lived QR code for the caller's venue.
func (sc *ShiftController) CreateCheckinToken(c *fiber.Ctx) error {
	business, err := sc.Store.GetBusinessProfileByUserID(currentUser(c).ID)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}

	code, token, err := sc.Store.CreateCheckinToken(business.ID, config.AppConfig.CheckinTokenTTL)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":       code,
		"expires_at": token.ExpiresAt,
	})
}

type validateCheckinRequest struct {
	Code string `json:"code" validate:"required"`
}

// ValidateCheckinToken consumes a QR code and clocks the chef in at the
// code's venue.
func (sc *ShiftController) ValidateCheckinToken(c *fiber.Ctx) error {
	chef, err := sc.Store.GetChefProfileByUserID(currentUser(c).ID)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}

	var req validateCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	shift, err := sc.Store.ConsumeCheckinToken(req.Code, chef.ID)
	if err != nil {
		return storeError(c, sc.Logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shift)
}
