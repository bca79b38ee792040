package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"chefly/models"
	"chefly/store"
	"chefly/utils"
)

type GigController struct {
	Store  store.Storer
	Logger *log.Logger
}

func NewGigController(s store.Storer, logger *log.Logger) *GigController {
	return &GigController{Store: s, Logger: logger}
}

type gigRequest struct {
	Title    string    `json:"title" validate:"required,max=150"`
	Role     string    `json:"role" validate:"required,max=50"`
	Location string    `json:"location" validate:"max=200"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
	PayRate  float64   `json:"pay_rate" validate:"required,gt=0"`
	Details  string    `json:"details" validate:"max=2000"`
}

func (gc *GigController) CreateGig(c *fiber.Ctx) error {
	user := currentUser(c)

	business, err := gc.Store.GetBusinessProfileByUserID(user.ID)
	if err != nil {
		return storeError(c, gc.Logger, err)
	}

	var req gigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}
	if !req.EndsAt.After(req.StartsAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ends_at must be after starts_at",
		})
	}

	gig := models.Gig{
		BusinessID: business.ID,
		Title:      req.Title,
		Role:       req.Role,
		Location:   req.Location,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		PayRate:    req.PayRate,
		Details:    req.Details,
		IsActive:   true,
	}

	if err := gc.Store.CreateGig(&gig); err != nil {
		return storeError(c, gc.Logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(gig)
}

func (gc *GigController) GetGig(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	gig, err := gc.Store.GetGig(id)
	if err != nil {
		return storeError(c, gc.Logger, err)
	}
	return c.JSON(gig)
}

// ListGigs returns active gigs, newest-first, with optional filters from
// the query string (location, role, from, to as RFC 3339).
func (gc *GigController) ListGigs(c *fiber.Ctx) error {
	filter := store.GigFilter{
		Location:   c.Query("location"),
		Role:       c.Query("role"),
		ActiveOnly: true,
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "from must be RFC 3339",
			})
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "to must be RFC 3339",
			})
		}
		filter.To = &t
	}

	gigs, err := gc.Store.ListGigs(filter)
	if err != nil {
		return storeError(c, gc.Logger, err)
	}
	return c.JSON(fiber.Map{"gigs": gigs, "count": len(gigs)})
}

func (gc *GigController) ListMyGigs(c *fiber.Ctx) error {
	business, err := gc.Store.GetBusinessProfileByUserID(currentUser(c).ID)
	if err != nil {
		return storeError(c, gc.Logger, err)
	}

	gigs, err := gc.Store.ListBusinessGigs(business.ID)
	if err != nil {
		return storeError(c, gc.Logger, err)
	}
	return c.JSON(fiber.Map{"gigs": gigs, "count": len(gigs)})
}

func (gc *GigController) UpdateGig(c *fiber.Ctx) error {
	gig, err := gc.ownedGig(c)
	if err != nil {
		return storeError(c, gc.Logger, err)
	}

	var req gigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	gig.Title = req.Title
	gig.Role = req.Role
	gig.Location = req.Location
	gig.StartsAt = req.StartsAt
	gig.EndsAt = req.EndsAt
	gig.PayRate = req.PayRate
	gig.Details = req.Details

	if err := gc.Store.UpdateGig(gig); err != nil {
		return storeError(c, gc.Logger, err)
	}
	return c.JSON(gig)
}

// DeactivateGig takes a gig off the board. Gigs are never hard-deleted.
func (gc *GigController) DeactivateGig(c *fiber.Ctx) error {
	gig, err := gc.ownedGig(c)
	if err != nil {
		return storeError(c, gc.Logger, err)
	}

	gig.IsActive = false
	if err := gc.Store.UpdateGig(gig); err != nil {
		return storeError(c, gc.Logger, err)
	}
	return c.JSON(gig)
}

// ownedGig loads the :id gig and checks it belongs to the caller's venue.
func (gc *GigController) ownedGig(c *fiber.Ctx) (*models.Gig, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, store.ErrNotFound
	}

	business, err := gc.Store.GetBusinessProfileByUserID(currentUser(c).ID)
	if err != nil {
		return nil, err
	}
	gig, err := gc.Store.GetGig(id)
	if err != nil {
		return nil, err
	}
	if gig.BusinessID != business.ID {
		return nil, store.ErrForbidden
	}
	return gig, nil
}
