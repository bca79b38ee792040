package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"chefly/models"
	"chefly/store"
	"chefly/utils"
)

type ReviewController struct {
	Store    store.Storer
	Notifier *utils.Notifier
	Logger   *log.Logger
}

func NewReviewController(s store.Storer, n *utils.Notifier, logger *log.Logger) *ReviewController {
	return &ReviewController{Store: s, Notifier: n, Logger: logger}
}

type reviewRequest struct {
	GigID           uint   `json:"gig_id" validate:"required"`
	RecipientID     uint   `json:"recipient_id" validate:"required"`
	Rating          int    `json:"rating" validate:"required,min=1,max=5"`
	Professionalism int    `json:"professionalism" validate:"omitempty,min=1,max=5"`
	Punctuality     int    `json:"punctuality" validate:"omitempty,min=1,max=5"`
	Communication   int    `json:"communication" validate:"omitempty,min=1,max=5"`
	Comment         string `json:"comment" validate:"max=2000"`
}

// Create leaves a review after a booked gig. One review per
// (gig, reviewer); duplicates come back 409 off the unique index.
func (rc *ReviewController) Create(c *fiber.Ctx) error {
	user := currentUser(c)

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	gig, err := rc.Store.GetGig(req.GigID)
	if err != nil {
		return storeError(c, rc.Logger, err)
	}
	if !gig.IsBooked {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Gig was never booked",
		})
	}
	if req.RecipientID == user.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot review yourself",
		})
	}
	if !rc.isGigParty(user.ID, gig) {
		return storeError(c, rc.Logger, store.ErrForbidden)
	}

	review := models.Review{
		GigID:           gig.ID,
		ReviewerID:      user.ID,
		RecipientID:     req.RecipientID,
		Rating:          req.Rating,
		Professionalism: req.Professionalism,
		Punctuality:     req.Punctuality,
		Communication:   req.Communication,
		Comment:         req.Comment,
	}
	if err := rc.Store.CreateReview(&review); err != nil {
		return storeError(c, rc.Logger, err)
	}

	rc.Notifier.Notify(req.RecipientID, models.EventReviewReceived,
		"New review for "+gig.Title,
		fmt.Sprintf("You received a %d-star review for %q.", req.Rating, gig.Title),
		fmt.Sprintf(`{"gig_id": %d, "review_id": %d}`, gig.ID, review.ID))

	return c.Status(fiber.StatusCreated).JSON(review)
}

// isGigParty reports whether the user was a party to the gig: the venue
// that posted it or the chef whose application was confirmed.
func (rc *ReviewController) isGigParty(userID uint, gig *models.Gig) bool {
	if business, err := rc.Store.GetBusinessProfileByUserID(userID); err == nil && business.ID == gig.BusinessID {
		return true
	}
	if chef, err := rc.Store.GetChefProfileByUserID(userID); err == nil {
		apps, err := rc.Store.ListChefApplications(chef.ID)
		if err != nil {
			return false
		}
		for _, app := range apps {
			if app.GigID == gig.ID && app.Status == models.ApplicationConfirmed {
				return true
			}
		}
	}
	return false
}

func (rc *ReviewController) ListForUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reviews, err := rc.Store.ListReviewsForUser(id)
	if err != nil {
		return storeError(c, rc.Logger, err)
	}
	return c.JSON(fiber.Map{"reviews": reviews, "count": len(reviews)})
}

func (rc *ReviewController) ListForGig(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reviews, err := rc.Store.ListReviewsForGig(id)
	if err != nil {
		return storeError(c, rc.Logger, err)
	}
	return c.JSON(fiber.Map{"reviews": reviews, "count": len(reviews)})
}
