package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"chefly/models"
	"chefly/store"
	"chefly/utils"
)

type ProfileController struct {
	Store  store.Storer
	Logger *log.Logger
}

func NewProfileController(s store.Storer, logger *log.Logger) *ProfileController {
	return &ProfileController{Store: s, Logger: logger}
}

type chefProfileRequest struct {
	DisplayName     string   `json:"display_name" validate:"required,max=100"`
	Bio             string   `json:"bio" validate:"max=2000"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years" validate:"min=0"`
	Location        string   `json:"location" validate:"max=200"`
	IsAvailable     *bool    `json:"is_available"`
	PaymentMethod   string   `json:"payment_method" validate:"omitempty,oneof=bank stripe"`
	MediaURLs       []string `json:"media_urls"`
}

func (pc *ProfileController) CreateChefProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	var req chefProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	profile := models.ChefProfile{
		UserID:          user.ID,
		DisplayName:     req.DisplayName,
		Bio:             req.Bio,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		IsAvailable:     true,
		PaymentMethod:   req.PaymentMethod,
		MediaURLs:       req.MediaURLs,
	}
	if req.PaymentMethod == "" {
		profile.PaymentMethod = "bank"
	}
	if req.IsAvailable != nil {
		profile.IsAvailable = *req.IsAvailable
	}

	if err := pc.Store.CreateChefProfile(&profile); err != nil {
		return storeError(c, pc.Logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (pc *ProfileController) GetChefProfile(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := pc.Store.GetChefProfile(id)
	if err != nil {
		return storeError(c, pc.Logger, err)
	}
	return c.JSON(profile)
}

func (pc *ProfileController) GetMyChefProfile(c *fiber.Ctx) error {
	profile, err := pc.Store.GetChefProfileByUserID(currentUser(c).ID)
	if err != nil {
		return storeError(c, pc.Logger, err)
	}
	return c.JSON(profile)
}

// UpdateChefProfile mutates the caller's own profile only.
func (pc *ProfileController) UpdateChefProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	profile, err := pc.Store.GetChefProfileByUserID(user.ID)
	if err != nil {
		return storeError(c, pc.Logger, err)
	}

	var req chefProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	profile.DisplayName = req.DisplayName
	profile.Bio = req.Bio
	profile.Skills = req.Skills
	profile.ExperienceYears = req.ExperienceYears
	profile.Location = req.Location
	if req.IsAvailable != nil {
		profile.IsAvailable = *req.IsAvailable
	}
	if req.PaymentMethod != "" {
		profile.PaymentMethod = req.PaymentMethod
	}
	profile.MediaURLs = req.MediaURLs

	if err := pc.Store.UpdateChefProfile(profile); err != nil {
		return storeError(c, pc.Logger, err)
	}
	return c.JSON(profile)
}

type businessProfileRequest struct {
	BusinessName string   `json:"business_name" validate:"required,max=150"`
	Description  string   `json:"description" validate:"max=2000"`
	Location     string   `json:"location" validate:"max=200"`
	VenueType    string   `json:"venue_type" validate:"max=50"`
	CoverCount   int      `json:"cover_count" validate:"min=0"`
	MediaURLs    []string `json:"media_urls"`
}

func (pc *ProfileController) CreateBusinessProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	var req businessProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	profile := models.BusinessProfile{
		UserID:       user.ID,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Location:     req.Location,
		VenueType:    req.VenueType,
		CoverCount:   req.CoverCount,
		MediaURLs:    req.MediaURLs,
	}

	if err := pc.Store.CreateBusinessProfile(&profile); err != nil {
		return storeError(c, pc.Logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (pc *ProfileController) GetBusinessProfile(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := pc.Store.GetBusinessProfile(id)
	if err != nil {
		return storeError(c, pc.Logger, err)
	}
	return c.JSON(profile)
}

func (pc *ProfileController) GetMyBusinessProfile(c *fiber.Ctx) error {
	profile, err := pc.Store.GetBusinessProfileByUserID(currentUser(c).ID)
	if err != nil {
		return storeError(c, pc.Logger, err)
	}
	return c.JSON(profile)
}

func (pc *ProfileController) UpdateBusinessProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	profile, err := pc.Store.GetBusinessProfileByUserID(user.ID)
	if err != nil {
		return storeError(c, pc.Logger, err)
	}

	var req businessProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	profile.BusinessName = req.BusinessName
	profile.Description = req.Description
	profile.Location = req.Location
	profile.VenueType = req.VenueType
	profile.CoverCount = req.CoverCount
	profile.MediaURLs = req.MediaURLs

	if err := pc.Store.UpdateBusinessProfile(profile); err != nil {
		return storeError(c, pc.Logger, err)
	}
	return c.JSON(profile)
}
