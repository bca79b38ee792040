package controller

import (
	"log"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"

	"chefly/config"
	"chefly/models"
	"chefly/store"
	"chefly/utils"
)

type CompanyController struct {
	Store  store.Storer
	Logger *log.Logger
}

func NewCompanyController(s store.Storer, logger *log.Logger) *CompanyController {
	return &CompanyController{Store: s, Logger: logger}
}

// requireAccess runs the shared authorization predicate and writes the
// 404/403 response itself when access is denied.
func (cc *CompanyController) requireAccess(c *fiber.Ctx, companyID uint, roles ...string) (bool, error) {
	access, err := cc.Store.CanAccessCompany(currentUser(c).ID, companyID, roles...)
	if err != nil {
		return false, storeError(c, cc.Logger, err)
	}
	switch access {
	case store.AccessNotFound:
		return false, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Company not found",
		})
	case store.AccessForbidden:
		return false, c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient company role",
		})
	}
	return true, nil
}

type companyRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description" validate:"max=2000"`
}

func (cc *CompanyController) Create(c *fiber.Ctx) error {
	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	company := models.Company{Name: req.Name, Description: req.Description}
	if err := cc.Store.CreateCompany(&company, currentUser(c).ID); err != nil {
		return storeError(c, cc.Logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

func (cc *CompanyController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if ok, resp := cc.requireAccess(c, id); !ok {
		return resp
	}

	company, err := cc.Store.GetCompany(id)
	if err != nil {
		return storeError(c, cc.Logger, err)
	}
	return c.JSON(company)
}

func (cc *CompanyController) ListMine(c *fiber.Ctx) error {
	companies, err := cc.Store.ListUserCompanies(currentUser(c).ID)
	if err != nil {
		return storeError(c, cc.Logger, err)
	}
	return c.JSON(fiber.Map{"companies": companies, "count": len(companies)})
}

type addMemberRequest struct {
	UserID uint   `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=owner admin finance viewer"`
}

func (cc *CompanyController) AddMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if ok, resp := cc.requireAccess(c, id, models.CompanyRoleOwner, models.CompanyRoleAdmin); !ok {
		return resp
	}

	var req addMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	member := models.CompanyMember{
		CompanyID: id,
		UserID:    req.UserID,
		Role:      req.Role,
	}
	if err := cc.Store.AddCompanyMember(&member); err != nil {
		return storeError(c, cc.Logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateInvite issues a single-use invite from the caller's venue. The
// plain token is in the response exactly once; only a hash is stored.
func (cc *CompanyController) CreateInvite(c *fiber.Ctx) error {
	business, err := cc.Store.GetBusinessProfileByUserID(currentUser(c).ID)
	if err != nil {
		return storeError(c, cc.Logger, err)
	}

	var req inviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}
	if err := checkmail.ValidateFormat(req.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email is not a valid address",
		})
	}

	token, invite, err := cc.Store.CreateInvite(business.ID, req.Email, config.AppConfig.InviteTTL)
	if err != nil {
		return storeError(c, cc.Logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"invite": invite,
		"token":  token,
	})
}

type verifyInviteRequest struct {
	Token string `json:"token" validate:"required"`
}

// VerifyInvite is public: the invited party holds only the token.
func (cc *CompanyController) VerifyInvite(c *fiber.Ctx) error {
	var req verifyInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	check, err := cc.Store.VerifyInvite(req.Token)
	if err != nil {
		return storeError(c, cc.Logger, err)
	}
	return c.JSON(check)
}

type acceptInviteRequest struct {
	Token     string `json:"token" validate:"required"`
	CompanyID uint   `json:"company_id" validate:"required"`
}

func (cc *CompanyController) AcceptInvite(c *fiber.Ctx) error {
	var req acceptInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(c, err)
	}

	if ok, resp := cc.requireAccess(c, req.CompanyID, models.CompanyRoleOwner, models.CompanyRoleAdmin); !ok {
		return resp
	}

	invite, err := cc.Store.AcceptInvite(req.Token, req.CompanyID)
	if err != nil {
		return storeError(c, cc.Logger, err)
	}
	return c.JSON(invite)
}
