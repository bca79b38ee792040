package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"chefly/store"
	"chefly/utils"
)

type NotificationController struct {
	Store  store.Storer
	Hub    *utils.Hub
	Logger *log.Logger
}

func NewNotificationController(s store.Storer, hub *utils.Hub, logger *log.Logger) *NotificationController {
	return &NotificationController{Store: s, Hub: hub, Logger: logger}
}

func (nc *NotificationController) List(c *fiber.Ctx) error {
	unreadOnly := c.Query("unread") == "true"

	notifications, err := nc.Store.ListNotifications(currentUser(c).ID, unreadOnly)
	if err != nil {
		return storeError(c, nc.Logger, err)
	}
	return c.JSON(fiber.Map{"notifications": notifications, "count": len(notifications)})
}

func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	n, err := nc.Store.MarkNotificationRead(id, currentUser(c).ID)
	if err != nil {
		return storeError(c, nc.Logger, err)
	}
	return c.JSON(n)
}

func (nc *NotificationController) GetPreferences(c *fiber.Ctx) error {
	prefs, err := nc.Store.GetNotificationPreferences(currentUser(c).ID)
	if err != nil {
		return storeError(c, nc.Logger, err)
	}
	return c.JSON(prefs)
}

type preferencesRequest struct {
	InAppEnabled  *bool `json:"in_app_enabled"`
	EmailEnabled  *bool `json:"email_enabled"`
	OnApplication *bool `json:"on_application"`
	OnAcceptance  *bool `json:"on_acceptance"`
	OnConfirm     *bool `json:"on_confirm"`
	OnInvoice     *bool `json:"on_invoice"`
	OnReview      *bool `json:"on_review"`
	OnShift       *bool `json:"on_shift"`
}

func (nc *NotificationController) UpdatePreferences(c *fiber.Ctx) error {
	user := currentUser(c)

	var req preferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	prefs, err := nc.Store.GetNotificationPreferences(user.ID)
	if err != nil {
		return storeError(c, nc.Logger, err)
	}

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&prefs.InAppEnabled, req.InAppEnabled)
	apply(&prefs.EmailEnabled, req.EmailEnabled)
	apply(&prefs.OnApplication, req.OnApplication)
	apply(&prefs.OnAcceptance, req.OnAcceptance)
	apply(&prefs.OnConfirm, req.OnConfirm)
	apply(&prefs.OnInvoice, req.OnInvoice)
	apply(&prefs.OnReview, req.OnReview)
	apply(&prefs.OnShift, req.OnShift)
	prefs.UserID = user.ID

	if err := nc.Store.UpdateNotificationPreferences(prefs); err != nil {
		return storeError(c, nc.Logger, err)
	}
	return c.JSON(prefs)
}
