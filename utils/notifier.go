package utils

import (
	"fmt"
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"chefly/config"
	"chefly/models"
	"chefly/store"
)

// MailSender sends a single transactional email.
type MailSender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends through the configured SMTP relay via gomail.
type SMTPSender struct{}

func (SMTPSender) Send(to, subject, body string) error {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		return fmt.Errorf("smtp is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return d.DialAndSend(m)
}

// Notifier delivers in-app and email notifications, gated by the user's
// preferences. Delivery is best-effort: a failed channel is logged and
// captured, never propagated, so core writes are not blocked by a
// messaging outage.
type Notifier struct {
	Store  store.Storer
	Mail   MailSender
	Hub    *Hub
	Logger *log.Logger
}

func NewNotifier(s store.Storer, mail MailSender, hub *Hub, logger *log.Logger) *Notifier {
	return &Notifier{Store: s, Mail: mail, Hub: hub, Logger: logger}
}

// Notify fans the event out to every enabled channel for the user.
func (n *Notifier) Notify(userID uint, eventType, title, message, data string) {
	prefs, err := n.Store.GetNotificationPreferences(userID)
	if err != nil {
		n.report("load preferences", userID, eventType, err)
		return
	}
	if !prefs.Allows(eventType) {
		return
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    eventType,
		Title:   title,
		Message: message,
		Data:    data,
	}

	if prefs.InAppEnabled {
		if err := n.Store.CreateNotification(notification); err != nil {
			n.report("create notification", userID, eventType, err)
		} else if n.Hub != nil {
			n.Hub.Publish(userID, notification)
		}
	}

	if prefs.EmailEnabled {
		user, err := n.Store.GetUser(userID)
		if err != nil {
			n.report("load user", userID, eventType, err)
			return
		}
		body := fmt.Sprintf("<html><body><h2>%s</h2><p>%s</p></body></html>", title, message)
		if err := n.Mail.Send(user.Email, title, body); err != nil {
			n.report("send email", userID, eventType, err)
		}
	}
}

func (n *Notifier) report(stage string, userID uint, eventType string, err error) {
	logrus.WithFields(logrus.Fields{
		"stage":   stage,
		"user_id": userID,
		"event":   eventType,
	}).WithError(err).Warn("notification delivery failed")
	sentry.CaptureException(err)
	if n.Logger != nil {
		n.Logger.Printf("notification %s failed for user %d: %v", stage, userID, err)
	}
}
