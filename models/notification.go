package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification event types
const (
	EventApplicationReceived = "application_received"
	EventApplicationAccepted = "application_accepted"
	EventGigConfirmed        = "gig_confirmed"
	EventInvoiceSubmitted    = "invoice_submitted"
	EventInvoicePaid         = "invoice_paid"
	EventReviewReceived      = "review_received"
	EventShiftSubmitted      = "shift_submitted"
)

// Notification is an in-app event row for a user.
type Notification struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`

	Type    string `gorm:"not null" json:"type"`
	Title   string `gorm:"not null" json:"title"`
	Message string `json:"message"`
	Data    string `gorm:"type:jsonb" json:"data,omitempty"` // {"gig_id": ..., "application_id": ...}

	IsRead bool       `gorm:"default:false;index" json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	User User `json:"-"`
}

// NotificationPreference holds the per-user toggles that gate which events
// produce an in-app row and which also go out by email.
type NotificationPreference struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	InAppEnabled bool `gorm:"default:true" json:"in_app_enabled"`
	EmailEnabled bool `gorm:"default:true" json:"email_enabled"`

	OnApplication bool `gorm:"default:true" json:"on_application"`
	OnAcceptance  bool `gorm:"default:true" json:"on_acceptance"`
	OnConfirm     bool `gorm:"default:true" json:"on_confirm"`
	OnInvoice     bool `gorm:"default:true" json:"on_invoice"`
	OnReview      bool `gorm:"default:true" json:"on_review"`
	OnShift       bool `gorm:"default:true" json:"on_shift"`

	User User `json:"-"`
}

// Allows reports whether the given event type is enabled for this user.
func (p *NotificationPreference) Allows(eventType string) bool {
	switch eventType {
	case EventApplicationReceived:
		return p.OnApplication
	case EventApplicationAccepted:
		return p.OnAcceptance
	case EventGigConfirmed:
		return p.OnConfirm
	case EventInvoiceSubmitted, EventInvoicePaid:
		return p.OnInvoice
	case EventReviewReceived:
		return p.OnReview
	case EventShiftSubmitted:
		return p.OnShift
	}
	return true
}
