package models

import "gorm.io/gorm"

// Invoice statuses
const (
	InvoiceSubmitted = "submitted"
	InvoicePaid      = "paid"
)

// GigInvoice is raised by a chef after a confirmed gig. The unique index on
// (gig_id, chef_id) is what rejects a duplicate submission, not a pre-check.
type GigInvoice struct {
	gorm.Model
	GigID      uint `gorm:"not null;uniqueIndex:uniq_gig_chef_invoice" json:"gig_id"`
	ChefID     uint `gorm:"not null;uniqueIndex:uniq_gig_chef_invoice" json:"chef_id"`
	BusinessID uint `gorm:"not null;index" json:"business_id"`

	HoursWorked float64 `gorm:"not null" json:"hours_worked"`
	Rate        float64 `gorm:"not null" json:"rate"`
	Total       float64 `gorm:"not null" json:"total"`

	PaymentMethod string `json:"payment_method"`
	Status        string `gorm:"not null;default:'submitted';index" json:"status"` // submitted, paid

	StripePaymentIntentID string `gorm:"index" json:"stripe_payment_intent_id,omitempty"`

	Gig      Gig             `json:"-"`
	Chef     ChefProfile     `gorm:"foreignKey:ChefID" json:"-"`
	Business BusinessProfile `gorm:"foreignKey:BusinessID" json:"-"`
}
