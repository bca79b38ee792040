package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleChef     = "chef"
	RoleBusiness = "business"
)

// User is the account row the identity provider's token maps onto.
// Registration and credentials live with the identity provider; we only
// keep what the API needs to authorize requests and bill.
type User struct {
	gorm.Model
	Email    string  `gorm:"not null;uniqueIndex" json:"email"`
	Name     *string `json:"name,omitempty"`
	Role     string  `gorm:"not null;default:'chef'" json:"role"` // chef, business
	IsActive bool    `gorm:"default:true" json:"is_active"`

	// Subject identifier issued by the identity provider
	ExternalID string `gorm:"index" json:"external_id,omitempty"`

	// Stripe
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
	StripeAccountID  *string `json:"stripe_account_id,omitempty"` // Connect payout account (chefs)

	// Relations
	ChefProfile     *ChefProfile     `gorm:"foreignKey:UserID" json:"chef_profile,omitempty"`
	BusinessProfile *BusinessProfile `gorm:"foreignKey:UserID" json:"business_profile,omitempty"`
	Notifications   []Notification   `gorm:"foreignKey:UserID" json:"-"`
}
