package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringList is an ordered list of strings stored as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return fmt.Errorf("unsupported type for StringList: %T", value)
}

// ChefProfile is the chef-facing half of a user account. One per chef,
// created at signup, mutated by the owner only, never hard-deleted.
type ChefProfile struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	DisplayName     string     `gorm:"not null" json:"display_name"`
	Bio             string     `json:"bio"`
	Skills          StringList `gorm:"type:jsonb" json:"skills"`
	ExperienceYears int        `gorm:"default:0" json:"experience_years"`
	Location        string     `gorm:"index" json:"location"`
	IsAvailable     bool       `gorm:"default:true" json:"is_available"`

	// Payout details; the payout account itself is provisioned via Stripe
	PaymentMethod string `gorm:"default:'bank'" json:"payment_method"` // bank, stripe
	BankAccount   string `json:"-"`
	BankSortCode  string `json:"-"`

	MediaURLs StringList `gorm:"type:jsonb" json:"media_urls"`

	User User `json:"-"`
}

// BusinessProfile is the venue-facing half of a user account.
type BusinessProfile struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	BusinessName string     `gorm:"not null;index" json:"business_name"`
	Description  string     `json:"description"`
	Location     string     `gorm:"index" json:"location"`
	VenueType    string     `json:"venue_type"` // restaurant, pub, hotel, catering
	CoverCount   int        `gorm:"default:0" json:"cover_count"`
	MediaURLs    StringList `gorm:"type:jsonb" json:"media_urls"`

	User User  `json:"-"`
	Gigs []Gig `gorm:"foreignKey:BusinessID" json:"-"`
}
