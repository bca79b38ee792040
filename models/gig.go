package models

import (
	"time"

	"gorm.io/gorm"
)

// GigApplication statuses. Transitions are monotonic:
// applied -> (shortlisted|rejected) -> accepted -> confirmed; rejected is terminal.
const (
	ApplicationApplied     = "applied"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
	ApplicationAccepted    = "accepted"
	ApplicationConfirmed   = "confirmed"
)

// Gig is a time-boxed work opportunity posted by a business. Active until
// deactivated or filled; booked once an application is confirmed.
type Gig struct {
	gorm.Model
	BusinessID uint `gorm:"not null;index" json:"business_id"`

	Title    string    `gorm:"not null" json:"title"`
	Role     string    `gorm:"not null" json:"role"` // head-chef, sous-chef, kp, ...
	Location string    `gorm:"index" json:"location"`
	StartsAt time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt   time.Time `gorm:"not null" json:"ends_at"`
	PayRate  float64   `gorm:"not null" json:"pay_rate"` // per hour
	Details  string    `json:"details"`

	IsActive bool `gorm:"default:true;index" json:"is_active"`
	IsBooked bool `gorm:"default:false" json:"is_booked"`

	Business     BusinessProfile  `gorm:"foreignKey:BusinessID" json:"-"`
	Applications []GigApplication `gorm:"foreignKey:GigID" json:"applications,omitempty"`
}

// GigApplication links one chef to one gig. The unique index on
// (gig_id, chef_id) makes re-application a conflict rather than a second row.
type GigApplication struct {
	gorm.Model
	GigID  uint `gorm:"not null;uniqueIndex:uniq_gig_chef_application" json:"gig_id"`
	ChefID uint `gorm:"not null;uniqueIndex:uniq_gig_chef_application" json:"chef_id"`

	Status    string `gorm:"not null;default:'applied';index" json:"status"`
	Confirmed bool   `gorm:"default:false" json:"confirmed"`
	Message   string `json:"message"`

	Gig  Gig         `json:"-"`
	Chef ChefProfile `gorm:"foreignKey:ChefID" json:"-"`
}
