package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkShift statuses
const (
	ShiftOpen      = "open"
	ShiftSubmitted = "submitted"
	ShiftApproved  = "approved"
	ShiftDisputed  = "disputed"
	ShiftVoid      = "void"
)

// VenueStaff marks a chef as recurring staff at a venue, allowing clock-in
// without a gig.
type VenueStaff struct {
	gorm.Model
	BusinessID uint `gorm:"not null;uniqueIndex:uniq_venue_staff" json:"business_id"`
	ChefID     uint `gorm:"not null;uniqueIndex:uniq_venue_staff" json:"chef_id"`

	RoleTitle string `json:"role_title"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	Business BusinessProfile `gorm:"foreignKey:BusinessID" json:"-"`
	Chef     ChefProfile     `gorm:"foreignKey:ChefID" json:"-"`
}

// WorkShift is one clock-in/clock-out pair. The partial unique index keeps
// at most one open shift per chef; a second clock-in hits a duplicate-key
// error instead of racing past an application-level check.
type WorkShift struct {
	gorm.Model
	ChefID     uint  `gorm:"not null;index;uniqueIndex:uniq_chef_open_shift,where:status = 'open'" json:"chef_id"`
	BusinessID uint  `gorm:"not null;index" json:"business_id"`
	GigID      *uint `gorm:"index" json:"gig_id,omitempty"`

	Status     string     `gorm:"not null;default:'open';index" json:"status"` // open, submitted, approved, disputed, void
	ClockInAt  time.Time  `gorm:"not null" json:"clock_in_at"`
	ClockOutAt *time.Time `json:"clock_out_at,omitempty"`
	Note       string     `json:"note,omitempty"` // set by the venue on approve/dispute/void

	Chef     ChefProfile     `gorm:"foreignKey:ChefID" json:"-"`
	Business BusinessProfile `gorm:"foreignKey:BusinessID" json:"-"`
	Gig      *Gig            `json:"-"`
}

// CheckinToken is a short-lived, single-use QR code for clocking in at a
// venue. Only the SHA-256 of the code is stored.
type CheckinToken struct {
	gorm.Model
	BusinessID uint   `gorm:"not null;index" json:"business_id"`
	TokenHash  string `gorm:"not null;uniqueIndex" json:"-"`

	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	UsedBy    *uint      `json:"used_by,omitempty"` // chef profile id

	Business BusinessProfile `gorm:"foreignKey:BusinessID" json:"-"`
}
