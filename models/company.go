package models

import (
	"time"

	"gorm.io/gorm"
)

// Company member roles
const (
	CompanyRoleOwner   = "owner"
	CompanyRoleAdmin   = "admin"
	CompanyRoleFinance = "finance"
	CompanyRoleViewer  = "viewer"
)

// Invite statuses
const (
	InvitePending  = "pending"
	InviteAccepted = "accepted"
	InviteExpired  = "expired"
	InviteRevoked  = "revoked"
)

// Company groups multiple business venues under role-based membership.
type Company struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	Members []CompanyMember       `gorm:"foreignKey:CompanyID" json:"members,omitempty"`
	Links   []BusinessCompanyLink `gorm:"foreignKey:CompanyID" json:"-"`
}

// CompanyMember ties a user to a company with a role.
type CompanyMember struct {
	gorm.Model
	CompanyID uint `gorm:"not null;uniqueIndex:uniq_company_member" json:"company_id"`
	UserID    uint `gorm:"not null;uniqueIndex:uniq_company_member" json:"user_id"`

	Role string `gorm:"not null;default:'viewer'" json:"role"` // owner, admin, finance, viewer

	Company Company `json:"-"`
	User    User    `json:"-"`
}

// BusinessCompanyLink attaches a business venue to its managing company.
type BusinessCompanyLink struct {
	gorm.Model
	CompanyID  uint `gorm:"not null;uniqueIndex:uniq_company_business" json:"company_id"`
	BusinessID uint `gorm:"not null;uniqueIndex:uniq_company_business" json:"business_id"`

	Company  Company         `json:"-"`
	Business BusinessProfile `gorm:"foreignKey:BusinessID" json:"-"`
}

// BusinessCompanyInvite is a single-use, expiring invitation from a business
// to a company contact. Only the token's hash is stored; the plain token is
// returned once at creation time.
type BusinessCompanyInvite struct {
	gorm.Model
	BusinessID uint   `gorm:"not null;index" json:"business_id"`
	Email      string `gorm:"not null;index" json:"email"`
	TokenHash  string `gorm:"not null;uniqueIndex" json:"-"`

	Status     string     `gorm:"not null;default:'pending'" json:"status"` // pending, accepted, expired, revoked
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`

	Business BusinessProfile `gorm:"foreignKey:BusinessID" json:"-"`
}
