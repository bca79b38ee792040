package models

import "gorm.io/gorm"

// Review is left by either party after a completed gig. One review per
// (gig, reviewer), enforced by the unique index.
type Review struct {
	gorm.Model
	GigID       uint `gorm:"not null;uniqueIndex:uniq_gig_reviewer" json:"gig_id"`
	ReviewerID  uint `gorm:"not null;uniqueIndex:uniq_gig_reviewer" json:"reviewer_id"`
	RecipientID uint `gorm:"not null;index" json:"recipient_id"`

	Rating int `gorm:"not null" json:"rating"` // 1-5 overall

	// Category sub-ratings, 1-5, optional
	Professionalism int `json:"professionalism,omitempty"`
	Punctuality     int `json:"punctuality,omitempty"`
	Communication   int `json:"communication,omitempty"`

	Comment string `json:"comment"`

	Gig       Gig  `json:"-"`
	Reviewer  User `gorm:"foreignKey:ReviewerID" json:"-"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"-"`
}
