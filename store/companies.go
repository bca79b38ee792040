package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"chefly/models"
)

// CreateCompany creates the company and its owner membership together.
func (s *Store) CreateCompany(c *models.Company, ownerUserID uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Create(&models.CompanyMember{
			CompanyID: c.ID,
			UserID:    ownerUserID,
			Role:      models.CompanyRoleOwner,
		}).Error
	}))
}

func (s *Store) GetCompany(id uint) (*models.Company, error) {
	var c models.Company
	if err := s.db.Preload("Members").First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) ListUserCompanies(userID uint) ([]models.Company, error) {
	var companies []models.Company
	err := s.db.
		Joins("JOIN company_members ON company_members.company_id = companies.id").
		Where("company_members.user_id = ? AND company_members.deleted_at IS NULL", userID).
		Order("companies.created_at DESC").
		Find(&companies).Error
	if err != nil {
		return nil, translate(err)
	}
	return companies, nil
}

func (s *Store) AddCompanyMember(m *models.CompanyMember) error {
	return translate(s.db.Create(m).Error)
}

// CanAccessCompany is the single authorization predicate used by every
// company handler. It distinguishes a missing company from an existing one
// the user may not touch, so handlers can answer 404 vs 403 consistently.
func (s *Store) CanAccessCompany(userID, companyID uint, roles ...string) (CompanyAccess, error) {
	var company models.Company
	if err := s.db.First(&company, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccessNotFound, nil
		}
		return AccessForbidden, err
	}

	var member models.CompanyMember
	err := s.db.Where("company_id = ? AND user_id = ?", companyID, userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccessForbidden, nil
		}
		return AccessForbidden, err
	}

	if len(roles) == 0 {
		return AccessAuthorized, nil
	}
	for _, role := range roles {
		if member.Role == role {
			return AccessAuthorized, nil
		}
	}
	return AccessForbidden, nil
}

func (s *Store) LinkBusiness(companyID, businessID uint) error {
	return translate(s.db.Create(&models.BusinessCompanyLink{
		CompanyID:  companyID,
		BusinessID: businessID,
	}).Error)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CreateInvite issues a single-use invite token. The plain token is
// returned exactly once; only its hash is stored.
func (s *Store) CreateInvite(businessID uint, email string, ttl time.Duration) (string, *models.BusinessCompanyInvite, error) {
	if _, err := s.GetBusinessProfile(businessID); err != nil {
		return "", nil, err
	}

	token := uuid.NewString()
	invite := &models.BusinessCompanyInvite{
		BusinessID: businessID,
		Email:      email,
		TokenHash:  hashToken(token),
		Status:     models.InvitePending,
		ExpiresAt:  time.Now().Add(ttl),
	}
	if err := s.db.Create(invite).Error; err != nil {
		return "", nil, translate(err)
	}
	return token, invite, nil
}

// VerifyInvite checks a token without consuming it. A token past its
// expiry comes back invalid and the row is flipped to expired.
func (s *Store) VerifyInvite(token string) (*InviteCheck, error) {
	var invite models.BusinessCompanyInvite
	err := s.db.Preload("Business").Where("token_hash = ?", hashToken(token)).First(&invite).Error
	if err != nil {
		return nil, translate(err)
	}

	if invite.Status != models.InvitePending {
		return &InviteCheck{Valid: false, Invite: &invite}, nil
	}
	if time.Now().After(invite.ExpiresAt) {
		invite.Status = models.InviteExpired
		if err := s.db.Save(&invite).Error; err != nil {
			return nil, translate(err)
		}
		return &InviteCheck{Valid: false, Invite: &invite}, nil
	}

	return &InviteCheck{
		Valid:        true,
		BusinessName: invite.Business.BusinessName,
		Invite:       &invite,
	}, nil
}

// AcceptInvite consumes a pending, unexpired token and links the inviting
// business to the accepting company. The expiry flip is saved before the
// consuming transaction runs, so a rolled-back accept never reverts it.
func (s *Store) AcceptInvite(token string, companyID uint) (*models.BusinessCompanyInvite, error) {
	var invite models.BusinessCompanyInvite
	if err := s.db.Where("token_hash = ?", hashToken(token)).First(&invite).Error; err != nil {
		return nil, translate(err)
	}
	if invite.Status != models.InvitePending {
		return nil, fmt.Errorf("%w: invite is %s", ErrInvalidState, invite.Status)
	}
	if time.Now().After(invite.ExpiresAt) {
		invite.Status = models.InviteExpired
		if err := s.db.Save(&invite).Error; err != nil {
			return nil, translate(err)
		}
		return nil, fmt.Errorf("%w: invite expired", ErrInvalidState)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		invite.Status = models.InviteAccepted
		invite.AcceptedAt = &now
		if err := tx.Save(&invite).Error; err != nil {
			return err
		}

		return tx.Create(&models.BusinessCompanyLink{
			CompanyID:  companyID,
			BusinessID: invite.BusinessID,
		}).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &invite, nil
}
