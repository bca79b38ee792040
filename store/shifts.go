package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"chefly/models"
)

// ClockIn opens a shift for a chef. With a gig, the chef must hold an
// accepted or confirmed application for it and the shift is attributed to
// the gig's venue; without one, the chef must be active staff at the
// venue. The partial unique index on open shifts backs up the "no open
// shift" check under concurrent requests.
func (s *Store) ClockIn(chefID, businessID uint, gigID *uint) (*models.WorkShift, error) {
	var shift *models.WorkShift
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		shift, err = clockIn(tx, chefID, businessID, gigID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

func clockIn(tx *gorm.DB, chefID, businessID uint, gigID *uint) (*models.WorkShift, error) {
	var open int64
	err := tx.Model(&models.WorkShift{}).
		Where("chef_id = ? AND status = ?", chefID, models.ShiftOpen).
		Count(&open).Error
	if err != nil {
		return nil, translate(err)
	}
	if open > 0 {
		return nil, fmt.Errorf("%w: chef already has an open shift", ErrConflict)
	}

	if gigID != nil {
		var gig models.Gig
		if err := tx.First(&gig, *gigID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if gig.BusinessID != businessID {
			return nil, fmt.Errorf("%w: gig belongs to another venue", ErrForbidden)
		}

		var app models.GigApplication
		err := tx.Where("gig_id = ? AND chef_id = ? AND status IN ?",
			*gigID, chefID, []string{models.ApplicationAccepted, models.ApplicationConfirmed}).
			First(&app).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: no accepted application for gig", ErrForbidden)
			}
			return nil, err
		}
	} else {
		var staff models.VenueStaff
		err := tx.Where("business_id = ? AND chef_id = ? AND is_active = ?",
			businessID, chefID, true).
			First(&staff).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: chef is not active staff at venue", ErrForbidden)
			}
			return nil, err
		}
	}

	shift := &models.WorkShift{
		ChefID:     chefID,
		BusinessID: businessID,
		GigID:      gigID,
		Status:     models.ShiftOpen,
		ClockInAt:  time.Now(),
	}
	if err := tx.Create(shift).Error; err != nil {
		return nil, translate(err)
	}
	return shift, nil
}

// ClockOut closes the chef's open shift: stamps the clock-out time and
// moves it to submitted for the venue to review.
func (s *Store) ClockOut(shiftID, chefID uint) (*models.WorkShift, error) {
	var shift models.WorkShift
	if err := s.db.First(&shift, shiftID).Error; err != nil {
		return nil, translate(err)
	}
	if shift.ChefID != chefID {
		return nil, fmt.Errorf("%w: shift belongs to another chef", ErrForbidden)
	}
	if shift.Status != models.ShiftOpen {
		return nil, fmt.Errorf("%w: shift is %s, not open", ErrInvalidState, shift.Status)
	}

	now := time.Now()
	shift.ClockOutAt = &now
	shift.Status = models.ShiftSubmitted
	if err := s.db.Save(&shift).Error; err != nil {
		return nil, translate(err)
	}
	return &shift, nil
}

// ResolveShift lets the venue move a submitted shift to approved or
// disputed. Void is an operator override allowed from any non-void state.
func (s *Store) ResolveShift(shiftID, businessID uint, status, note string) (*models.WorkShift, error) {
	var shift models.WorkShift
	if err := s.db.First(&shift, shiftID).Error; err != nil {
		return nil, translate(err)
	}
	if shift.BusinessID != businessID {
		return nil, fmt.Errorf("%w: shift belongs to another venue", ErrForbidden)
	}

	switch status {
	case models.ShiftApproved, models.ShiftDisputed:
		if shift.Status != models.ShiftSubmitted {
			return nil, fmt.Errorf("%w: shift is %s, not submitted", ErrInvalidState, shift.Status)
		}
	case models.ShiftVoid:
		if shift.Status == models.ShiftVoid {
			return nil, fmt.Errorf("%w: shift already void", ErrInvalidState)
		}
	default:
		return nil, fmt.Errorf("%w: cannot resolve shift to %q", ErrInvalidState, status)
	}

	shift.Status = status
	if note != "" {
		shift.Note = note
	}
	if err := s.db.Save(&shift).Error; err != nil {
		return nil, translate(err)
	}
	return &shift, nil
}

func (s *Store) ListShifts(f ShiftFilter) ([]models.WorkShift, error) {
	q := s.db.Model(&models.WorkShift{})
	if f.ChefID != 0 {
		q = q.Where("chef_id = ?", f.ChefID)
	}
	if f.BusinessID != 0 {
		q = q.Where("business_id = ?", f.BusinessID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("clock_in_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("clock_in_at <= ?", *f.To)
	}

	var shifts []models.WorkShift
	if err := q.Order("created_at DESC").Find(&shifts).Error; err != nil {
		return nil, translate(err)
	}
	return shifts, nil
}

// CreateCheckinToken issues a short-lived QR code for a venue. The plain
// code is returned once; only its hash is stored.
func (s *Store) CreateCheckinToken(businessID uint, ttl time.Duration) (string, *models.CheckinToken, error) {
	if _, err := s.GetBusinessProfile(businessID); err != nil {
		return "", nil, err
	}

	code := uuid.NewString()
	token := &models.CheckinToken{
		BusinessID: businessID,
		TokenHash:  hashToken(code),
		ExpiresAt:  time.Now().Add(ttl),
	}
	if err := s.db.Create(token).Error; err != nil {
		return "", nil, translate(err)
	}
	return code, token, nil
}

// ConsumeCheckinToken validates a QR code and clocks the chef in at the
// token's venue. Single use: a consumed or expired code is rejected.
// Consuming and clocking in share one transaction, so a failed clock-in
// rolls the used stamp back and the code stays valid for a retry.
func (s *Store) ConsumeCheckinToken(code string, chefID uint) (*models.WorkShift, error) {
	var shift *models.WorkShift

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var token models.CheckinToken
		if err := tx.Where("token_hash = ?", hashToken(code)).First(&token).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if token.UsedAt != nil {
			return fmt.Errorf("%w: checkin code already used", ErrInvalidState)
		}
		if time.Now().After(token.ExpiresAt) {
			return fmt.Errorf("%w: checkin code expired", ErrInvalidState)
		}

		now := time.Now()
		token.UsedAt = &now
		token.UsedBy = &chefID
		if err := tx.Save(&token).Error; err != nil {
			return err
		}

		var err error
		shift, err = clockIn(tx, chefID, token.BusinessID, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}
