package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chefly/models"
)

func (s *Store) ApplyToGig(app *models.GigApplication) error {
	return translate(s.db.Create(app).Error)
}

func (s *Store) GetApplication(id uint) (*models.GigApplication, error) {
	var app models.GigApplication
	if err := s.db.First(&app, id).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (s *Store) ListApplicationsForGig(gigID uint) ([]models.GigApplication, error) {
	var apps []models.GigApplication
	err := s.db.Where("gig_id = ?", gigID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, translate(err)
	}
	return apps, nil
}

func (s *Store) ListChefApplications(chefID uint) ([]models.GigApplication, error) {
	var apps []models.GigApplication
	err := s.db.Where("chef_id = ?", chefID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, translate(err)
	}
	return apps, nil
}

// SetApplicationStatus moves a single application to shortlisted or
// rejected. Accepted and confirmed go through their dedicated workflows;
// rejected is terminal.
func (s *Store) SetApplicationStatus(id uint, status string) (*models.GigApplication, error) {
	if status != models.ApplicationShortlisted && status != models.ApplicationRejected {
		return nil, fmt.Errorf("%w: cannot set status %q directly", ErrInvalidState, status)
	}

	var app models.GigApplication
	if err := s.db.First(&app, id).Error; err != nil {
		return nil, translate(err)
	}
	if app.Status == models.ApplicationRejected ||
		app.Status == models.ApplicationAccepted ||
		app.Status == models.ApplicationConfirmed {
		return nil, fmt.Errorf("%w: application is %s", ErrInvalidState, app.Status)
	}

	app.Status = status
	if err := s.db.Save(&app).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

// AcceptChefForGig accepts one application and rejects every other
// non-rejected application for the same gig, as a single transaction.
// Either both updates land or neither is visible.
func (s *Store) AcceptChefForGig(appID, gigID uint) (*models.GigApplication, int64, error) {
	var app models.GigApplication
	var rejected int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&app, appID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if app.GigID != gigID {
			return ErrNotFound
		}
		if app.Status != models.ApplicationApplied && app.Status != models.ApplicationShortlisted {
			return fmt.Errorf("%w: application is %s", ErrInvalidState, app.Status)
		}

		app.Status = models.ApplicationAccepted
		if err := tx.Save(&app).Error; err != nil {
			return err
		}

		res := tx.Model(&models.GigApplication{}).
			Where("gig_id = ? AND id <> ? AND status <> ?", gigID, app.ID, models.ApplicationRejected).
			Update("status", models.ApplicationRejected)
		if res.Error != nil {
			return res.Error
		}
		rejected = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &app, rejected, nil
}

// ConfirmGigApplication is the chef's final acceptance. It flips the
// application to confirmed and books the parent gig in one transaction.
// Notifying the business happens after commit, in the caller.
func (s *Store) ConfirmGigApplication(appID uint) (*models.GigApplication, *models.Gig, error) {
	var app models.GigApplication
	var gig models.Gig

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&app, appID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if app.Confirmed {
			return fmt.Errorf("%w: application already confirmed", ErrInvalidState)
		}
		if app.Status != models.ApplicationAccepted {
			return fmt.Errorf("%w: application is %s, not accepted", ErrInvalidState, app.Status)
		}

		app.Status = models.ApplicationConfirmed
		app.Confirmed = true
		if err := tx.Save(&app).Error; err != nil {
			return err
		}

		if err := tx.First(&gig, app.GigID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		gig.IsBooked = true
		return tx.Save(&gig).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &app, &gig, nil
}
