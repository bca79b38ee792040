package store

import (
	"time"

	"chefly/models"
)

func (s *Store) CreateNotification(n *models.Notification) error {
	return translate(s.db.Create(n).Error)
}

func (s *Store) ListNotifications(userID uint, unreadOnly bool) ([]models.Notification, error) {
	q := s.db.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := q.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, translate(err)
	}
	return notifications, nil
}

func (s *Store) MarkNotificationRead(id, userID uint) (*models.Notification, error) {
	var n models.Notification
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return nil, translate(err)
	}
	now := time.Now()
	n.IsRead = true
	n.ReadAt = &now
	if err := s.db.Save(&n).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

// GetNotificationPreferences returns the user's toggles, falling back to
// an all-enabled default when the user never saved any.
func (s *Store) GetNotificationPreferences(userID uint) (*models.NotificationPreference, error) {
	var p models.NotificationPreference
	err := s.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return &models.NotificationPreference{
				UserID:        userID,
				InAppEnabled:  true,
				EmailEnabled:  true,
				OnApplication: true,
				OnAcceptance:  true,
				OnConfirm:     true,
				OnInvoice:     true,
				OnReview:      true,
				OnShift:       true,
			}, nil
		}
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) UpdateNotificationPreferences(p *models.NotificationPreference) error {
	var existing models.NotificationPreference
	err := s.db.Where("user_id = ?", p.UserID).First(&existing).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return translate(s.db.Create(p).Error)
		}
		return translate(err)
	}
	p.ID = existing.ID
	return translate(s.db.Save(p).Error)
}
