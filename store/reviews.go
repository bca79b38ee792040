package store

import "chefly/models"

// CreateReview relies on the (gig_id, reviewer_id) unique index; a second
// review from the same reviewer for the same gig comes back as ErrConflict.
func (s *Store) CreateReview(r *models.Review) error {
	return translate(s.db.Create(r).Error)
}

func (s *Store) ListReviewsForUser(recipientID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

func (s *Store) ListReviewsForGig(gigID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("gig_id = ?", gigID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}
