package store

import "chefly/models"

func (s *Store) CreateGig(g *models.Gig) error {
	return translate(s.db.Create(g).Error)
}

func (s *Store) GetGig(id uint) (*models.Gig, error) {
	var g models.Gig
	if err := s.db.First(&g, id).Error; err != nil {
		return nil, translate(err)
	}
	return &g, nil
}

func (s *Store) UpdateGig(g *models.Gig) error {
	return translate(s.db.Save(g).Error)
}

// ListGigs returns gigs newest-first, optionally narrowed by location, role
// and time range.
func (s *Store) ListGigs(f GigFilter) ([]models.Gig, error) {
	q := s.db.Model(&models.Gig{})
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.From != nil {
		q = q.Where("starts_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("starts_at <= ?", *f.To)
	}

	var gigs []models.Gig
	if err := q.Order("created_at DESC").Find(&gigs).Error; err != nil {
		return nil, translate(err)
	}
	return gigs, nil
}

func (s *Store) ListBusinessGigs(businessID uint) ([]models.Gig, error) {
	var gigs []models.Gig
	err := s.db.Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&gigs).Error
	if err != nil {
		return nil, translate(err)
	}
	return gigs, nil
}
