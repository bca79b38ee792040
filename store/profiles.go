package store

import "chefly/models"

func (s *Store) CreateChefProfile(p *models.ChefProfile) error {
	return translate(s.db.Create(p).Error)
}

func (s *Store) GetChefProfile(id uint) (*models.ChefProfile, error) {
	var p models.ChefProfile
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) GetChefProfileByUserID(userID uint) (*models.ChefProfile, error) {
	var p models.ChefProfile
	if err := s.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) UpdateChefProfile(p *models.ChefProfile) error {
	return translate(s.db.Save(p).Error)
}

func (s *Store) CreateBusinessProfile(p *models.BusinessProfile) error {
	return translate(s.db.Create(p).Error)
}

func (s *Store) GetBusinessProfile(id uint) (*models.BusinessProfile, error) {
	var p models.BusinessProfile
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) GetBusinessProfileByUserID(userID uint) (*models.BusinessProfile, error) {
	var p models.BusinessProfile
	if err := s.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) UpdateBusinessProfile(p *models.BusinessProfile) error {
	return translate(s.db.Save(p).Error)
}
