package store

import "chefly/models"

// CreateInvoice relies on the (gig_id, chef_id) unique index to reject a
// second invoice for the same gig; a duplicate surfaces as ErrConflict.
func (s *Store) CreateInvoice(inv *models.GigInvoice) error {
	inv.Total = inv.HoursWorked * inv.Rate
	return translate(s.db.Create(inv).Error)
}

func (s *Store) GetInvoice(id uint) (*models.GigInvoice, error) {
	var inv models.GigInvoice
	if err := s.db.First(&inv, id).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (s *Store) GetInvoiceByPaymentIntent(intentID string) (*models.GigInvoice, error) {
	var inv models.GigInvoice
	if err := s.db.Where("stripe_payment_intent_id = ?", intentID).First(&inv).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (s *Store) SaveInvoice(inv *models.GigInvoice) error {
	return translate(s.db.Save(inv).Error)
}

func (s *Store) MarkInvoicePaid(id uint) (*models.GigInvoice, error) {
	var inv models.GigInvoice
	if err := s.db.First(&inv, id).Error; err != nil {
		return nil, translate(err)
	}
	inv.Status = models.InvoicePaid
	if err := s.db.Save(&inv).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (s *Store) ListChefInvoices(chefID uint) ([]models.GigInvoice, error) {
	var invoices []models.GigInvoice
	err := s.db.Where("chef_id = ?", chefID).
		Order("created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, translate(err)
	}
	return invoices, nil
}

func (s *Store) ListBusinessInvoices(businessID uint) ([]models.GigInvoice, error) {
	var invoices []models.GigInvoice
	err := s.db.Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, translate(err)
	}
	return invoices, nil
}
