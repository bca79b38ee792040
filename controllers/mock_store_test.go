package controller_test

import (
	"time"

	"chefly/models"
	"chefly/store"
)

// MockStore implements store.Storer. Tests override the func fields they
// care about; everything else answers not-found or an empty list.
type MockStore struct {
	GetUserFunc                    func(id uint) (*models.User, error)
	GetChefProfileFunc             func(id uint) (*models.ChefProfile, error)
	GetChefProfileByUserIDFunc     func(userID uint) (*models.ChefProfile, error)
	GetBusinessProfileFunc         func(id uint) (*models.BusinessProfile, error)
	GetBusinessProfileByUserIDFunc func(userID uint) (*models.BusinessProfile, error)
	GetGigFunc                     func(id uint) (*models.Gig, error)
	ApplyToGigFunc                 func(app *models.GigApplication) error
	GetApplicationFunc             func(id uint) (*models.GigApplication, error)
	ListChefApplicationsFunc       func(chefID uint) ([]models.GigApplication, error)
	SetApplicationStatusFunc       func(id uint, status string) (*models.GigApplication, error)
	AcceptChefForGigFunc           func(appID, gigID uint) (*models.GigApplication, int64, error)
	ConfirmGigApplicationFunc      func(appID uint) (*models.GigApplication, *models.Gig, error)
	CreateInvoiceFunc              func(inv *models.GigInvoice) error
	CreateReviewFunc               func(r *models.Review) error
	CreateNotificationFunc         func(n *models.Notification) error
	GetNotificationPreferencesFunc func(userID uint) (*models.NotificationPreference, error)
	CanAccessCompanyFunc           func(userID, companyID uint, roles ...string) (store.CompanyAccess, error)
	GetCompanyFunc                 func(id uint) (*models.Company, error)
	CreateInviteFunc               func(businessID uint, email string, ttl time.Duration) (string, *models.BusinessCompanyInvite, error)
	VerifyInviteFunc               func(token string) (*store.InviteCheck, error)
	ClockInFunc                    func(chefID, businessID uint, gigID *uint) (*models.WorkShift, error)
	ClockOutFunc                   func(shiftID, chefID uint) (*models.WorkShift, error)
	ResolveShiftFunc               func(shiftID, businessID uint, status, note string) (*models.WorkShift, error)
	ConsumeCheckinTokenFunc        func(code string, chefID uint) (*models.WorkShift, error)
}

var _ store.Storer = (*MockStore)(nil)

func (m *MockStore) GetUser(id uint) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(id)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) SaveUser(u *models.User) error { return nil }

func (m *MockStore) CreateChefProfile(p *models.ChefProfile) error { return nil }

func (m *MockStore) GetChefProfile(id uint) (*models.ChefProfile, error) {
	if m.GetChefProfileFunc != nil {
		return m.GetChefProfileFunc(id)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) GetChefProfileByUserID(userID uint) (*models.ChefProfile, error) {
	if m.GetChefProfileByUserIDFunc != nil {
		return m.GetChefProfileByUserIDFunc(userID)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) UpdateChefProfile(p *models.ChefProfile) error { return nil }

func (m *MockStore) CreateBusinessProfile(p *models.BusinessProfile) error { return nil }

func (m *MockStore) GetBusinessProfile(id uint) (*models.BusinessProfile, error) {
	if m.GetBusinessProfileFunc != nil {
		return m.GetBusinessProfileFunc(id)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) GetBusinessProfileByUserID(userID uint) (*models.BusinessProfile, error) {
	if m.GetBusinessProfileByUserIDFunc != nil {
		return m.GetBusinessProfileByUserIDFunc(userID)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) UpdateBusinessProfile(p *models.BusinessProfile) error { return nil }

func (m *MockStore) CreateGig(g *models.Gig) error { return nil }

func (m *MockStore) GetGig(id uint) (*models.Gig, error) {
	if m.GetGigFunc != nil {
		return m.GetGigFunc(id)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) UpdateGig(g *models.Gig) error { return nil }

func (m *MockStore) ListGigs(f store.GigFilter) ([]models.Gig, error) { return nil, nil }

func (m *MockStore) ListBusinessGigs(businessID uint) ([]models.Gig, error) { return nil, nil }

func (m *MockStore) ApplyToGig(app *models.GigApplication) error {
	if m.ApplyToGigFunc != nil {
		return m.ApplyToGigFunc(app)
	}
	return nil
}

func (m *MockStore) GetApplication(id uint) (*models.GigApplication, error) {
	if m.GetApplicationFunc != nil {
		return m.GetApplicationFunc(id)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) ListApplicationsForGig(gigID uint) ([]models.GigApplication, error) {
	return nil, nil
}

func (m *MockStore) ListChefApplications(chefID uint) ([]models.GigApplication, error) {
	if m.ListChefApplicationsFunc != nil {
		return m.ListChefApplicationsFunc(chefID)
	}
	return nil, nil
}

func (m *MockStore) SetApplicationStatus(id uint, status string) (*models.GigApplication, error) {
	if m.SetApplicationStatusFunc != nil {
		return m.SetApplicationStatusFunc(id, status)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) AcceptChefForGig(appID, gigID uint) (*models.GigApplication, int64, error) {
	if m.AcceptChefForGigFunc != nil {
		return m.AcceptChefForGigFunc(appID, gigID)
	}
	return nil, 0, store.ErrNotFound
}

func (m *MockStore) ConfirmGigApplication(appID uint) (*models.GigApplication, *models.Gig, error) {
	if m.ConfirmGigApplicationFunc != nil {
		return m.ConfirmGigApplicationFunc(appID)
	}
	return nil, nil, store.ErrNotFound
}

func (m *MockStore) CreateInvoice(inv *models.GigInvoice) error {
	if m.CreateInvoiceFunc != nil {
		return m.CreateInvoiceFunc(inv)
	}
	return nil
}

func (m *MockStore) GetInvoice(id uint) (*models.GigInvoice, error) { return nil, store.ErrNotFound }

func (m *MockStore) GetInvoiceByPaymentIntent(intentID string) (*models.GigInvoice, error) {
	return nil, store.ErrNotFound
}

func (m *MockStore) SaveInvoice(inv *models.GigInvoice) error { return nil }

func (m *MockStore) MarkInvoicePaid(id uint) (*models.GigInvoice, error) {
	return nil, store.ErrNotFound
}

func (m *MockStore) ListChefInvoices(chefID uint) ([]models.GigInvoice, error) { return nil, nil }

func (m *MockStore) ListBusinessInvoices(businessID uint) ([]models.GigInvoice, error) {
	return nil, nil
}

func (m *MockStore) CreateReview(r *models.Review) error {
	if m.CreateReviewFunc != nil {
		return m.CreateReviewFunc(r)
	}
	return nil
}

func (m *MockStore) ListReviewsForUser(recipientID uint) ([]models.Review, error) { return nil, nil }

func (m *MockStore) ListReviewsForGig(gigID uint) ([]models.Review, error) { return nil, nil }

func (m *MockStore) CreateNotification(n *models.Notification) error {
	if m.CreateNotificationFunc != nil {
		return m.CreateNotificationFunc(n)
	}
	return nil
}

func (m *MockStore) ListNotifications(userID uint, unreadOnly bool) ([]models.Notification, error) {
	return nil, nil
}

func (m *MockStore) MarkNotificationRead(id, userID uint) (*models.Notification, error) {
	return nil, store.ErrNotFound
}

func (m *MockStore) GetNotificationPreferences(userID uint) (*models.NotificationPreference, error) {
	if m.GetNotificationPreferencesFunc != nil {
		return m.GetNotificationPreferencesFunc(userID)
	}
	return &models.NotificationPreference{
		UserID: userID, InAppEnabled: true, EmailEnabled: false,
		OnApplication: true, OnAcceptance: true, OnConfirm: true,
		OnInvoice: true, OnReview: true, OnShift: true,
	}, nil
}

func (m *MockStore) UpdateNotificationPreferences(p *models.NotificationPreference) error {
	return nil
}

func (m *MockStore) CreateCompany(c *models.Company, ownerUserID uint) error { return nil }

func (m *MockStore) GetCompany(id uint) (*models.Company, error) {
	if m.GetCompanyFunc != nil {
		return m.GetCompanyFunc(id)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) ListUserCompanies(userID uint) ([]models.Company, error) { return nil, nil }

func (m *MockStore) AddCompanyMember(mem *models.CompanyMember) error { return nil }

func (m *MockStore) CanAccessCompany(userID, companyID uint, roles ...string) (store.CompanyAccess, error) {
	if m.CanAccessCompanyFunc != nil {
		return m.CanAccessCompanyFunc(userID, companyID, roles...)
	}
	return store.AccessNotFound, nil
}

func (m *MockStore) LinkBusiness(companyID, businessID uint) error { return nil }

func (m *MockStore) CreateInvite(businessID uint, email string, ttl time.Duration) (string, *models.BusinessCompanyInvite, error) {
	if m.CreateInviteFunc != nil {
		return m.CreateInviteFunc(businessID, email, ttl)
	}
	return "", nil, store.ErrNotFound
}

func (m *MockStore) VerifyInvite(token string) (*store.InviteCheck, error) {
	if m.VerifyInviteFunc != nil {
		return m.VerifyInviteFunc(token)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) AcceptInvite(token string, companyID uint) (*models.BusinessCompanyInvite, error) {
	return nil, store.ErrNotFound
}

func (m *MockStore) ClockIn(chefID, businessID uint, gigID *uint) (*models.WorkShift, error) {
	if m.ClockInFunc != nil {
		return m.ClockInFunc(chefID, businessID, gigID)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) ClockOut(shiftID, chefID uint) (*models.WorkShift, error) {
	if m.ClockOutFunc != nil {
		return m.ClockOutFunc(shiftID, chefID)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) ResolveShift(shiftID, businessID uint, status, note string) (*models.WorkShift, error) {
	if m.ResolveShiftFunc != nil {
		return m.ResolveShiftFunc(shiftID, businessID, status, note)
	}
	return nil, store.ErrNotFound
}

func (m *MockStore) ListShifts(f store.ShiftFilter) ([]models.WorkShift, error) { return nil, nil }

func (m *MockStore) CreateCheckinToken(businessID uint, ttl time.Duration) (string, *models.CheckinToken, error) {
	return "", nil, store.ErrNotFound
}

func (m *MockStore) ConsumeCheckinToken(code string, chefID uint) (*models.WorkShift, error) {
	if m.ConsumeCheckinTokenFunc != nil {
		return m.ConsumeCheckinTokenFunc(code, chefID)
	}
	return nil, store.ErrNotFound
}
