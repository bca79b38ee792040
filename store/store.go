package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"chefly/models"
)

// Sentinel errors. Controllers map these to HTTP statuses in one place.
var (
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrForbidden    = errors.New("forbidden")
)

// GigFilter narrows ListGigs. Zero values mean "no filter".
type GigFilter struct {
	Location   string
	Role       string
	From       *time.Time
	To         *time.Time
	ActiveOnly bool
}

// ShiftFilter narrows ListShifts.
type ShiftFilter struct {
	ChefID     uint
	BusinessID uint
	Status     string
	From       *time.Time
	To         *time.Time
}

// CompanyAccess is the tagged result of the company authorization check.
type CompanyAccess int

const (
	AccessAuthorized CompanyAccess = iota
	AccessForbidden
	AccessNotFound
)

// InviteCheck is the result of verifying a company invite token.
type InviteCheck struct {
	Valid        bool                          `json:"valid"`
	BusinessName string                        `json:"business_name,omitempty"`
	Invite       *models.BusinessCompanyInvite `json:"-"`
}

// Storer is the data-access layer; the only code path that issues database
// statements. Controllers depend on this interface so tests can substitute
// a mock.
type Storer interface {
	// Users
	GetUser(id uint) (*models.User, error)
	SaveUser(u *models.User) error

	// Profiles
	CreateChefProfile(p *models.ChefProfile) error
	GetChefProfile(id uint) (*models.ChefProfile, error)
	GetChefProfileByUserID(userID uint) (*models.ChefProfile, error)
	UpdateChefProfile(p *models.ChefProfile) error
	CreateBusinessProfile(p *models.BusinessProfile) error
	GetBusinessProfile(id uint) (*models.BusinessProfile, error)
	GetBusinessProfileByUserID(userID uint) (*models.BusinessProfile, error)
	UpdateBusinessProfile(p *models.BusinessProfile) error

	// Gigs
	CreateGig(g *models.Gig) error
	GetGig(id uint) (*models.Gig, error)
	UpdateGig(g *models.Gig) error
	ListGigs(f GigFilter) ([]models.Gig, error)
	ListBusinessGigs(businessID uint) ([]models.Gig, error)

	// Applications
	ApplyToGig(app *models.GigApplication) error
	GetApplication(id uint) (*models.GigApplication, error)
	ListApplicationsForGig(gigID uint) ([]models.GigApplication, error)
	ListChefApplications(chefID uint) ([]models.GigApplication, error)
	SetApplicationStatus(id uint, status string) (*models.GigApplication, error)
	AcceptChefForGig(appID, gigID uint) (*models.GigApplication, int64, error)
	ConfirmGigApplication(appID uint) (*models.GigApplication, *models.Gig, error)

	// Invoices
	CreateInvoice(inv *models.GigInvoice) error
	GetInvoice(id uint) (*models.GigInvoice, error)
	GetInvoiceByPaymentIntent(intentID string) (*models.GigInvoice, error)
	SaveInvoice(inv *models.GigInvoice) error
	MarkInvoicePaid(id uint) (*models.GigInvoice, error)
	ListChefInvoices(chefID uint) ([]models.GigInvoice, error)
	ListBusinessInvoices(businessID uint) ([]models.GigInvoice, error)

	// Reviews
	CreateReview(r *models.Review) error
	ListReviewsForUser(recipientID uint) ([]models.Review, error)
	ListReviewsForGig(gigID uint) ([]models.Review, error)

	// Notifications
	CreateNotification(n *models.Notification) error
	ListNotifications(userID uint, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(id, userID uint) (*models.Notification, error)
	GetNotificationPreferences(userID uint) (*models.NotificationPreference, error)
	UpdateNotificationPreferences(p *models.NotificationPreference) error

	// Companies
	CreateCompany(c *models.Company, ownerUserID uint) error
	GetCompany(id uint) (*models.Company, error)
	ListUserCompanies(userID uint) ([]models.Company, error)
	AddCompanyMember(m *models.CompanyMember) error
	CanAccessCompany(userID, companyID uint, roles ...string) (CompanyAccess, error)
	LinkBusiness(companyID, businessID uint) error
	CreateInvite(businessID uint, email string, ttl time.Duration) (string, *models.BusinessCompanyInvite, error)
	VerifyInvite(token string) (*InviteCheck, error)
	AcceptInvite(token string, companyID uint) (*models.BusinessCompanyInvite, error)

	// Shifts
	ClockIn(chefID, businessID uint, gigID *uint) (*models.WorkShift, error)
	ClockOut(shiftID, chefID uint) (*models.WorkShift, error)
	ResolveShift(shiftID, businessID uint, status, note string) (*models.WorkShift, error)
	ListShifts(f ShiftFilter) ([]models.WorkShift, error)
	CreateCheckinToken(businessID uint, ttl time.Duration) (string, *models.CheckinToken, error)
	ConsumeCheckinToken(code string, chefID uint) (*models.WorkShift, error)
}

// Store implements Storer on top of GORM.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

var _ Storer = (*Store)(nil)

// translate maps driver-level errors onto the store's sentinels. Unique
// index violations become ErrConflict, which is how the check-then-act
// races around invoices, reviews, applications and open shifts are closed.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) SaveUser(u *models.User) error {
	return translate(s.db.Save(u).Error)
}
