package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chefly/models"
)

func seedStaff(t *testing.T, s *Store, businessID, chefID uint) {
	t.Helper()
	require.NoError(t, s.db.Create(&models.VenueStaff{
		BusinessID: businessID,
		ChefID:     chefID,
		RoleTitle:  "line cook",
		IsActive:   true,
	}).Error)
}

func TestClockInWithAcceptedApplication(t *testing.T) {
	s := newTestStore(t)
	venue := seedVenue(t, s, "The Galley")
	gig := seedGig(t, s, venue.ID)
	chef := seedChef(t, s, "chef@example.com")
	seedApplication(t, s, gig.ID, chef.ID, models.ApplicationAccepted)

	shift, err := s.ClockIn(chef.ID, venue.ID, &gig.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShiftOpen, shift.Status)
	require.Equal(t, venue.ID, shift.BusinessID)
	require.NotNil(t, shift.GigID)
}

func TestClockInRejectsForeignVenueGig(t *testing.T) {
	s := newTestStore(t)
	venueA := seedVenue(t, s, "The Galley")
	venueB := seedVenue(t, s, "The Anchor")
	gig := seedGig(t, s, venueA.ID)
	chef := seedChef(t, s, "chef@example.com")
	seedApplication(t, s, gig.ID, chef.ID, models.ApplicationAccepted)

	_, err := s.ClockIn(chef.ID, venueB.ID, &gig.ID)
	require.ErrorIs(t, err, ErrForbidden)

	var shifts int64
	require.NoError(t, s.db.Model(&models.WorkShift{}).Count(&shifts).Error)
	require.Zero(t, shifts)
}

func TestClockInWithoutApplicationIsForbidden(t *testing.T) {
	s := newTestStore(t)
	venue := seedVenue(t, s, "The Galley")
	gig := seedGig(t, s, venue.ID)
	chef := seedChef(t, s, "chef@example.com")

	_, err := s.ClockIn(chef.ID, venue.ID, &gig.ID)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestClockInSecondOpenShiftIsConflict(t *testing.T) {
	s := newTestStore(t)
	venue := seedVenue(t, s, "The Galley")
	chef := seedChef(t, s, "chef@example.com")
	seedStaff(t, s, venue.ID, chef.ID)

	_, err := s.ClockIn(chef.ID, venue.ID, nil)
	require.NoError(t, err)

	_, err = s.ClockIn(chef.ID, venue.ID, nil)
	require.ErrorIs(t, err, ErrConflict)
}

func TestClockOutSubmitsShift(t *testing.T) {
	s := newTestStore(t)
	venue := seedVenue(t, s, "The Galley")
	chef := seedChef(t, s, "chef@example.com")
	seedStaff(t, s, venue.ID, chef.ID)

	shift, err := s.ClockIn(chef.ID, venue.ID, nil)
	require.NoError(t, err)

	closed, err := s.ClockOut(shift.ID, chef.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShiftSubmitted, closed.Status)
	require.NotNil(t, closed.ClockOutAt)
}

func TestConsumeCheckinTokenClocksIn(t *testing.T) {
	s := newTestStore(t)
	venue := seedVenue(t, s, "The Galley")
	chef := seedChef(t, s, "chef@example.com")
	seedStaff(t, s, venue.ID, chef.ID)

	code, token, err := s.CreateCheckinToken(venue.ID, 5*time.Minute)
	require.NoError(t, err)

	shift, err := s.ConsumeCheckinToken(code, chef.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShiftOpen, shift.Status)
	require.Equal(t, venue.ID, shift.BusinessID)

	var persisted models.CheckinToken
	require.NoError(t, s.db.First(&persisted, token.ID).Error)
	require.NotNil(t, persisted.UsedAt)
	require.Equal(t, chef.ID, *persisted.UsedBy)
}

func TestConsumeCheckinTokenKeepsCodeOnFailedClockIn(t *testing.T) {
	s := newTestStore(t)
	venue := seedVenue(t, s, "The Galley")
	chef := seedChef(t, s, "chef@example.com")
	seedStaff(t, s, venue.ID, chef.ID)

	open, err := s.ClockIn(chef.ID, venue.ID, nil)
	require.NoError(t, err)

	code, token, err := s.CreateCheckinToken(venue.ID, 5*time.Minute)
	require.NoError(t, err)

	_, err = s.ConsumeCheckinToken(code, chef.ID)
	require.ErrorIs(t, err, ErrConflict)

	// The failed clock-in must not burn the code.
	var persisted models.CheckinToken
	require.NoError(t, s.db.First(&persisted, token.ID).Error)
	require.Nil(t, persisted.UsedAt)

	_, err = s.ClockOut(open.ID, chef.ID)
	require.NoError(t, err)

	shift, err := s.ConsumeCheckinToken(code, chef.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShiftOpen, shift.Status)
}

func TestConsumeCheckinTokenIsSingleUse(t *testing.T) {
	s := newTestStore(t)
	venue := seedVenue(t, s, "The Galley")
	chef := seedChef(t, s, "chef@example.com")
	other := seedChef(t, s, "other@example.com")
	seedStaff(t, s, venue.ID, chef.ID)
	seedStaff(t, s, venue.ID, other.ID)

	code, _, err := s.CreateCheckinToken(venue.ID, 5*time.Minute)
	require.NoError(t, err)

	_, err = s.ConsumeCheckinToken(code, chef.ID)
	require.NoError(t, err)

	_, err = s.ConsumeCheckinToken(code, other.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestConsumeCheckinTokenExpired(t *testing.T) {
	s := newTestStore(t)
	venue := seedVenue(t, s, "The Galley")
	chef := seedChef(t, s, "chef@example.com")
	seedStaff(t, s, venue.ID, chef.ID)

	code, _, err := s.CreateCheckinToken(venue.ID, -time.Minute)
	require.NoError(t, err)

	_, err = s.ConsumeCheckinToken(code, chef.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}
