package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	controller "chefly/controllers"
	"chefly/models"
	"chefly/store"
)

func chefProfile(id, userID uint) *models.ChefProfile {
	return &models.ChefProfile{Model: gormModel(id), UserID: userID, DisplayName: "Sam Cook"}
}

func businessProfile(id, userID uint) *models.BusinessProfile {
	return &models.BusinessProfile{Model: gormModel(id), UserID: userID, BusinessName: "The Copper Pot"}
}

func TestApplyCreatesApplication(t *testing.T) {
	mock := &MockStore{
		GetChefProfileByUserIDFunc: func(userID uint) (*models.ChefProfile, error) {
			return chefProfile(7, userID), nil
		},
		GetGigFunc: func(id uint) (*models.Gig, error) {
			return &models.Gig{Model: gormModel(id), BusinessID: 3, Title: "Friday service", IsActive: true}, nil
		},
		GetBusinessProfileFunc: func(id uint) (*models.BusinessProfile, error) {
			return businessProfile(id, 42), nil
		},
	}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(chefUser(1), http.MethodPost, "/api/gigs/apply", ac.Apply)

	resp := doJSON(t, app, http.MethodPost, "/api/gigs/apply", map[string]interface{}{
		"gig_id":  5,
		"message": "Available all evening",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, models.ApplicationApplied, body["status"])
}

func TestApplyValidationFailureListsFields(t *testing.T) {
	mock := &MockStore{
		GetChefProfileByUserIDFunc: func(userID uint) (*models.ChefProfile, error) {
			return chefProfile(7, userID), nil
		},
	}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(chefUser(1), http.MethodPost, "/api/gigs/apply", ac.Apply)

	resp := doJSON(t, app, http.MethodPost, "/api/gigs/apply", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Contains(t, body, "details")
}

func TestApplyDuplicateIsConflict(t *testing.T) {
	mock := &MockStore{
		GetChefProfileByUserIDFunc: func(userID uint) (*models.ChefProfile, error) {
			return chefProfile(7, userID), nil
		},
		GetGigFunc: func(id uint) (*models.Gig, error) {
			return &models.Gig{Model: gormModel(id), BusinessID: 3, Title: "Friday service", IsActive: true}, nil
		},
		ApplyToGigFunc: func(app *models.GigApplication) error {
			return store.ErrConflict
		},
	}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(chefUser(1), http.MethodPost, "/api/gigs/apply", ac.Apply)

	resp := doJSON(t, app, http.MethodPost, "/api/gigs/apply", map[string]interface{}{"gig_id": 5})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAcceptReturnsRejectedCount(t *testing.T) {
	var acceptedID, acceptedGig uint
	mock := &MockStore{
		GetApplicationFunc: func(id uint) (*models.GigApplication, error) {
			return &models.GigApplication{Model: gormModel(id), GigID: 5, ChefID: 7, Status: models.ApplicationApplied}, nil
		},
		GetBusinessProfileByUserIDFunc: func(userID uint) (*models.BusinessProfile, error) {
			return businessProfile(3, userID), nil
		},
		GetGigFunc: func(id uint) (*models.Gig, error) {
			return &models.Gig{Model: gormModel(id), BusinessID: 3, Title: "Friday service", IsActive: true}, nil
		},
		AcceptChefForGigFunc: func(appID, gigID uint) (*models.GigApplication, int64, error) {
			acceptedID, acceptedGig = appID, gigID
			return &models.GigApplication{Model: gormModel(appID), GigID: gigID, ChefID: 7, Status: models.ApplicationAccepted}, 2, nil
		},
		GetChefProfileFunc: func(id uint) (*models.ChefProfile, error) {
			return chefProfile(id, 99), nil
		},
	}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(businessUser(2), http.MethodPut, "/api/applications/:id/accept", ac.Accept)

	resp := doJSON(t, app, http.MethodPut, "/api/applications/9/accept", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.EqualValues(t, 2, body["rejectedCount"])
	require.EqualValues(t, 9, acceptedID)
	require.EqualValues(t, 5, acceptedGig)

	accepted := body["acceptedApplication"].(map[string]interface{})
	require.Equal(t, models.ApplicationAccepted, accepted["status"])
}

func TestAcceptMissingApplicationIs404(t *testing.T) {
	mock := &MockStore{}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(businessUser(2), http.MethodPut, "/api/applications/:id/accept", ac.Accept)

	resp := doJSON(t, app, http.MethodPut, "/api/applications/9/accept", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAcceptAlreadyAcceptedIs400(t *testing.T) {
	mock := &MockStore{
		GetApplicationFunc: func(id uint) (*models.GigApplication, error) {
			return &models.GigApplication{Model: gormModel(id), GigID: 5, Status: models.ApplicationAccepted}, nil
		},
		GetBusinessProfileByUserIDFunc: func(userID uint) (*models.BusinessProfile, error) {
			return businessProfile(3, userID), nil
		},
		GetGigFunc: func(id uint) (*models.Gig, error) {
			return &models.Gig{Model: gormModel(id), BusinessID: 3}, nil
		},
		AcceptChefForGigFunc: func(appID, gigID uint) (*models.GigApplication, int64, error) {
			return nil, 0, fmt.Errorf("%w: application is accepted", store.ErrInvalidState)
		},
	}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(businessUser(2), http.MethodPut, "/api/applications/:id/accept", ac.Accept)

	resp := doJSON(t, app, http.MethodPut, "/api/applications/9/accept", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAcceptForeignGigIs403(t *testing.T) {
	mock := &MockStore{
		GetApplicationFunc: func(id uint) (*models.GigApplication, error) {
			return &models.GigApplication{Model: gormModel(id), GigID: 5, Status: models.ApplicationApplied}, nil
		},
		GetBusinessProfileByUserIDFunc: func(userID uint) (*models.BusinessProfile, error) {
			return businessProfile(3, userID), nil
		},
		GetGigFunc: func(id uint) (*models.Gig, error) {
			return &models.Gig{Model: gormModel(id), BusinessID: 99}, nil
		},
	}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(businessUser(2), http.MethodPut, "/api/applications/:id/accept", ac.Accept)

	resp := doJSON(t, app, http.MethodPut, "/api/applications/9/accept", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestConfirmBooksGigAndNotifiesBusiness(t *testing.T) {
	var notified []models.Notification
	mock := &MockStore{
		GetChefProfileByUserIDFunc: func(userID uint) (*models.ChefProfile, error) {
			return chefProfile(7, userID), nil
		},
		GetApplicationFunc: func(id uint) (*models.GigApplication, error) {
			return &models.GigApplication{Model: gormModel(id), GigID: 5, ChefID: 7, Status: models.ApplicationAccepted}, nil
		},
		ConfirmGigApplicationFunc: func(appID uint) (*models.GigApplication, *models.Gig, error) {
			app := &models.GigApplication{Model: gormModel(appID), GigID: 5, ChefID: 7, Status: models.ApplicationConfirmed, Confirmed: true}
			gig := &models.Gig{Model: gormModel(5), BusinessID: 3, Title: "Friday service", IsBooked: true}
			return app, gig, nil
		},
		GetBusinessProfileFunc: func(id uint) (*models.BusinessProfile, error) {
			return businessProfile(id, 42), nil
		},
		CreateNotificationFunc: func(n *models.Notification) error {
			notified = append(notified, *n)
			return nil
		},
	}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(chefUser(1), http.MethodPut, "/api/applications/:id/confirm", ac.Confirm)

	resp := doJSON(t, app, http.MethodPut, "/api/applications/9/confirm", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, models.ApplicationConfirmed, body["status"])
	require.Equal(t, true, body["confirmed"])

	require.Len(t, notified, 1)
	require.Equal(t, models.EventGigConfirmed, notified[0].Type)
	require.EqualValues(t, 42, notified[0].UserID)
}

func TestConfirmAlreadyConfirmedIs400(t *testing.T) {
	mock := &MockStore{
		GetChefProfileByUserIDFunc: func(userID uint) (*models.ChefProfile, error) {
			return chefProfile(7, userID), nil
		},
		GetApplicationFunc: func(id uint) (*models.GigApplication, error) {
			return &models.GigApplication{Model: gormModel(id), GigID: 5, ChefID: 7, Status: models.ApplicationConfirmed, Confirmed: true}, nil
		},
		ConfirmGigApplicationFunc: func(appID uint) (*models.GigApplication, *models.Gig, error) {
			return nil, nil, fmt.Errorf("%w: application already confirmed", store.ErrInvalidState)
		},
	}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(chefUser(1), http.MethodPut, "/api/applications/:id/confirm", ac.Confirm)

	resp := doJSON(t, app, http.MethodPut, "/api/applications/9/confirm", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConfirmWithoutChefProfileIs404(t *testing.T) {
	mock := &MockStore{}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(chefUser(1), http.MethodPut, "/api/applications/:id/confirm", ac.Confirm)

	resp := doJSON(t, app, http.MethodPut, "/api/applications/9/confirm", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestConfirmForeignApplicationIs403(t *testing.T) {
	mock := &MockStore{
		GetChefProfileByUserIDFunc: func(userID uint) (*models.ChefProfile, error) {
			return chefProfile(7, userID), nil
		},
		GetApplicationFunc: func(id uint) (*models.GigApplication, error) {
			return &models.GigApplication{Model: gormModel(id), GigID: 5, ChefID: 8, Status: models.ApplicationAccepted}, nil
		},
	}
	ac := controller.NewApplicationController(mock, newNotifier(mock), nil)
	app := newTestApp(chefUser(1), http.MethodPut, "/api/applications/:id/confirm", ac.Confirm)

	resp := doJSON(t, app, http.MethodPut, "/api/applications/9/confirm", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
