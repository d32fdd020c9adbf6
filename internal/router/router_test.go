package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staffdesk/internal/models"
)

func anonymous() models.Session {
	return models.Anonymous()
}

func asUser() models.Session {
	return models.Session{Account: &models.Account{ID: 2, Email: "u@example.com", Role: models.RoleUser}}
}

func asAdmin() models.Session {
	return models.Session{Account: &models.Account{ID: 1, Email: "admin@example.com", Role: models.RoleAdmin}}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		location     string
		sess         models.Session
		wantLocation string
		wantPage     Page
	}{
		{"empty location defaults to home", "", anonymous(), "/", PageHome},
		{"home is public", "/", anonymous(), "/", PageHome},
		{"login is public", "/login", anonymous(), "/login", PageLogin},
		{"register is public", "/register", anonymous(), "/register", PageRegister},
		{"verify-email is public", "/verify-email", anonymous(), "/verify-email", PageVerifyEmail},

		{"profile anonymous redirects to login", "/profile", anonymous(), "/login", PageLogin},
		{"requests anonymous redirects to login", "/requests", anonymous(), "/login", PageLogin},
		{"profile authenticated passes", "/profile", asUser(), "/profile", PageProfile},
		{"requests authenticated passes", "/requests", asUser(), "/requests", PageRequests},

		{"employees anonymous redirects home", "/employees", anonymous(), "/", PageHome},
		{"employees non-admin redirects home", "/employees", asUser(), "/", PageHome},
		{"employees admin passes", "/employees", asAdmin(), "/employees", PageEmployees},
		{"accounts non-admin redirects home", "/accounts", asUser(), "/", PageHome},
		{"accounts admin passes", "/accounts", asAdmin(), "/accounts", PageAccounts},
		{"departments non-admin redirects home", "/departments", asUser(), "/", PageHome},
		{"departments admin passes", "/departments", asAdmin(), "/departments", PageDepartments},

		{"unknown location renders no page", "/bogus", anonymous(), "/bogus", PageNone},
		{"unknown location with admin renders no page", "/bogus", asAdmin(), "/bogus", PageNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.location, tc.sess)
			assert.Equal(t, tc.wantLocation, got.Location)
			assert.Equal(t, tc.wantPage, got.Page)
		})
	}
}
