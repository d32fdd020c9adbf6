// Package router maps a location token (a hash-style path such as "/login")
// to a page, enforcing auth and role guards before any page logic runs.
package router

import "staffdesk/internal/models"

// Page identifies what the shell should render. PageNone means no page is
// active (unknown location).
type Page string

const (
	PageNone        Page = ""
	PageHome        Page = "home"
	PageRegister    Page = "register"
	PageLogin       Page = "login"
	PageVerifyEmail Page = "verify-email"
	PageProfile     Page = "profile"
	PageEmployees   Page = "employees"
	PageAccounts    Page = "accounts"
	PageDepartments Page = "departments"
	PageRequests    Page = "requests"
)

const (
	LocationHome        = "/"
	LocationRegister    = "/register"
	LocationLogin       = "/login"
	LocationVerifyEmail = "/verify-email"
	LocationProfile     = "/profile"
	LocationEmployees   = "/employees"
	LocationAccounts    = "/accounts"
	LocationDepartments = "/departments"
	LocationRequests    = "/requests"
)

var pages = map[string]Page{
	LocationHome:        PageHome,
	LocationRegister:    PageRegister,
	LocationLogin:       PageLogin,
	LocationVerifyEmail: PageVerifyEmail,
	LocationProfile:     PageProfile,
	LocationEmployees:   PageEmployees,
	LocationAccounts:    PageAccounts,
	LocationDepartments: PageDepartments,
	LocationRequests:    PageRequests,
}

// protected locations require any authenticated session.
var protected = map[string]bool{
	LocationProfile:  true,
	LocationRequests: true,
}

// adminOnly locations require an authenticated admin session.
var adminOnly = map[string]bool{
	LocationEmployees:   true,
	LocationAccounts:    true,
	LocationDepartments: true,
}

// Resolution is the outcome of routing: the effective location after guards
// and the page to render. Dispatch trusts the guard result; pages do not
// re-check access.
type Resolution struct {
	Location string
	Page     Page
}

// Resolve is a pure function of (location, session). An empty location
// defaults to home. Protected locations redirect anonymous sessions to the
// login page; admin-only locations redirect everyone but admins home.
// Unknown locations pass through both guards harmlessly and resolve to
// PageNone.
func Resolve(location string, sess models.Session) Resolution {
	if location == "" {
		location = LocationHome
	}

	if protected[location] && !sess.Authenticated() {
		location = LocationLogin
	}

	if adminOnly[location] && !sess.IsAdmin() {
		location = LocationHome
	}

	return Resolution{Location: location, Page: pages[location]}
}
