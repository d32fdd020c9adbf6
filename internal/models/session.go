package models

// Session is the current authentication state, passed explicitly into every
// operation that needs it. The zero value is the anonymous session.
type Session struct {
	Account *Account
}

// Anonymous returns the unauthenticated session.
func Anonymous() Session {
	return Session{}
}

// Authenticated reports whether an account is logged in.
func (s Session) Authenticated() bool {
	return s.Account != nil
}

// IsAdmin reports whether the session belongs to an admin account.
func (s Session) IsAdmin() bool {
	return s.Account != nil && s.Account.Role == RoleAdmin
}

// Email returns the session account's email, or "" when anonymous.
func (s Session) Email() string {
	if s.Account == nil {
		return ""
	}
	return s.Account.Email
}
