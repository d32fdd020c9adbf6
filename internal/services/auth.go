// Package services contains the StaffDesk application services. This file
// implements authentication: registration, the simulated email-verification
// step, login/logout, and session restoration at startup.
package services

import (
	"context"
	"fmt"

	"staffdesk/internal/logging"
	"staffdesk/internal/models"
	"staffdesk/internal/storage"
)

// AuthService defines the authentication operations.
//
// Contract:
//   - Register: create an unverified account and track its email in the
//     single pending-verification slot. Does not change the session.
//   - VerifyPendingEmail: mark the pending account verified and clear the slot.
//   - Login: exact match on email, password, and verified flag; persists the
//     email as the session token.
//   - Logout: clear the token; idempotent from anonymous.
//   - Restore: rebuild the session from the persisted token at startup.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) error
	VerifyPendingEmail(ctx context.Context) error
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (models.Session, error)
}

type authService struct {
	store *storage.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService over the given store.
func NewAuthService(store *storage.Store, log logging.Logger) AuthService {
	return &authService{store: store, log: log}
}

// Register creates a new account with role user and verified=false, then
// records the email as pending verification. The pending slot holds a single
// value: a later registration overwrites it.
func (a *authService) Register(ctx context.Context, firstName, lastName, email, password string) error {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return models.ErrValidation
	}

	data := a.store.Data()
	if data.FindAccountByEmail(email) != nil {
		return models.ErrDuplicateEmail
	}

	data.Accounts = append(data.Accounts, models.Account{
		ID:        data.NextAccountID(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Role:      models.RoleUser,
		Verified:  false,
	})

	if err := a.store.SaveAndSetPending(ctx, email); err != nil {
		return fmt.Errorf("error saving account: %w", err)
	}

	a.log.Info(ctx, "account registered", "email", email)
	return nil
}

// VerifyPendingEmail marks the account in the pending slot as verified.
func (a *authService) VerifyPendingEmail(ctx context.Context) error {
	email, err := a.store.PendingEmail(ctx)
	if err != nil {
		return fmt.Errorf("error reading pending email: %w", err)
	}
	if email == "" {
		return models.ErrNoPendingVerification
	}

	account := a.store.Data().FindAccountByEmail(email)
	if account == nil {
		return models.ErrAccountNotFound
	}

	account.Verified = true
	if err := a.store.SaveAndClearPending(ctx); err != nil {
		return fmt.Errorf("error saving account: %w", err)
	}

	a.log.Info(ctx, "email verified", "email", email)
	return nil
}

// Login authenticates iff an account exists with exactly matching email,
// password, and verified=true. Wrong password and unverified account yield
// the same error so callers cannot tell which check failed.
func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	account := a.store.Data().FindAccountByEmail(email)
	if account == nil || account.Password != password || !account.Verified {
		return models.Anonymous(), models.ErrInvalidCredentials
	}

	if err := a.store.SetToken(ctx, email); err != nil {
		return models.Anonymous(), fmt.Errorf("error persisting session token: %w", err)
	}

	a.log.Info(ctx, "login", "email", email, "role", account.Role)
	return models.Session{Account: account}, nil
}

// Logout clears the persisted session token. Safe to call when anonymous.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.ClearToken(ctx); err != nil {
		return fmt.Errorf("error clearing session token: %w", err)
	}
	return nil
}

// Restore rebuilds the session from the persisted token. A stale token whose
// account no longer exists is cleared and the session stays anonymous.
func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	email, err := a.store.Token(ctx)
	if err != nil {
		return models.Anonymous(), fmt.Errorf("error reading session token: %w", err)
	}
	if email == "" {
		return models.Anonymous(), nil
	}

	account := a.store.Data().FindAccountByEmail(email)
	if account == nil {
		a.log.Warn(ctx, "stale session token, clearing", "email", email)
		if err := a.store.ClearToken(ctx); err != nil {
			return models.Anonymous(), fmt.Errorf("error clearing stale token: %w", err)
		}
		return models.Anonymous(), nil
	}

	return models.Session{Account: account}, nil
}
