package services

import (
	"context"
	"fmt"

	"staffdesk/internal/logging"
	"staffdesk/internal/models"
	"staffdesk/internal/storage"
)

// AccountService is the admin-facing CRUD over accounts. Unlike Register,
// admin creation can set any role and mark the account verified directly.
type AccountService struct {
	store *storage.Store
	log   logging.Logger
}

func NewAccountService(store *storage.Store, log logging.Logger) *AccountService {
	return &AccountService{store: store, log: log}
}

// AccountFields are the editable fields of an account. Password is only
// applied on create; admin edits leave the stored password untouched.
type AccountFields struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      models.Role
	Verified  bool
}

// List returns all accounts in insertion order.
func (s *AccountService) List() []models.Account {
	return s.store.Data().Accounts
}

// Create adds an account. Email uniqueness is enforced here the same way as
// in registration.
func (s *AccountService) Create(ctx context.Context, f AccountFields) (*models.Account, error) {
	if f.FirstName == "" || f.LastName == "" || f.Email == "" || f.Password == "" || f.Role == "" {
		return nil, models.ErrValidation
	}

	data := s.store.Data()
	if data.FindAccountByEmail(f.Email) != nil {
		return nil, models.ErrDuplicateEmail
	}

	account := models.Account{
		ID:        data.NextAccountID(),
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Password:  f.Password,
		Role:      f.Role,
		Verified:  f.Verified,
	}
	data.Accounts = append(data.Accounts, account)

	if err := s.store.Save(ctx); err != nil {
		return nil, fmt.Errorf("error saving account: %w", err)
	}

	s.log.Info(ctx, "account created", "id", account.ID, "email", account.Email)
	return &data.Accounts[len(data.Accounts)-1], nil
}

// Update replaces the editable fields of the account in place.
func (s *AccountService) Update(ctx context.Context, id int, f AccountFields) error {
	if f.FirstName == "" || f.LastName == "" || f.Email == "" || f.Role == "" {
		return models.ErrValidation
	}

	account := s.store.Data().FindAccountByID(id)
	if account == nil {
		return models.ErrNotFound
	}

	account.FirstName = f.FirstName
	account.LastName = f.LastName
	account.Email = f.Email
	account.Role = f.Role
	account.Verified = f.Verified

	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("error saving account: %w", err)
	}
	return nil
}

// Delete removes the account with the given ID. The account bound to the
// acting session may not delete itself.
func (s *AccountService) Delete(ctx context.Context, id int, sess models.Session) error {
	if sess.Account != nil && sess.Account.ID == id {
		return models.ErrSelfDeletionForbidden
	}

	data := s.store.Data()
	if data.FindAccountByID(id) == nil {
		return models.ErrNotFound
	}

	kept := make([]models.Account, 0, len(data.Accounts)-1)
	for _, a := range data.Accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	data.Accounts = kept

	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("error saving accounts: %w", err)
	}

	s.log.Info(ctx, "account deleted", "id", id)
	return nil
}
