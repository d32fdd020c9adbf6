// Package storage persists the whole StaffDesk aggregate as a single JSON
// blob in the key-value store, plus two scalar keys: the session token (the
// authenticated email) and the single pending-verification email.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"staffdesk/internal/dbx"
	"staffdesk/internal/logging"
	"staffdesk/internal/models"
	"staffdesk/internal/repositories/blob"
)

const (
	// StoreKey holds the serialized aggregate. The value is kept from the
	// first schema version for compatibility with existing local stores.
	StoreKey = "ipt_demo_v1"

	// TokenKey holds the authenticated email while a session is active.
	TokenKey = "auth_token"

	// PendingKey holds the single email awaiting verification. One slot:
	// a new registration overwrites whatever was pending before.
	PendingKey = "unverified_email"
)

// Store owns the in-memory aggregate and its persistence. Every mutating
// operation must call Save (or one of the SaveAnd* variants) synchronously
// before returning; readers never mutate.
type Store struct {
	db   *sql.DB
	log  logging.Logger
	data *models.Database
}

func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) repo() blob.Repository {
	return blob.NewSQLiteRepository(s.db)
}

// Data returns the in-memory aggregate. Load must have been called first.
func (s *Store) Data() *models.Database {
	return s.data
}

// Load reads the persisted blob into memory. An absent or unparsable blob is
// recovered locally: the store is reseeded and saved, never surfaced as a
// hard failure.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.repo().Get(ctx, StoreKey)
	if err != nil {
		return fmt.Errorf("error reading store: %w", err)
	}

	if raw == nil {
		s.log.Info(ctx, "no persisted store found, seeding defaults")
		s.data = Seed()
		return s.Save(ctx)
	}

	var db models.Database
	if err := json.Unmarshal(raw, &db); err != nil {
		s.log.Warn(ctx, "persisted store is corrupt, reseeding", "error", err)
		s.data = Seed()
		return s.Save(ctx)
	}

	db.EnsureCounters()
	s.data = &db
	return nil
}

// Save serializes the entire aggregate and overwrites the persisted blob
// unconditionally. No partial writes, no versioning.
func (s *Store) Save(ctx context.Context) error {
	return s.saveWith(ctx, nil)
}

// SaveAndSetPending persists the aggregate and records email as the pending
// verification slot in the same transaction.
func (s *Store) SaveAndSetPending(ctx context.Context, email string) error {
	return s.saveWith(ctx, func(ctx context.Context, r blob.Repository) error {
		return r.Set(ctx, PendingKey, []byte(email))
	})
}

// SaveAndClearPending persists the aggregate and clears the pending slot in
// the same transaction.
func (s *Store) SaveAndClearPending(ctx context.Context) error {
	return s.saveWith(ctx, func(ctx context.Context, r blob.Repository) error {
		return r.Delete(ctx, PendingKey)
	})
}

func (s *Store) saveWith(ctx context.Context, extra func(ctx context.Context, r blob.Repository) error) error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("error serializing store: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := blob.NewSQLiteRepository(tx)
		if err := r.Set(ctx, StoreKey, raw); err != nil {
			return err
		}
		if extra != nil {
			return extra(ctx, r)
		}
		return nil
	})
}

// Token returns the persisted session token (authenticated email), or "".
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) SetToken(ctx context.Context, email string) error {
	return s.repo().Set(ctx, TokenKey, []byte(email))
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.repo().Delete(ctx, TokenKey)
}

// PendingEmail returns the email awaiting verification, or "".
func (s *Store) PendingEmail(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, PendingKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) SetPendingEmail(ctx context.Context, email string) error {
	return s.repo().Set(ctx, PendingKey, []byte(email))
}

func (s *Store) ClearPendingEmail(ctx context.Context) error {
	return s.repo().Delete(ctx, PendingKey)
}

// Seed produces the default aggregate: one verified admin account, two
// departments, empty employees and requests.
func Seed() *models.Database {
	return &models.Database{
		Accounts: []models.Account{
			{
				ID:        1,
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "Password123!",
				Role:      models.RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []models.Department{
			{ID: 1, Name: "Engineering", Description: "Software development and engineering team"},
			{ID: 2, Name: "HR", Description: "Human Resources department"},
		},
		Employees: []models.Employee{},
		Requests:  []models.Request{},
		Counters: models.Counters{
			Accounts:    2,
			Departments: 3,
			Employees:   1,
			Requests:    1,
		},
	}
}
