package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"staffdesk/internal/logging"
	"staffdesk/internal/models"
	"staffdesk/internal/storage"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// setupStore opens a fresh in-memory blob store, seeds it, and returns the
// loaded Store. Each test uses its own DSN name so state never leaks.
func setupStore(t *testing.T, name string) *storage.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS local_store (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM local_store`)
	require.NoError(t, err)

	s := storage.New(db, testLogger())
	require.NoError(t, s.Load(context.Background()))
	return s
}

// loginAdmin authenticates the seeded admin and returns the session.
func loginAdmin(t *testing.T, auth AuthService) models.Session {
	t.Helper()
	sess, err := auth.Login(context.Background(), "admin@example.com", "Password123!")
	require.NoError(t, err)
	return sess
}
