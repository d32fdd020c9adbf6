package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"staffdesk/internal/config"
	"staffdesk/internal/logging"
	"staffdesk/internal/router"
)

// newTestApp boots a full App over an in-memory database, goose migrations
// included. Output goes to the returned buffer.
func newTestApp(t *testing.T, name string) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := &config.Config{
		DatabasePath: "file:" + name + "?mode=memory&cache=shared",
		ExportPath:   filepath.Join(t.TempDir(), "export.xlsx"),
		LogLevel:     "error",
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	app, err := NewApp(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	var buf bytes.Buffer
	app.out = &buf
	return app, &buf
}

func loginSeededAdmin(t *testing.T, app *App) {
	t.Helper()
	sess, err := app.auth.Login(context.Background(), "admin@example.com", "Password123!")
	require.NoError(t, err)
	app.session = sess
}

func TestApp_AnonymousProfileRedirectsToLogin(t *testing.T) {
	app, _ := newTestApp(t, "app_profile_guard")
	lines := captureOutput(t)

	require.NoError(t, app.Profile(context.Background()))

	require.Equal(t, router.LocationLogin, app.location)
	require.Contains(t, strings.Join(*lines, ""), "Redirected to /login")
}

func TestApp_NonAdminAccountsRedirectsHome(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t, "app_admin_guard")
	captureOutput(t)

	require.NoError(t, app.auth.Register(ctx, "Jane", "Doe", "jane@example.com", "secret"))
	require.NoError(t, app.auth.VerifyPendingEmail(ctx))
	sess, err := app.auth.Login(ctx, "jane@example.com", "secret")
	require.NoError(t, err)
	app.session = sess

	require.NoError(t, app.Accounts(ctx, nil))
	require.Equal(t, router.LocationHome, app.location)
}

func TestApp_AdminSeesAccountsTable(t *testing.T) {
	ctx := context.Background()
	app, buf := newTestApp(t, "app_accounts_list")
	captureOutput(t)

	loginSeededAdmin(t, app)

	require.NoError(t, app.Accounts(ctx, nil))
	require.Equal(t, router.LocationAccounts, app.location)
	require.Contains(t, buf.String(), "admin@example.com")
}

func TestApp_RequestAddFlow(t *testing.T) {
	ctx := context.Background()
	app, buf := newTestApp(t, "app_request_add")
	captureOutput(t)

	loginSeededAdmin(t, app)

	// request type, one item with quantity, empty line ends the item loop
	app.reader = bufio.NewReader(strings.NewReader("Equipment\nLaptop\n2\n\n"))
	require.NoError(t, app.Requests(ctx, []string{"add"}))

	mine := app.requests.ListForUser("admin@example.com")
	require.Len(t, mine, 1)
	require.Equal(t, "Laptop", mine[0].Items[0].Name)
	require.Equal(t, 2, mine[0].Items[0].Qty)
	require.Contains(t, buf.String(), "Laptop (2)")
}

func TestApp_RequestAddRejectsEmptyItems(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t, "app_request_invalid")
	lines := captureOutput(t)

	loginSeededAdmin(t, app)

	app.reader = bufio.NewReader(strings.NewReader("Equipment\n\n"))
	require.Error(t, app.Requests(ctx, []string{"add"}))
	require.Contains(t, strings.Join(*lines, ""), "Request rejected")
}

func TestApp_ExportWritesWorkbook(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t, "app_export")
	lines := captureOutput(t)

	loginSeededAdmin(t, app)

	require.NoError(t, app.Export(ctx))
	require.Contains(t, strings.Join(*lines, ""), "Exported to")
}

func TestApp_LoginCommandWithStubbedPassword(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t, "app_login_cmd")
	captureOutput(t)

	savedRead := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("Password123!"), nil }
	t.Cleanup(func() { readPassword = savedRead })

	app.reader = bufio.NewReader(strings.NewReader("admin@example.com\n"))
	require.NoError(t, app.Login(ctx))

	require.True(t, app.isLoggedIn())
	require.Equal(t, router.LocationProfile, app.location)
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t, "app_restart")
	captureOutput(t)

	loginSeededAdmin(t, app)
	_, err := app.store.Token(ctx)
	require.NoError(t, err)

	// a second App over the same database simulates a page reload
	cfg := &config.Config{DatabasePath: "file:app_restart?mode=memory&cache=shared", ExportPath: "x.xlsx", LogLevel: "error"}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	app2, err := NewApp(ctx, cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app2.Close() })

	require.True(t, app2.isLoggedIn())
	require.Equal(t, "admin@example.com", app2.session.Email())
}
