// Package cli is the StaffDesk shell: a read-eval-print loop standing in for
// the single-page UI. It renders pages resolved by the router and forwards
// every mutation to the services; no business rule lives here.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"staffdesk/internal/config"
	"staffdesk/internal/logging"
	"staffdesk/internal/models"
	"staffdesk/internal/router"
	"staffdesk/internal/services"
	"staffdesk/internal/storage"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	store       *storage.Store
	auth        services.AuthService
	accounts    *services.AccountService
	departments *services.DepartmentService
	employees   *services.EmployeeService
	requests    *services.RequestService
	export      *services.ExportService

	session  models.Session
	location string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	store := storage.New(db, log)
	if err := store.Load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:      cfg,
		log:         log,
		db:          db,
		store:       store,
		auth:        services.NewAuthService(store, log),
		accounts:    services.NewAccountService(store, log),
		departments: services.NewDepartmentService(store, log),
		employees:   services.NewEmployeeService(store, log),
		requests:    services.NewRequestService(store, log),
		export:      services.NewExportService(store, log),
		location:    router.LocationHome,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}

	// rebuild the session from the persisted token, as the page reload would
	a.session, err = a.auth.Restore(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// navigate resolves the requested location through the guards and renders
// whatever page the router settled on. The guard result is trusted: render
// never re-checks access.
func (a *App) navigate(ctx context.Context, location string) router.Resolution {
	res := router.Resolve(location, a.session)
	if res.Location != location && location != "" {
		printlnFn("Redirected to " + res.Location)
	}
	a.location = res.Location
	a.render(ctx, res.Page)
	return res
}
