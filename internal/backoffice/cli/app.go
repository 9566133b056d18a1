package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/greengrove/backoffice/internal/backoffice/auth"
	"github.com/greengrove/backoffice/internal/backoffice/config"
	"github.com/greengrove/backoffice/internal/backoffice/credentials"
	"github.com/greengrove/backoffice/internal/backoffice/directory"
	"github.com/greengrove/backoffice/internal/backoffice/orders"
	"github.com/greengrove/backoffice/internal/backoffice/profile"
	"github.com/greengrove/backoffice/internal/backoffice/seed"
	"github.com/greengrove/backoffice/internal/backoffice/verification"
	"github.com/greengrove/backoffice/internal/logging"
	"github.com/greengrove/backoffice/internal/store"

	_ "modernc.org/sqlite"
)

// App holds the wired-up services behind the interactive console.
type App struct {
	config *config.Config
	logger logging.Logger
	store  *store.Store

	users    *directory.Service
	sellers  *verification.Service
	orders   *orders.Service
	profiles *profile.Service
	auth     *auth.Service
	creds    *credentials.Service

	// user is the email of the signed-in administrator, "" when signed out.
	user   string
	reader *bufio.Reader
}

// NewApp opens the local store, installs the demo dataset on first run, and
// wires the domain services. A session persisted by a previous run is
// restored so the console starts signed in.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	st, err := store.Open(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error opening store", "error", err)
		return nil, err
	}

	if err := seed.Run(ctx, st); err != nil {
		logger.Error(ctx, "error seeding store", "error", err)
		return nil, err
	}

	us := directory.NewService(st)
	vs := verification.NewService(st)

	a := &App{
		config:   c,
		logger:   logger,
		store:    st,
		users:    us,
		sellers:  vs,
		orders:   orders.NewService(st),
		profiles: profile.NewService(st),
		auth:     auth.NewService(st, us, c.SecretKey, c.SessionTokenValidity),
		creds:    credentials.NewService(us, vs),
		reader:   bufio.NewReader(os.Stdin),
	}

	if email, ok, err := a.auth.CurrentUser(ctx); err == nil && ok {
		a.user = email
	}

	return a, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != ""
}

func (a *App) getStatus() string {
	if a.user == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user)
}

// Run starts the REPL on stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Warn(ctx, "error closing store", "error", err)
		}
	}()

	printlnFn("GreenGrove back office (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
