package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tigerrentals-client/internal/api/rest"
	"tigerrentals-client/internal/cache"
	"tigerrentals-client/internal/config"
	"tigerrentals-client/internal/logger"
	"tigerrentals-client/internal/repository"
	"tigerrentals-client/internal/repository/memory"
	"tigerrentals-client/internal/repository/sqlite"
	"tigerrentals-client/internal/service"
	"tigerrentals-client/internal/session"
	"tigerrentals-client/internal/view"

	"golang.org/x/term"
)

// errReported marks an error whose message was already shown to the user
var errReported = errors.New("reported")

// app is everything a command needs, built once per invocation
type app struct {
	cfg      *config.Config
	db       *sql.DB
	sessions *session.Manager

	auth      service.AuthService
	items     service.ItemService
	rentals   service.RentalService
	messages  service.MessageService
	reviews   service.ReviewService
	dashboard service.DashboardService

	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func newApp(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*app, error) {
	a := &app{cfg: cfg, in: in, reader: bufio.NewReader(in), out: out, errOut: errOut}

	var store repository.SessionRepository
	switch cfg.Store.Type {
	case "memory":
		store = memory.NewSessionRepository()
	default:
		db, err := sqlite.Open(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open session store: %w", err)
		}
		a.db = db
		store = sqlite.NewSessionRepository(db)
	}

	client := rest.NewClient(cfg.API.BaseURL, cfg.Timeout(),
		rest.WithRateLimit(cfg.API.RatePerSecond, cfg.API.Burst))
	a.sessions = session.NewManager(client, store)
	client.SetTokenSource(a.sessions)

	c := cache.New()
	a.auth = service.NewAuthService(a.sessions, c)
	a.items = service.NewItemService(client, a.sessions, c)
	a.rentals = service.NewRentalService(client, a.sessions, c)
	a.messages = service.NewMessageService(client, a.rentals, a.sessions, c)
	a.reviews = service.NewReviewService(client, a.sessions, c)
	a.dashboard = service.NewDashboardService(client, a.rentals, a.sessions, c)

	if _, err := a.auth.Restore(ctx); err != nil && !errors.Is(err, session.ErrNoSession) {
		logger.Warn("Could not restore session", "error", err)
	}
	return a, nil
}

func (a *app) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logger.Warn("Failed to close session store", "error", err)
		}
	}
}

// loadFailed shows the empty state for a failed read
func (a *app) loadFailed(what string, err error) error {
	if errors.Is(err, session.ErrNoSession) || errors.Is(err, rest.ErrUnauthorized) {
		fmt.Fprintln(a.errOut, "Please log in to continue (rentctl login).")
		return errReported
	}
	view.LoadFailed(a.out, what)
	return errReported
}

// alert reports a failed submission
func (a *app) alert(err error, fallback string) error {
	fmt.Fprintln(a.errOut, service.AlertMessage(err, fallback))
	return errReported
}

func (a *app) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword masks input on a terminal and reads a plain line otherwise
func (a *app) readPassword(label string) (string, error) {
	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(a.out, label)
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(pw)), nil
	}
	return a.prompt(label)
}
