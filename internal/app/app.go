// Package app wires configuration, storage, the managers and the CLI into
// a runnable program.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/adatasks/internal/backup"
	"github.com/dmitrijs2005/adatasks/internal/cli"
	"github.com/dmitrijs2005/adatasks/internal/config"
	"github.com/dmitrijs2005/adatasks/internal/cryptox"
	"github.com/dmitrijs2005/adatasks/internal/ids"
	"github.com/dmitrijs2005/adatasks/internal/logging"
	"github.com/dmitrijs2005/adatasks/internal/notify"
	"github.com/dmitrijs2005/adatasks/internal/services"
	"github.com/dmitrijs2005/adatasks/internal/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *store.DB
	store  *store.Store
	ids    *ids.Generator
	hub    *notify.Hub

	verifier services.Verifier
	auth     *services.AuthManager
	tasks    *services.TaskManager
	backup   *backup.Service
}

// NewApp opens the storage backend and builds the managers. With c.Seed the
// test accounts and sample tasks are created on first run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, logging.NewLogger(c.LogLevel, c.LogFormat))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := store.Open(ctx, c.Driver, c.DSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app := &App{
		config:   c,
		logger:   logger,
		db:       db,
		store:    store.New(db.Repo, c.Namespace),
		ids:      ids.NewGenerator(nil),
		hub:      notify.NewHub(),
		verifier: cryptox.Plaintext{},
	}
	if c.Hardened {
		app.verifier = cryptox.Argon2{}
	}

	if err := app.load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if c.Seed {
		if err := app.seed(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if c.BackupEnabled() {
		objects, err := backup.NewS3Store(ctx, backup.S3Options{
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			Region:       c.S3Region,
			Bucket:       c.S3Bucket,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
		app.backup = backup.NewService(objects, app.store, logger, c.BackupTimeout)
	}

	return app, nil
}

// load (re)builds both managers from storage.
func (app *App) load(ctx context.Context) error {
	auth, err := services.NewAuthManager(ctx, app.store, app.verifier, app.ids, app.logger)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	tasks, err := services.NewTaskManager(ctx, app.store, app.ids, app.hub, app.logger, app.config.CurrentList)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	app.auth, app.tasks = auth, tasks
	return nil
}

func (app *App) seed(ctx context.Context) error {
	if err := app.auth.CreateTestUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if _, err := app.tasks.CreateSampleTasks(ctx); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	return nil
}

func (app *App) reload(ctx context.Context) (cli.AuthService, cli.TaskService, error) {
	if err := app.load(ctx); err != nil {
		return nil, nil, err
	}
	return app.auth, app.tasks, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the dashboard watcher and the REPL on stdin/stdout. It returns
// when the user quits or a termination signal arrives, and closes the store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)
	app.run(ctx)
}

func (app *App) run(ctx context.Context, opts ...cli.Option) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.Driver, "list", app.tasks.CurrentListID())

	if app.backup != nil {
		opts = append(opts, cli.WithBackup(app.backup, app.reload))
	}
	front := cli.NewApp(app.auth, app.tasks, app.logger, opts...)

	updates, unsubscribe := app.hub.Subscribe()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		front.WatchDashboard(ctx, updates)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		front.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		app.logger.Info(ctx, "interrupted")
	}

	cancelFunc()
	unsubscribe()
	wg.Wait()
	front.Close()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "close store", "error", err)
	}
	app.logger.Info(ctx, "Bye")
}
