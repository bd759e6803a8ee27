package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/adatasks/internal/logging"
	"github.com/dmitrijs2005/adatasks/internal/models"
	"github.com/dmitrijs2005/adatasks/internal/services"
)

// AuthService is the account surface the CLI drives.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.Session, error)
	ForgotPassword(ctx context.Context, email string) error
}

// TaskService is the list and task surface the CLI drives.
type TaskService interface {
	CurrentListID() string
	SetCurrentList(ctx context.Context, listID string) error
	CreateList(ctx context.Context, name, icon string) (models.List, error)
	RemoveList(ctx context.Context, listID string) (models.List, error)
	AllLists() []models.List
	ListByID(listID string) (models.List, bool)
	AddTask(ctx context.Context, title, priority string) (models.Task, error)
	ToggleTask(ctx context.Context, taskID int64) (models.Task, error)
	RemoveTask(ctx context.Context, taskID int64) (models.Task, error)
	RemoveCompletedTasks(ctx context.Context) (int, error)
	AllTasks() []models.Task
	PendingTasks() []models.Task
	CompletedTasks() []models.Task
	AllTasksGlobal() []models.Task
	ListStats(listID string) models.ListStats
	CleanupInconsistentData(ctx context.Context) (services.CleanupReport, error)
}

// BackupService exports and imports snapshots of the store.
type BackupService interface {
	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, key string) error
}

// ErrClosed is returned by commands issued after Close.
var ErrClosed = errors.New("shutting down")

// Reloader rebuilds the managers from storage, used after a restore.
type Reloader func(ctx context.Context) (AuthService, TaskService, error)

// App holds the managers and the terminal streams. Commands and the
// dashboard watcher are serialized by mu because the managers are not safe
// for concurrent use.
type App struct {
	mu     sync.Mutex
	closed bool
	auth   AuthService
	tasks  TaskService
	backup BackupService
	reload Reloader
	logger logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

// Option customizes an App.
type Option func(*App)

// WithBackup enables the backup and restore commands.
func WithBackup(b BackupService, reload Reloader) Option {
	return func(a *App) {
		a.backup = b
		a.reload = reload
	}
}

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.reader = bufio.NewReader(in)
		a.out = out
	}
}

// NewApp creates an App reading stdin and writing stdout.
func NewApp(auth AuthService, tasks TaskService, logger logging.Logger, opts ...Option) *App {
	a := &App{
		auth:   auth,
		tasks:  tasks,
		logger: logger.With("component", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "adatasks - type 'help' for commands")
	runREPL(ctx, a.commands(), a.status, a.reader, a.out)
}

// status renders the prompt prefix: the logged-in email and the current list.
func (a *App) status(ctx context.Context) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	who := "guest"
	if s, err := a.auth.CurrentUser(ctx); err == nil && s != nil {
		who = s.Email
	}
	list := a.tasks.CurrentListID()
	if l, ok := a.tasks.ListByID(list); ok {
		list = l.Name
	}
	return who + " @ " + list
}

func (a *App) say(outcome services.Outcome) {
	fmt.Fprintln(a.out, outcome.Message)
}

// Close waits for a running command to finish and refuses later ones, so the
// store can be closed underneath a REPL that is still blocked on input.
func (a *App) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
}

// locked serializes h with the dashboard watcher.
func (a *App) locked(h handler) handler {
	return func(ctx context.Context, args []string) error {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.closed {
			return ErrClosed
		}
		return h(ctx, args)
	}
}
