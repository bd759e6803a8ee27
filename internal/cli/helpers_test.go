package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/adatasks/internal/cryptox"
	"github.com/dmitrijs2005/adatasks/internal/ids"
	"github.com/dmitrijs2005/adatasks/internal/logging"
	"github.com/dmitrijs2005/adatasks/internal/services"
	"github.com/dmitrijs2005/adatasks/internal/store"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
	args [][]any
}

func (l *recordingLogger) Debug(context.Context, string, ...any) {}
func (l *recordingLogger) Warn(context.Context, string, ...any)  {}
func (l *recordingLogger) Error(context.Context, string, ...any) {}
func (l *recordingLogger) Info(_ context.Context, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
	l.args = append(l.args, args)
}
func (l *recordingLogger) With(...any) logging.Logger { return l }

func (l *recordingLogger) count(msg string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, m := range l.msgs {
		if m == msg {
			n++
		}
	}
	return n
}

// noTerminal makes GetPassword read from the app reader.
func noTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

type fixture struct {
	st    *store.Store
	gen   *ids.Generator
	auth  *services.AuthManager
	tasks *services.TaskManager
}

func newFixture(t *testing.T, notifier services.Notifier) *fixture {
	t.Helper()
	ctx := context.Background()
	st := store.New(store.NewMemoryRepository(), store.DefaultNamespace)
	gen := ids.NewGenerator(func() time.Time { return testNow })

	auth, err := services.NewAuthManager(ctx, st, cryptox.Plaintext{}, gen, logging.NewNop())
	require.NoError(t, err)
	tasks, err := services.NewTaskManager(ctx, st, gen, notifier, logging.NewNop(), "")
	require.NoError(t, err)
	return &fixture{st: st, gen: gen, auth: auth, tasks: tasks}
}

// run feeds script to a fresh App over f and returns everything printed.
func run(t *testing.T, f *fixture, script string, opts ...Option) string {
	t.Helper()
	noTerminal(t)
	var out bytes.Buffer
	opts = append(opts, WithIO(strings.NewReader(script), &out))
	NewApp(f.auth, f.tasks, logging.NewNop(), opts...).Run(context.Background())
	return out.String()
}
