package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/adatasks/internal/cryptox"
	"github.com/dmitrijs2005/adatasks/internal/ids"
	"github.com/dmitrijs2005/adatasks/internal/logging"
	"github.com/dmitrijs2005/adatasks/internal/store"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// countingRepo wraps a MemoryRepository and records writes.
type countingRepo struct {
	*store.MemoryRepository
	sets    map[string]int
	deletes int
	failSet error
}

func newCountingRepo() *countingRepo {
	return &countingRepo{MemoryRepository: store.NewMemoryRepository(), sets: map[string]int{}}
}

func (r *countingRepo) Set(ctx context.Context, key string, value []byte) error {
	if r.failSet != nil {
		return r.failSet
	}
	r.sets[key]++
	return r.MemoryRepository.Set(ctx, key, value)
}

func (r *countingRepo) Delete(ctx context.Context, key string) error {
	r.deletes++
	return r.MemoryRepository.Delete(ctx, key)
}

func (r *countingRepo) totalSets() int {
	n := 0
	for _, c := range r.sets {
		n += c
	}
	return n
}

type fakeNotifier struct{ calls int }

func (f *fakeNotifier) Notify(context.Context) { f.calls++ }

func newGen() *ids.Generator {
	return ids.NewGenerator(func() time.Time { return testNow })
}

func newAuth(t *testing.T, repo store.Repository) *AuthManager {
	t.Helper()
	m, err := NewAuthManager(context.Background(), store.New(repo, store.DefaultNamespace), cryptox.Plaintext{}, newGen(), logging.NewNop())
	require.NoError(t, err)
	return m
}

func newTasks(t *testing.T, repo store.Repository, override string) (*TaskManager, *fakeNotifier) {
	t.Helper()
	n := &fakeNotifier{}
	m, err := NewTaskManager(context.Background(), store.New(repo, store.DefaultNamespace), newGen(), n, logging.NewNop(), override)
	require.NoError(t, err)
	return m, n
}

var errDiskFull = errors.New("disk full")
