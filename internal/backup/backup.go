// Package backup copies a store namespace to an object store and back.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adatasks/internal/logging"
	"github.com/google/uuid"
)

// FormatVersion is written into every archive.
const FormatVersion = 1

// ErrUnsupportedVersion is returned when an archive was written by a newer format.
var ErrUnsupportedVersion = errors.New("unsupported backup version")

// ObjectStore is a flat blob store addressed by key.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// Snapshotter is the part of store.Store a backup needs.
type Snapshotter interface {
	Snapshot(ctx context.Context) (map[string]json.RawMessage, error)
	Restore(ctx context.Context, snap map[string]json.RawMessage) error
}

// Archive is the JSON document stored per backup.
type Archive struct {
	Version   int                        `json:"version"`
	CreatedAt time.Time                  `json:"createdAt"`
	Records   map[string]json.RawMessage `json:"records"`
}

// Service exports and imports namespace snapshots.
type Service struct {
	objects ObjectStore
	store   Snapshotter
	logger  logging.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewService creates a Service. A zero timeout means no per-call deadline.
func NewService(objects ObjectStore, store Snapshotter, logger logging.Logger, timeout time.Duration) *Service {
	return &Service{
		objects: objects,
		store:   store,
		logger:  logger.With("component", "backup"),
		timeout: timeout,
		now:     time.Now,
	}
}

// ObjectKey returns a fresh key of the form backups/YYYY/MM/DD/<uuid>.json.
func ObjectKey(t time.Time) string {
	return fmt.Sprintf("backups/%04d/%02d/%02d/%v.json", t.Year(), t.Month(), t.Day(), uuid.New())
}

// Export uploads the current snapshot and returns its object key.
func (s *Service) Export(ctx context.Context) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	records, err := s.store.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}

	now := s.now().UTC()
	body, err := json.Marshal(Archive{Version: FormatVersion, CreatedAt: now, Records: records})
	if err != nil {
		return "", fmt.Errorf("encode archive: %w", err)
	}

	key := ObjectKey(now)
	if err := s.objects.Put(ctx, key, body); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	s.logger.Info(ctx, "backup exported", "key", key, "records", len(records), "bytes", len(body))
	return key, nil
}

// Import downloads the archive at key and replaces the namespace with it.
func (s *Service) Import(ctx context.Context, key string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	body, err := s.objects.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("download %s: %w", key, err)
	}

	var a Archive
	if err := json.Unmarshal(body, &a); err != nil {
		return fmt.Errorf("decode archive %s: %w", key, err)
	}
	if a.Version > FormatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, a.Version)
	}

	if err := s.store.Restore(ctx, a.Records); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	s.logger.Info(ctx, "backup imported", "key", key, "records", len(a.Records), "created_at", a.CreatedAt)
	return nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
