package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Logical keys of the persisted records.
const (
	KeyUsers              = "users"
	KeyCurrentUser        = "current_user"
	KeyLists              = "lists"
	KeyTasks              = "tasks"
	KeyCurrentList        = "current_list"
	KeySampleTasksCreated = "sample_tasks_created"
)

// DefaultNamespace is the prefix every key is stored under.
const DefaultNamespace = "ada_"

// Store reads and writes JSON documents under a shared namespace prefix.
type Store struct {
	repo      Repository
	namespace string
}

func New(repo Repository, namespace string) *Store {
	return &Store{repo: repo, namespace: namespace}
}

// Key returns the physical key for a logical name.
func (s *Store) Key(name string) string {
	return s.namespace + name
}

// GetJSON decodes the record stored under name into dst. It reports false,
// leaving dst untouched, when no record exists. A malformed record is an error.
func (s *Store) GetJSON(ctx context.Context, name string, dst any) (bool, error) {
	raw, err := s.repo.Get(ctx, s.Key(name))
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", s.Key(name), err)
	}
	return true, nil
}

// SetJSON encodes v and overwrites the record stored under name.
func (s *Store) SetJSON(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.Key(name), err)
	}
	return s.repo.Set(ctx, s.Key(name), raw)
}

// Remove deletes the record stored under name.
func (s *Store) Remove(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, s.Key(name))
}

// Snapshot returns every record of the namespace keyed by logical name.
func (s *Store) Snapshot(ctx context.Context) (map[string]json.RawMessage, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage)
	for k, v := range all {
		name, ok := strings.CutPrefix(k, s.namespace)
		if !ok {
			continue
		}
		if !json.Valid(v) {
			return nil, fmt.Errorf("snapshot %s: value is not valid JSON", k)
		}
		out[name] = json.RawMessage(v)
	}
	return out, nil
}

// Restore makes the namespace hold exactly the records of snap. Records of
// other namespaces are left alone.
func (s *Store) Restore(ctx context.Context, snap map[string]json.RawMessage) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	sets := make(map[string][]byte, len(snap))
	for name, v := range snap {
		sets[s.Key(name)] = []byte(v)
	}
	var deletes []string
	for k := range all {
		if _, keep := sets[k]; !keep && strings.HasPrefix(k, s.namespace) {
			deletes = append(deletes, k)
		}
	}

	if b, ok := s.repo.(Batcher); ok {
		return b.Apply(ctx, sets, deletes)
	}
	for _, k := range deletes {
		if err := s.repo.Delete(ctx, k); err != nil {
			return err
		}
	}
	for k, v := range sets {
		if err := s.repo.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}
