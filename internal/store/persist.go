package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultNamespace is the fixed key durable snapshots are stored under.
const DefaultNamespace = "snapshop-session"

// Snapshot is the durable subset of the store: cart and auth only.
// Transient UI fields never appear here.
type Snapshot struct {
	Cart []CartItem `json:"cart"`
	Auth *Auth      `json:"auth"`
}

// Persister saves and restores session snapshots across restarts.
type Persister interface {
	Save(ctx context.Context, snap Snapshot) error
	// Load returns the stored snapshot; ok is false when nothing has
	// been persisted yet.
	Load(ctx context.Context) (snap Snapshot, ok bool, err error)
	Clear(ctx context.Context) error
}

// FilePersister keeps the snapshot as a JSON file under a base
// directory, one file per namespace.
type FilePersister struct {
	dir       string
	namespace string
}

func NewFilePersister(dir, namespace string) *FilePersister {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &FilePersister{dir: dir, namespace: namespace}
}

func (p *FilePersister) path() string {
	return filepath.Join(p.dir, p.namespace+".json")
}

func (p *FilePersister) Save(_ context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(p.path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (p *FilePersister) Load(_ context.Context) (Snapshot, bool, error) {
	data, err := os.ReadFile(p.path())
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, true, nil
}

func (p *FilePersister) Clear(_ context.Context) error {
	if err := os.Remove(p.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
