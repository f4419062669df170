// Package catalog loads the product catalog from disk and serves immutable
// snapshots of it to the ranking pipelines.
package catalog

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stylekart/erabu/internal/models"
)

// Snapshot is an immutable view of the catalog at a point in time. Callers
// must not modify the products slice.
type Snapshot struct {
	Products []*models.Product
	Version  int64
	LoadedAt time.Time
}

// Store holds the current catalog snapshot and swaps it atomically on reload.
type Store struct {
	mu       sync.RWMutex
	snapshot *Snapshot
	path     string
	logger   *zap.Logger
}

// NewStore creates a store over the catalog file at path. The catalog is not
// read until Reload is called.
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		snapshot: &Snapshot{},
		path:     path,
		logger:   logger,
	}
}

// Snapshot returns the current catalog view. The returned value never changes
// after it is handed out; a reload installs a fresh one instead.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Products returns the current catalog contents.
func (s *Store) Products() []*models.Product {
	return s.Snapshot().Products
}

// Len returns the number of products in the current snapshot.
func (s *Store) Len() int {
	return len(s.Snapshot().Products)
}

// Reload reads the catalog file and installs a new snapshot. The previous
// snapshot stays valid for readers that already hold it. On error the old
// snapshot is kept.
func (s *Store) Reload() error {
	products, err := LoadFile(s.path)
	if err != nil {
		return fmt.Errorf("reloading catalog: %w", err)
	}

	s.mu.Lock()
	version := s.snapshot.Version + 1
	s.snapshot = &Snapshot{
		Products: products,
		Version:  version,
		LoadedAt: time.Now(),
	}
	s.mu.Unlock()

	s.logger.Info("catalog loaded",
		zap.String("path", s.path),
		zap.Int("products", len(products)),
		zap.Int64("version", version))
	return nil
}
