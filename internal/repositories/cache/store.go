// Package cache provides the two tier catalog cache: a namespaced JSON
// document store that is persisted whole on every write, and a directory of
// immutable image blobs.
//
// The cache is best effort. Persistence failures are logged and never
// returned to the caller.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
)

// Data is the in-memory shape of the document cache
type Data map[dex.Namespace]map[string]json.RawMessage

// emptyData returns the structure a missing or corrupt backing file resets to
func emptyData() Data {
	data := make(Data, len(dex.DocumentNamespaces()))
	for _, ns := range dex.DocumentNamespaces() {
		data[ns] = make(map[string]json.RawMessage)
	}
	return data
}

// Config contains configuration for the cache store.
type Config struct {
	// Persister writes the document cache somewhere durable
	Persister Persister
	// ImageDir holds one file per cached image; created lazily
	ImageDir string
	// Encoder optionally re-encodes fetched images before they are written
	Encoder Encoder
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Persister == nil {
		vb.RequiredField("Persister")
	}
	if cfg.ImageDir == "" {
		vb.RequiredField("ImageDir")
	}
	return vb.Build()
}

// Store is the process wide cache handle. A single mutex guards every
// document and image operation.
type Store struct {
	mu        sync.Mutex
	persister Persister
	data      Data
	failures  int

	imageDir string
	encoder  Encoder
	inflight singleflight.Group
}

// Stats describes the cache for diagnostics
type Stats struct {
	Backend         string
	Entries         map[dex.Namespace]int
	PersistFailures int
	ImageFiles      int
	ImageBytes      int64
}

// New creates the store and loads the document cache. A missing or
// unreadable backing document is not an error; the store starts empty.
func New(ctx context.Context, cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		persister: cfg.Persister,
		imageDir:  cfg.ImageDir,
		encoder:   cfg.Encoder,
	}
	s.load(ctx)

	return s, nil
}

func (s *Store) load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.persister.Load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "cache document unreadable, starting empty",
			"backend", s.persister.Describe(),
			"error", err)
		s.data = emptyData()
		return
	}
	if data == nil {
		data = emptyData()
	}
	for _, ns := range dex.DocumentNamespaces() {
		if data[ns] == nil {
			data[ns] = make(map[string]json.RawMessage)
		}
	}
	s.data = data

	slog.DebugContext(ctx, "cache document loaded",
		"backend", s.persister.Describe(),
		"species", len(data[dex.NamespaceSpecies]))
}

// Get returns a copy of the cached document. It never touches the network.
func (s *Store) Get(_ context.Context, ns dex.Namespace, key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[ns][key]
	if !ok {
		return nil, false
	}
	return clone(value), true
}

// Set replaces the entry and persists the whole document before returning.
func (s *Store) Set(ctx context.Context, ns dex.Namespace, key string, value json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[ns] == nil {
		s.data[ns] = make(map[string]json.RawMessage)
	}
	s.data[ns][key] = clone(value)
	s.persistLocked(ctx)
}

// Delete removes one entry, used to drop documents that no longer decode
func (s *Store) Delete(ctx context.Context, ns dex.Namespace, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[ns][key]; !ok {
		return
	}
	delete(s.data[ns], key)
	s.persistLocked(ctx)
}

// Clear empties one namespace
func (s *Store) Clear(ctx context.Context, ns dex.Namespace) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[ns] = make(map[string]json.RawMessage)
	s.persistLocked(ctx)
}

// Stats reports entry counts and image usage
func (s *Store) Stats(ctx context.Context) *Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make(map[dex.Namespace]int, len(s.data))
	for ns, values := range s.data {
		entries[ns] = len(values)
	}

	files, size := s.imageUsageLocked(ctx)
	return &Stats{
		Backend:         s.persister.Describe(),
		Entries:         entries,
		PersistFailures: s.failures,
		ImageFiles:      files,
		ImageBytes:      size,
	}
}

// persistLocked writes the whole document. Failures are logged and counted.
func (s *Store) persistLocked(ctx context.Context) {
	if err := s.persister.Save(ctx, s.data); err != nil {
		s.failures++
		slog.WarnContext(ctx, "failed to persist cache",
			"backend", s.persister.Describe(),
			"error", err)
	}
}

func clone(value json.RawMessage) json.RawMessage {
	if value == nil {
		return nil
	}
	out := make(json.RawMessage, len(value))
	copy(out, value)
	return out
}
