// Package store holds one ordered, in-memory entity collection together with its
// request state (loading flag, last error and the selected entity).
//
// Every mutation builds the complete next collection and swaps it in under the
// write lock, so a reader only ever sees a whole snapshot.
package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

var ErrNotFound = errors.New("entity not found")

// Seeder provides the initial contents of a store.
type Seeder[T any] interface {
	Seed(ctx context.Context) ([]T, error)
}

// Status is a point-in-time view of the request state of a store.
type Status struct {
	Entity  string          `json:"entidad"`
	Loading bool            `json:"cargando"`
	Error   string          `json:"error,omitempty"`
	Count   int             `json:"total"`
	Pending []OperationInfo `json:"operaciones"`
}

type Store[T any] struct {
	mu       sync.RWMutex
	name     string
	idOf     func(T) string
	items    []T
	loading  bool
	err      string
	selected *T
	pending  map[string]*Operation
	version  uint64
	loaded   chan struct{}
	loads    int
}

func New[T any](name string, idOf func(T) string) *Store[T] {
	return &Store[T]{
		name:    name,
		idOf:    idOf,
		items:   []T{},
		pending: map[string]*Operation{},
		loaded:  make(chan struct{}),
	}
}

// NewWithItems returns a store already holding items, skipping the simulated load.
func NewWithItems[T any](name string, idOf func(T) string, items []T) *Store[T] {
	s := New(name, idOf)
	s.items = slices.Clone(items)
	close(s.loaded)

	return s
}

func (s *Store[T]) Name() string {
	return s.name
}

// Load marks the store as loading, waits delay and fills the collection from seeder.
// On failure the collection is left empty and the error message is kept.
// AwaitLoad callers are released once the last concurrent Load returned.
func (s *Store[T]) Load(ctx context.Context, seeder Seeder[T], delay time.Duration) error {
	s.mu.Lock()
	if s.loads == 0 && isClosed(s.loaded) {
		s.loaded = make(chan struct{})
	}

	s.loads++
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loads--

		if s.loads == 0 {
			s.loading = false
			close(s.loaded)
		}
		s.mu.Unlock()
	}()

	err := Wait(ctx, delay)

	var items []T
	if err == nil {
		items, err = seeder.Seed(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++

	if err != nil {
		s.items = []T{}
		s.err = err.Error()

		return err
	}

	next := make([]T, len(items))
	copy(next, items)

	s.items = next
	s.err = ""

	return nil
}

// AwaitLoad blocks until no load is in flight. A store built with New counts
// as loading until its first Load returned.
func (s *Store[T]) AwaitLoad(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	select {
	case <-loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isClosed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// Snapshot returns a copy of the current collection in insertion order.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		var zero T

		return zero, false
	}

	return s.items[idx], true
}

// Filter returns the entities matching pred, in collection order.
func (s *Store[T]) Filter(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []T{}

	for _, item := range s.items {
		if pred(item) {
			out = append(out, item)
		}
	}

	return out
}

// Insert appends the entity produced by build. build receives the current
// collection (read-only) so identifiers can be derived while the lock is held.
func (s *Store[T]) Insert(build func(current []T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := build(s.items)
	if err != nil {
		var zero T

		return zero, err
	}

	next := make([]T, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.items = append(next, item)
	s.version++

	return item, nil
}

// Replace applies patch to the entity with the given id, keeping its position.
func (s *Store[T]) Replace(id string, patch func(current T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	idx := s.indexOf(id)
	if idx == -1 {
		return zero, ErrNotFound
	}

	updated, err := patch(s.items[idx])
	if err != nil {
		return zero, err
	}

	next := make([]T, len(s.items))
	copy(next, s.items)
	next[idx] = updated
	s.items = next
	s.version++

	return updated, nil
}

// Remove deletes exactly the entity with the given id, keeping the order of the rest.
func (s *Store[T]) Remove(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	idx := s.indexOf(id)
	if idx == -1 {
		return zero, ErrNotFound
	}

	removed := s.items[idx]

	next := make([]T, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
	s.version++

	if s.selected != nil && s.idOf(*s.selected) == id {
		s.selected = nil
	}

	return removed, nil
}

// Version changes whenever the collection is replaced.
func (s *Store[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Loading is true while the initial load or any operation is in flight.
func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading || len(s.pending) > 0
}

func (s *Store[T]) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.err
}

func (s *Store[T]) SetError(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}

func (s *Store[T]) ClearError() {
	s.SetError("")
}

// Select marks the entity with the given id as selected. It reports false when absent.
func (s *Store[T]) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return false
	}

	item := s.items[idx]
	s.selected = &item

	return true
}

func (s *Store[T]) Selected() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		var zero T

		return zero, false
	}

	return *s.selected, true
}

func (s *Store[T]) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

func (s *Store[T]) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		Entity:  s.name,
		Loading: s.loading || len(s.pending) > 0,
		Error:   s.err,
		Count:   len(s.items),
		Pending: s.pendingInfo(),
	}
}

func (s *Store[T]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item T) bool {
		return s.idOf(item) == id
	})
}

// Wait blocks for d or until ctx is done.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
