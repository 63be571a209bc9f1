package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationRead   = "read"
)

// Operation is the handle of one in-flight request against a store.
type Operation struct {
	ID        string
	Kind      string
	StartedAt time.Time

	done chan struct{}
	once sync.Once
	err  error
}

type OperationInfo struct {
	ID        string    `json:"id"`
	Kind      string    `json:"tipo"`
	StartedAt time.Time `json:"inicio"`
}

// Done is closed once the operation finished.
func (o *Operation) Done() <-chan struct{} {
	return o.done
}

// Err returns the outcome of a finished operation and nil while it is still running.
func (o *Operation) Err() error {
	select {
	case <-o.done:
		return o.err
	default:
		return nil
	}
}

func (o *Operation) info() OperationInfo {
	return OperationInfo{ID: o.ID, Kind: o.Kind, StartedAt: o.StartedAt}
}

// Begin registers a new in-flight operation of the given kind.
func (s *Store[T]) Begin(kind string) *Operation {
	op := &Operation{
		ID:        uuid.NewString(),
		Kind:      kind,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}

	s.mu.Lock()
	s.pending[op.ID] = op
	s.mu.Unlock()

	return op
}

// Finish records the outcome of op and removes it from the pending set.
func (s *Store[T]) Finish(op *Operation, err error) {
	s.mu.Lock()
	delete(s.pending, op.ID)
	s.mu.Unlock()

	op.once.Do(func() {
		op.err = err
		close(op.done)
	})
}

// Pending lists the in-flight operations, oldest first.
func (s *Store[T]) Pending() []OperationInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pendingInfo()
}

func (s *Store[T]) pendingInfo() []OperationInfo {
	out := make([]OperationInfo, 0, len(s.pending))
	for _, op := range s.pending {
		out = append(out, op.info())
	}

	slices.SortFunc(out, func(a, b OperationInfo) int {
		if c := a.StartedAt.Compare(b.StartedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	return out
}
