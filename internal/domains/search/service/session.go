package service

import (
	"context"
	"sync"
	"time"

	"tourbook/config"
	"tourbook/internal/domains/search/model"
	"tourbook/shared/lookup"
)

// Session is the state of the admin search box: visibility, the typed query
// and the results of the last query that survived the debounce window.
type Session struct {
	mu       sync.Mutex
	search   Search
	delay    time.Duration
	open     bool
	query    string
	results  []model.Result
	gen      uint64
	timer    *time.Timer
	onResult func(query string, results []model.Result)
}

func NewSession(search Search, cfg *config.Config) *Session {
	return &Session{
		search:  search,
		delay:   time.Duration(cfg.App.Search.DebounceMillis) * time.Millisecond,
		results: []model.Result{},
	}
}

// OnResults registers fn to be called after each search that is applied.
func (s *Session) OnResults(fn func(query string, results []model.Result)) {
	s.mu.Lock()
	s.onResult = fn
	s.mu.Unlock()
}

// Toggle flips visibility and reports whether the box is now open.
func (s *Session) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		s.closeLocked()

		return false
	}

	s.open = true

	return true
}

func (s *Session) Open() {
	s.mu.Lock()
	s.open = true
	s.mu.Unlock()
}

// Close hides the box, clears the query and drops any pending search.
func (s *Session) Close() {
	s.mu.Lock()
	s.closeLocked()
	s.mu.Unlock()
}

func (s *Session) closeLocked() {
	s.open = false
	s.query = ""
	s.results = []model.Result{}
	s.cancelLocked()
}

func (s *Session) cancelLocked() {
	s.gen++

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.open
}

func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query
}

func (s *Session) Results() []model.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Result, len(s.results))
	copy(out, s.results)

	return out
}

// Type records the query and schedules a search after the debounce delay.
// A newer call within the delay supersedes the pending one.
func (s *Session) Type(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.cancelLocked()

	if lookup.Normalize(query) == "" {
		s.results = []model.Result{}

		return
	}

	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(ctx, gen, query)
	})
}

func (s *Session) run(ctx context.Context, gen uint64, query string) {
	if ctx.Err() != nil {
		return
	}

	results := s.search.Search(ctx, query)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()

		return
	}

	s.results = results
	s.timer = nil
	notify := s.onResult
	s.mu.Unlock()

	if notify != nil {
		notify(query, results)
	}
}
