// Package store owns the authoritative todo list and its file persistence.
//
// A Store is built once per process and handed to whatever needs it. It is
// not safe for concurrent use; one goroutine (the UI loop or a CLI command)
// drives it.
package store

import (
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store/tsvstore"
)

// DefaultFileName is used when no data file is configured.
const DefaultFileName = "TodoList.txt"

type Store struct {
	path  string
	items []*model.Item
	now   func() time.Time
	log   zerolog.Logger
}

type Option func(*Store)

// WithClock overrides time.Now; "today" for the deadline policy derives from it.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l.With().Str("component", "store").Logger() }
}

// New returns an empty store bound to path. Call Load to populate it.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultFileName
	}
	s := &Store{
		path:  path,
		items: []*model.Item{},
		now:   time.Now,
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Path() string { return s.path }

// Today is the current calendar day according to the store's clock.
func (s *Store) Today() model.Date { return model.Today(s.now()) }

// Items returns the live list, not a copy. Callers must not modify it.
func (s *Store) Items() []*model.Item { return s.items }

func (s *Store) Len() int { return len(s.items) }

func (s *Store) Contains(it *model.Item) bool { return model.IndexOf(s.items, it) >= 0 }

// Load replaces the list with the file's contents.
// On error the in-memory list is left as it was.
func (s *Store) Load() error {
	items, err := tsvstore.ReadFile(s.path)
	if err != nil {
		s.log.Debug().Err(err).Str("path", s.path).Msg("load failed")
		return err
	}
	s.items = items
	s.log.Debug().Str("path", s.path).Int("items", len(items)).Msg("loaded")
	return nil
}

// Save overwrites the file with the list in store order.
func (s *Store) Save() error {
	if err := tsvstore.WriteFile(s.path, s.items); err != nil {
		s.log.Debug().Err(err).Str("path", s.path).Msg("save failed")
		return err
	}
	s.log.Debug().Str("path", s.path).Int("items", len(s.items)).Msg("saved")
	return nil
}

// Add appends it unless its deadline is before today. A past deadline is
// dropped without any error; use Contains to find out.
func (s *Store) Add(it *model.Item) {
	if it == nil {
		return
	}
	if it.Deadline.Before(s.Today()) {
		s.log.Debug().Str("description", it.Description).Stringer("deadline", it.Deadline).Msg("dropped: deadline in the past")
		return
	}
	s.items = append(s.items, it)
}

// Delete removes it by identity. Absent or nil items are ignored.
func (s *Store) Delete(it *model.Item) {
	i := model.IndexOf(s.items, it)
	if i < 0 {
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
}
