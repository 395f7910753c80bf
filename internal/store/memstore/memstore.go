// Package memstore holds the in-memory todo list behind a single view.
//
// A Store is owned by one view and is not safe for concurrent use. Every
// mutation is total: blank adds and toggles or deletes of unknown ids are
// no-ops that report false and log at debug level.
package memstore

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tododemo/internal/model"
)

// Store is the ordered item list plus the entry buffer and active filter.
type Store struct {
	items  []model.Item
	entry  string
	filter model.Filter
	nextID int
	log    *log.Logger
}

// Option tunes a Store at construction.
type Option func(*Store)

// WithLogger routes no-op diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFilter sets the initial filter.
func WithFilter(f model.Filter) Option {
	return func(s *Store) { s.filter = f }
}

// New builds a store seeded with a copy of seed. Seed items with a
// non-positive or repeated id get a fresh one; blank seed items are dropped.
func New(seed []model.Item, opts ...Option) *Store {
	s := &Store{
		items:  make([]model.Item, 0, len(seed)),
		nextID: 1,
		log:    log.New(io.Discard),
	}
	for _, o := range opts {
		o(s)
	}

	for _, it := range seed {
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	seen := make(map[int]bool, len(seed))
	for _, it := range seed {
		it.Text = strings.TrimSpace(it.Text)
		if it.Text == "" {
			s.log.Debug("seed: dropping blank item", "id", it.ID)
			continue
		}
		if it.ID <= 0 || seen[it.ID] {
			old := it.ID
			it.ID = s.takeID()
			s.log.Debug("seed: reassigned id", "old", old, "new", it.ID)
		}
		seen[it.ID] = true
		s.items = append(s.items, it)
	}
	return s
}

func (s *Store) takeID() int {
	id := s.nextID
	s.nextID++
	return id
}

// Entry returns the uncommitted text.
func (s *Store) Entry() string { return s.entry }

// SetEntry replaces the uncommitted text. It is not validated here.
func (s *Store) SetEntry(text string) { s.entry = text }

// Add appends a new pending item with the trimmed text and clears the entry
// buffer. Blank text changes nothing and returns false.
func (s *Store) Add(text string) (model.Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.log.Debug("add: blank text ignored")
		return model.Item{}, false
	}
	it := model.Item{ID: s.takeID(), Text: text}
	s.items = append(s.items, it)
	s.entry = ""
	s.log.Debug("add", "id", it.ID, "text", it.Text)
	return it, true
}

// Submit commits the entry buffer.
func (s *Store) Submit() (model.Item, bool) {
	return s.Add(s.entry)
}

// Toggle flips Completed on the item with the given id.
func (s *Store) Toggle(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("toggle: no such item", "id", id)
		return false
	}
	s.items[i].Completed = !s.items[i].Completed
	s.log.Debug("toggle", "id", id, "completed", s.items[i].Completed)
	return true
}

// Delete removes the item with the given id, keeping the order of the rest.
func (s *Store) Delete(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("delete: no such item", "id", id)
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.log.Debug("delete", "id", id)
	return true
}

func (s *Store) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Filter returns the active filter.
func (s *Store) Filter() model.Filter { return s.filter }

// SetFilter replaces the active filter. Items are untouched.
func (s *Store) SetFilter(f model.Filter) {
	s.filter = f
	s.log.Debug("filter", "filter", f)
}

// Visible returns the items passing the active filter, in list order.
func (s *Store) Visible() []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if s.filter.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Counts tallies all items regardless of filter.
func (s *Store) Counts() model.Counts {
	return model.CountItems(s.items)
}

// Items returns a copy of every item.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len is the number of items.
func (s *Store) Len() int { return len(s.items) }
