package memstore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/idilsaglam/tododemo/internal/model"
)

// ErrBadEvent is wrapped by every ParseEvent failure.
var ErrBadEvent = errors.New("bad event")

// EventKind names a user action.
type EventKind string

const (
	EventType   EventKind = "type"
	EventSubmit EventKind = "submit"
	EventAdd    EventKind = "add"
	EventToggle EventKind = "toggle"
	EventDelete EventKind = "delete"
	EventFilter EventKind = "filter"
)

// Event is one scripted user action.
type Event struct {
	Kind   EventKind
	Text   string
	ID     int
	Filter model.Filter
}

// ParseEvent reads one line such as "add buy milk", "toggle 3" or
// "filter active". Text arguments keep their inner spacing.
func ParseEvent(line string) (Event, error) {
	line = strings.TrimSpace(line)
	verb, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		verb, rest = line[:i], strings.TrimSpace(line[i:])
	}

	switch EventKind(strings.ToLower(verb)) {
	case EventType:
		return Event{Kind: EventType, Text: rest}, nil
	case EventSubmit:
		if rest != "" {
			return Event{}, fmt.Errorf("%w: submit takes no argument", ErrBadEvent)
		}
		return Event{Kind: EventSubmit}, nil
	case EventAdd:
		return Event{Kind: EventAdd, Text: rest}, nil
	case EventToggle, EventDelete:
		if rest == "" {
			return Event{}, fmt.Errorf("%w: %s needs an id", ErrBadEvent, verb)
		}
		id, err := strconv.Atoi(rest)
		if err != nil {
			return Event{}, fmt.Errorf("%w: %s: not a number: %q", ErrBadEvent, verb, rest)
		}
		return Event{Kind: EventKind(strings.ToLower(verb)), ID: id}, nil
	case EventFilter:
		if rest == "" {
			return Event{}, fmt.Errorf("%w: filter needs a name", ErrBadEvent)
		}
		f, err := model.ParseFilter(rest)
		if err != nil {
			return Event{}, fmt.Errorf("%w: %v", ErrBadEvent, err)
		}
		return Event{Kind: EventFilter, Filter: f}, nil
	}
	return Event{}, fmt.Errorf("%w: unknown action %q", ErrBadEvent, verb)
}

// Apply runs ev against the store. Well-formed events never fail; an
// unknown kind is the only error.
func (s *Store) Apply(ev Event) error {
	switch ev.Kind {
	case EventType:
		s.SetEntry(ev.Text)
	case EventSubmit:
		s.Submit()
	case EventAdd:
		s.Add(ev.Text)
	case EventToggle:
		s.Toggle(ev.ID)
	case EventDelete:
		s.Delete(ev.ID)
	case EventFilter:
		s.SetFilter(ev.Filter)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrBadEvent, ev.Kind)
	}
	return nil
}
