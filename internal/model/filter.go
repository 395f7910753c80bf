package model

import (
	"fmt"
	"strings"
)

// Filter selects which items a view shows. The zero value is All.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

// Filters lists every filter in display order.
var Filters = []Filter{All, Active, Completed}

func (f Filter) String() string {
	switch f {
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return "all"
	}
}

// ParseFilter accepts all, active or completed (any case).
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return All, nil
	case "active":
		return Active, nil
	case "completed":
		return Completed, nil
	}
	return All, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// Match reports whether it passes the filter.
func (f Filter) Match(it Item) bool {
	switch f {
	case Active:
		return !it.Completed
	case Completed:
		return it.Completed
	default:
		return true
	}
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter {
	return Filters[(f.index()+1)%len(Filters)]
}

// Prev cycles in the opposite direction.
func (f Filter) Prev() Filter {
	return Filters[(f.index()+len(Filters)-1)%len(Filters)]
}

func (f Filter) index() int {
	for i, x := range Filters {
		if x == f {
			return i
		}
	}
	return 0
}
