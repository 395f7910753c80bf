package memstore

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tododemo/internal/model"
)

func TestAddNonBlank(t *testing.T) {
	s := New(nil)
	s.SetEntry("  buy milk ")

	it, ok := s.Submit()
	if !ok {
		t.Fatal("expected submit to add an item")
	}
	want := []model.Item{{ID: it.ID, Text: "buy milk", Completed: false}}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %+v, want %+v", got, want)
	}
	if got := s.Counts(); got != (model.Counts{Total: 1, Completed: 0, Pending: 1}) {
		t.Fatalf("counts = %+v, want {1 0 1}", got)
	}
	if s.Entry() != "" {
		t.Errorf("entry = %q, want cleared", s.Entry())
	}
}

func TestAddBlankIsNoop(t *testing.T) {
	s := New([]model.Item{{ID: 1, Text: "a"}})
	s.SetEntry("   ")

	if _, ok := s.Submit(); ok {
		t.Fatal("blank submit reported an add")
	}
	if _, ok := s.Add("\t\n"); ok {
		t.Fatal("blank add reported an add")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if s.Entry() != "   " {
		t.Errorf("entry = %q, want it left untouched", s.Entry())
	}
}

func TestToggle(t *testing.T) {
	t.Run("flips exactly one", func(t *testing.T) {
		s := New([]model.Item{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}})
		if !s.Toggle(1) {
			t.Fatal("toggle(1) reported no match")
		}
		want := []model.Item{{ID: 1, Text: "a", Completed: true}, {ID: 2, Text: "b"}}
		if got := s.Items(); !reflect.DeepEqual(got, want) {
			t.Fatalf("items = %+v, want %+v", got, want)
		}
	})

	t.Run("missing id is a noop", func(t *testing.T) {
		s := New([]model.Item{{ID: 1, Text: "a"}, {ID: 2, Text: "b", Completed: true}})
		before := s.Items()
		if s.Toggle(9999) {
			t.Fatal("toggle(9999) reported a match")
		}
		if got := s.Items(); !reflect.DeepEqual(got, before) {
			t.Fatalf("items changed: %+v -> %+v", before, got)
		}
	})

	t.Run("twice restores", func(t *testing.T) {
		s := New([]model.Item{{ID: 7, Text: "a", Completed: true}})
		s.Toggle(7)
		s.Toggle(7)
		if !s.Items()[0].Completed {
			t.Fatal("double toggle did not restore completed=true")
		}
	})
}

func TestDeletePreservesOrder(t *testing.T) {
	a, b, c := model.Item{ID: 1, Text: "A"}, model.Item{ID: 2, Text: "B"}, model.Item{ID: 3, Text: "C"}
	s := New([]model.Item{a, b, c})

	if !s.Delete(b.ID) {
		t.Fatal("delete reported no match")
	}
	if got := s.Items(); !reflect.DeepEqual(got, []model.Item{a, c}) {
		t.Fatalf("items = %+v, want [A C]", got)
	}
	if s.Delete(b.ID) {
		t.Fatal("second delete of the same id reported a match")
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
}

func TestFilterPurity(t *testing.T) {
	done := model.Item{ID: 1, Text: "done", Completed: true}
	open := model.Item{ID: 2, Text: "open"}
	s := New([]model.Item{done, open})
	before := s.Items()

	s.SetFilter(model.Completed)
	if got := s.Visible(); !reflect.DeepEqual(got, []model.Item{done}) {
		t.Fatalf("visible(completed) = %+v, want [done]", got)
	}
	s.SetFilter(model.Active)
	if got := s.Visible(); !reflect.DeepEqual(got, []model.Item{open}) {
		t.Fatalf("visible(active) = %+v, want [open]", got)
	}
	s.SetFilter(model.All)
	if got := s.Visible(); !reflect.DeepEqual(got, before) {
		t.Fatalf("visible(all) = %+v, want %+v", got, before)
	}
	if got := s.Items(); !reflect.DeepEqual(got, before) {
		t.Fatalf("SetFilter mutated items: %+v", got)
	}
}

func TestVisibleIsACopy(t *testing.T) {
	s := New([]model.Item{{ID: 1, Text: "a"}})
	v := s.Visible()
	v[0].Completed = true
	if s.Items()[0].Completed {
		t.Fatal("mutating Visible() leaked into the store")
	}
}

func TestNewNormalizesSeed(t *testing.T) {
	seed := []model.Item{
		{ID: 5, Text: " five "},
		{ID: 0, Text: "zero"},
		{ID: 5, Text: "dup"},
		{ID: 2, Text: "   "},
	}
	s := New(seed)
	got := s.Items()
	want := []model.Item{
		{ID: 5, Text: "five"},
		{ID: 6, Text: "zero"},
		{ID: 7, Text: "dup"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %+v, want %+v", got, want)
	}
	if it, _ := s.Add("next"); it.ID != 8 {
		t.Fatalf("next id = %d, want 8", it.ID)
	}

	seed[0].Text = "changed"
	if s.Items()[0].Text != "five" {
		t.Fatal("store shares the seed slice")
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	s := New(nil)
	a, _ := s.Add("a")
	s.Delete(a.ID)
	b, _ := s.Add("b")
	if b.ID == a.ID {
		t.Fatalf("id %d reused after delete", a.ID)
	}
}

func TestWithFilter(t *testing.T) {
	s := New([]model.Item{{ID: 1, Text: "a", Completed: true}}, WithFilter(model.Active))
	if s.Filter() != model.Active {
		t.Fatalf("filter = %v, want active", s.Filter())
	}
	if len(s.Visible()) != 0 {
		t.Fatal("expected no active items")
	}
}

func TestNoopsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(nil, WithLogger(logger))

	s.Toggle(42)
	s.Delete(43)
	s.Add(" ")

	out := buf.String()
	for _, want := range []string{"toggle: no such item", "delete: no such item", "add: blank text ignored"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
