package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/tododemo/internal/model"
	"github.com/idilsaglam/tododemo/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct{ model.Item }

func (i listItem) FilterValue() string { return i.Text }

func toListItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{it})
	}
	return out
}

// itemDelegate renders one line per item. The cursor marker is only drawn
// while the list has focus.
type itemDelegate struct {
	cursor bool
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	box, text := t.Muted.Render(t.BoxUnchecked), it.Text
	if it.Completed {
		box, text = t.Success.Render(t.BoxChecked), t.Done.Render(it.Text)
	}
	prefix := "  "
	if d.cursor && index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprint(w, ansi.Truncate(prefix+box+" "+text, m.Width(), "…"))
}
