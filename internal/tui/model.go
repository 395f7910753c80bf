// Package tui is the interactive todo view: an entry field, filter tabs
// and the visible items, all redrawn from the store on every frame.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tododemo/internal/model"
	"github.com/idilsaglam/tododemo/internal/store/memstore"
	"github.com/idilsaglam/tododemo/internal/ui"
)

type focus int

const (
	focusEntry focus = iota
	focusList
)

// Size used until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model implements tea.Model over a memstore.Store.
type Model struct {
	store  *memstore.Store
	labels ui.Labels
	log    *log.Logger

	input textinput.Model
	list  list.Model
	keys  keyMap
	help  help.Model

	focus    focus
	showHelp bool
	helpView string

	width, height int
}

// New builds the view. The store is owned by the returned model from here on.
func New(store *memstore.Store, labels ui.Labels, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = labels.Placeholder
	ti.CharLimit = 0
	ti.SetValue(store.Entry())
	ti.Focus()

	l := list.New(nil, itemDelegate{}, defaultWidth, defaultHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.KeyMap = listKeys()

	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		store:  store,
		labels: labels,
		log:    logger,
		input:  ti,
		list:   l,
		keys:   defaultKeys(),
		help:   help.New(),
		focus:  focusEntry,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.syncList()
	m.layout()
	return m
}

// Store exposes the underlying store, mainly for the final summary.
func (m Model) Store() *memstore.Store { return m.store }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		if m.showHelp {
			m.helpView = m.renderHelp()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.showHelp {
			if key.Matches(msg, m.keys.Help, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}
		if m.focus == focusEntry {
			return m.updateEntry(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusEntry {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.store.SetEntry(m.input.Value())
		if it, ok := m.store.Submit(); ok {
			m.log.Info("added", "id", it.ID, "text", it.Text)
			m.input.SetValue("")
			m.syncList()
			m.layout()
		}
		return m, nil
	case key.Matches(msg, m.keys.Focus), msg.Type == tea.KeyEsc:
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetEntry(m.input.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.setFocus(focusEntry)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpView = m.renderHelp()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.store.Toggle(it.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.store.Delete(it.ID)
			m.log.Info("deleted", "id", it.ID)
		}
	case key.Matches(msg, m.keys.All):
		m.setFilter(model.All)
	case key.Matches(msg, m.keys.Active):
		m.setFilter(model.Active)
	case key.Matches(msg, m.keys.Completed):
		m.setFilter(model.Completed)
	case key.Matches(msg, m.keys.Prev):
		m.setFilter(m.store.Filter().Prev())
	case key.Matches(msg, m.keys.Next):
		m.setFilter(m.store.Filter().Next())
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.syncList()
	m.layout()
	return m, nil
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusEntry {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.list.SetDelegate(itemDelegate{cursor: f == focusList})
}

func (m *Model) setFilter(f model.Filter) {
	if f != m.store.Filter() {
		m.store.SetFilter(f)
		m.list.Select(0)
	}
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return it.Item, true
}

// syncList reloads the visible items and keeps the selection on one of them.
func (m *Model) syncList() {
	vis := m.store.Visible()
	m.list.SetItems(toListItems(vis))
	if n := len(vis); m.list.Index() >= n {
		m.list.Select(max(n-1, 0))
	}
}

// layout gives the list whatever rows the rest of the frame leaves over.
func (m *Model) layout() {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	inner := max(w-4, 10)
	m.input.Width = max(inner-len(m.input.Prompt)-4-lipgloss.Width(m.labels.AddHint), 10)
	m.help.Width = inner

	// An empty body still takes one row in the frame.
	chrome := lipgloss.Height(ui.Panel(m.sections(""))) - 1
	idx := m.list.Index()
	m.list.SetSize(inner, max(h-chrome, 1))
	m.list.Select(idx)
}

func (m Model) renderHelp() string {
	width := 60
	if m.width > 0 {
		width = max(m.width-8, 20)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.log.Warn("help renderer", "err", err)
		return m.labels.Help
	}
	out, err := r.Render(m.labels.Help)
	if err != nil {
		m.log.Warn("help render", "err", err)
		return m.labels.Help
	}
	return strings.TrimRight(out, "\n")
}

func (m Model) header() []string {
	t := ui.Current()
	counts := m.store.Counts()
	return []string{
		t.Title.Render(m.labels.Title),
		t.Muted.Render(m.labels.Summary(counts)),
		t.Muted.Render(ui.ProgressBar(counts.Completed, counts.Total, 28)),
		"",
	}
}

// sections is the whole frame with body in place of the items.
func (m Model) sections(body string) []string {
	t := ui.Current()
	lines := m.header()

	entry := m.input.View()
	if m.focus == focusEntry {
		entry += "  " + t.Muted.Render(m.labels.AddHint)
	}
	lines = append(lines, entry, "")
	lines = append(lines, m.tabs(), "")
	lines = append(lines, body)
	lines = append(lines, "")
	lines = append(lines, m.help.View(m.keys))
	lines = append(lines, t.Muted.Render(m.labels.Footer))
	return lines
}

func (m Model) View() string {
	if m.showHelp {
		lines := m.header()
		overlay := strings.Split(m.helpView, "\n")
		if m.height > 0 {
			room := max(m.height-len(lines)-2, 1)
			overlay = overlay[:min(len(overlay), room)]
		}
		return ui.Panel(append(lines, overlay...))
	}

	if len(m.list.Items()) == 0 {
		t := ui.Current()
		return ui.Panel(m.sections(t.Muted.Render(m.labels.Empty(m.store.Filter()))))
	}
	return ui.Panel(m.sections(m.list.View()))
}

func (m Model) tabs() string {
	t := ui.Current()
	active := m.store.Filter()
	parts := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		style := t.Tab
		if f == active {
			style = t.ActiveTab
		}
		parts = append(parts, style.Render(m.labels.FilterName(f)))
	}
	return strings.Join(parts, " ")
}
