package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles, symbols and the panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Tab, ActiveTab                lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked   string
	SymOK, SymFail, SymPending string
	BarFilled, BarEmpty        string
}

var current = ThemeFor("classic")

// SetTheme switches the process-wide theme. Unknown names select classic.
func SetTheme(name string) { current = ThemeFor(name) }

// Current returns the active theme.
func Current() Theme { return current }

// ThemeFor builds a named theme.
func ThemeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Done:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true),
			Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Tab:          lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8")),
			ActiveTab:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			BoxUnchecked: "◻",
			BoxChecked:   "◼",
			SymOK:        "✔",
			SymFail:      "✖",
			SymPending:   "•",
			BarFilled:    "█",
			BarEmpty:     "░",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:         "mono",
			Title:        plain.Bold(true),
			Muted:        plain,
			Accent:       plain,
			Success:      plain,
			Error:        plain,
			Pending:      plain,
			Done:         plain,
			Selected:     plain.Bold(true),
			Tab:          plain.Padding(0, 1),
			ActiveTab:    plain.Padding(0, 1).Reverse(true),
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.NoColor{},
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
			SymOK:        "ok",
			SymFail:      "error:",
			SymPending:   "-",
			BarFilled:    "#",
			BarEmpty:     ".",
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        lipgloss.NewStyle().Bold(true),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Tab:          lipgloss.NewStyle().Padding(0, 1).Faint(true),
			ActiveTab:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("8"),
			BoxUnchecked: "☐",
			BoxChecked:   "☑",
			SymOK:        "✔",
			SymFail:      "✖",
			SymPending:   "•",
			BarFilled:    "█",
			BarEmpty:     "░",
		}
	}
}
