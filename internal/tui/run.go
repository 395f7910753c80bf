package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tododemo/internal/store/memstore"
	"github.com/idilsaglam/tododemo/internal/ui"
)

// Run starts the program on the alternate screen and blocks until the user
// quits. Nothing is persisted; the final counts are logged.
func Run(store *memstore.Store, labels ui.Labels, logger *log.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(store, labels, logger), opts...)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && logger != nil {
		c := fm.Store().Counts()
		logger.Info("session ended", "total", c.Total, "completed", c.Completed, "pending", c.Pending)
	}
	return nil
}
