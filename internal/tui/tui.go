package tui

import (
	"context"

	"todo-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Run starts the interactive list on the alternate screen and blocks until
// the user quits or ctx is cancelled.
func Run(ctx context.Context, s *session.Session, logger *log.Logger) error {
	applyThemePreference()
	applyColorProfilePreference()

	m := newAppModel(ctx, s, logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
