package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yhlin/american-dream/internal/store"
	"github.com/yhlin/american-dream/internal/util"
)

// Run boots the TUI program and blocks until it exits. db may be nil when
// running with --no-persist.
func Run(ctx context.Context, db *store.DB, cfg util.Config, version string) error {
	m, err := initialModel(ctx, db, cfg, version)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
