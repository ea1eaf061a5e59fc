package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/levocale/internal/menu"
	"github.com/atomicstack/levocale/internal/system"
	"github.com/atomicstack/levocale/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
}

// Run bootstraps and executes the Bubble Tea program against the host system.
func Run(cfg Config) error {
	return RunWith(cfg, system.New())
}

// RunWith executes the program using the supplied provider. The terminal is
// restored by Bubble Tea on every exit path before the error is returned.
func RunWith(cfg Config, provider menu.Provider, opts ...tea.ProgramOption) error {
	model := ui.NewModel(provider, cfg.Width, cfg.Height, cfg.ShowFooter)
	options := append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(model, options...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
