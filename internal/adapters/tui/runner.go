package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/tbreslin/cadence/internal/config"
	"github.com/tbreslin/cadence/internal/engine"
)

// Options configures the timer interface.
type Options struct {
	Theme       *config.ThemeConfig
	CuesEnabled bool
	CueToggle   func(bool)
}

// Run starts the timer interface around eng and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, eng *engine.Engine, opts Options) error {
	model := NewModel(eng, opts.Theme)
	model.SetCueToggle(opts.CuesEnabled, opts.CueToggle)

	// Seed the viewport before the first WindowSizeMsg arrives.
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		model.SetSize(w, h)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			program.Quit()
		case <-done:
		}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
