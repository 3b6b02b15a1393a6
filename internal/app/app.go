package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/dockbar/internal/catalog"
	"github.com/atomicstack/dockbar/internal/logging/events"
	"github.com/atomicstack/dockbar/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	ItemsPath  string
	FPS        int
	Width      int
	Height     int
	ShowFooter bool
}

const catalogDebounce = 250 * time.Millisecond

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	items := catalog.Default()
	var watcher *catalog.Watcher
	if path := strings.TrimSpace(cfg.ItemsPath); path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			return fmt.Errorf("load item catalog: %w", err)
		}
		items = loaded
		events.Catalog.Loaded(path, len(items))
		watcher, err = catalog.NewWatcher(path, catalogDebounce)
		if err != nil {
			return fmt.Errorf("watch item catalog: %w", err)
		}
		defer watcher.Stop()
	}
	model := ui.NewModel(items, cfg.Width, cfg.Height, cfg.FPS, cfg.ShowFooter, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
