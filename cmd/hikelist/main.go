package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hikelist/internal/config"
	"github.com/jask/hikelist/internal/hikes"
	"github.com/jask/hikelist/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// the terminal belongs to the UI, so the trace goes to a file
	if cfg.Log.Path == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := tea.LogToFile(cfg.Log.Path, "hikelist")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	}

	screen := tui.New(cfg.UI, hikes.Default(), tui.LogSelection(nil))

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(screen, opts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
