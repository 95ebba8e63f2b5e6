package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalkit/internal/config"
	"github.com/jask/modalkit/internal/store"
	"github.com/jask/modalkit/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := store.RunMigrations(cfg.Database.Path, "internal/store/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if os.Getenv("MODALDEMO_DEBUG") != "" {
		f, err := tea.LogToFile("modaldemo.log", "debug")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	}

	app := tui.New(ctx, cfg, store.NewTaskStore(db))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
