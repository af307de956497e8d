package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/pflag"

	"github.com/vsit/academicagent/app"
	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/config"
	"github.com/vsit/academicagent/internal/database"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/internal/logging"
	"github.com/vsit/academicagent/internal/tutor"
	"github.com/vsit/academicagent/views"
)

func main() {
	ctx := context.Background()

	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("flags: %v", err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog.Close()

	if cfg.Catalog.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Catalog.Path), 0o755); err != nil {
			log.Fatalf("mkdir catalog dir: %v", err)
		}
	}
	db, err := database.Open(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("open catalog: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	nav := core.NewNavigator()
	defer app.LogNavigation(nav, logger)()

	m := app.NewModel(ctx, nav, views.Deps{
		Catalog:      repository.NewCatalog(db),
		Tutor:        tutor.New(nil),
		Log:          logger,
		StudentName:  cfg.Session.StudentName,
		QuizDuration: cfg.Quiz.Duration,
		ReplyDelay:   cfg.Tutor.ReplyDelay,
		ExportDir:    cfg.Export.Dir,
	}, cfg.Keys.Bindings)

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		m.EnableMouse(zone.New())
		opts = append(opts, tea.WithMouseCellMotion())
	}
	logger.Info("starting", "catalog", cfg.Catalog.Path, "export_dir", cfg.Export.Dir)

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
