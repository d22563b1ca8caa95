package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/emojipick/internal/clipboard"
	"github.com/jask/emojipick/internal/config"
	"github.com/jask/emojipick/internal/database"
	"github.com/jask/emojipick/internal/database/repository"
	"github.com/jask/emojipick/internal/emoji"
	"github.com/jask/emojipick/internal/prefs"
	"github.com/jask/emojipick/internal/service"
	"github.com/jask/emojipick/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadOrInit()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Everything that can fail fatally runs while log still reaches stderr.
	dataset, err := loadDataset(cfg.Data)
	if err != nil {
		log.Fatalf("load emoji: %v", err)
	}
	services, db, err := buildServices(cfg)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if db != nil {
		defer closeDB(db)
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "emojipick")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("loaded %d emoji", dataset.Len())

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	app := tui.New(ctx, cfg, dataset.Records(), services)
	if state, err := prefs.LoadState(); err != nil {
		log.Printf("warn: load state: %v", err)
	} else if state.Category != "" {
		app.SelectCategory(state.Category)
	}

	p := tea.NewProgram(app, opts...)
	final, err := p.Run()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if a, ok := final.(*tui.App); ok {
		if err := prefs.SaveState(prefs.State{Category: a.Category()}); err != nil {
			log.Printf("warn: save state: %v", err)
		}
	}
}

// loadDataset returns the builtin records plus the optional extra file.
func loadDataset(c config.DataConfig) (*emoji.Dataset, error) {
	dataset := emoji.Builtin()
	if c.ExtraFile == "" {
		return dataset, nil
	}
	extra, err := emoji.LoadFile(c.ExtraFile)
	if err != nil {
		return nil, err
	}
	return dataset.Extend(extra)
}

// buildServices wires the copy flow. The returned db is nil when history is
// disabled.
func buildServices(cfg config.Config) (tui.Services, *sql.DB, error) {
	copier := &service.CopyService{Clipboard: clipboardWriter(cfg.Clipboard)}
	services := tui.Services{Copy: copier}
	if !cfg.History.Enabled {
		return services, nil, nil
	}
	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		return tui.Services{}, nil, err
	}
	copier.History = repository.NewHistoryRepo(db)
	services.Maintenance = &service.MaintenanceService{DB: db}
	return services, db, nil
}

func clipboardWriter(c config.ClipboardConfig) clipboard.Writer {
	if c.Backend == config.BackendNone {
		return clipboard.Discard{}
	}
	// stdout belongs to the renderer; the terminal reads OSC 52 from stderr too.
	return clipboard.NewOSC52(os.Stderr, c.Tmux, c.Screen)
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Printf("close db: %v", err)
	}
}
