package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/emojipick/internal/database"
	"github.com/jask/emojipick/internal/database/repository"
)

// MaintenanceService houses destructive actions surfaced through the TUI.
type MaintenanceService struct {
	DB *sql.DB
}

// ClearHistory wipes the copy history. It keeps the schema intact so the app
// can continue running.
func (s *MaintenanceService) ClearHistory(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		if err := repository.NewHistoryRepo(tx).Clear(ctx); err != nil {
			return fmt.Errorf("clear copy_history: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
