package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/emojipick/internal/database"
	"github.com/jask/emojipick/internal/database/repository"
)

func TestClearHistory(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewHistoryRepo(db)
	for _, g := range []string{"🐶", "❤️"} {
		_, err := repo.Add(ctx, g)
		require.NoError(t, err)
	}

	svc := &MaintenanceService{DB: db}
	require.NoError(t, svc.ClearHistory(ctx))

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, recent)

	// The schema survives so copying keeps working.
	_, err = repo.Add(ctx, "🍋")
	require.NoError(t, err)
}

func TestClearHistoryWithoutDB(t *testing.T) {
	t.Parallel()

	var svc *MaintenanceService
	require.Error(t, svc.ClearHistory(context.Background()))
	require.Error(t, (&MaintenanceService{}).ClearHistory(context.Background()))
}
