package database

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/joblyhq/jobly/pkg/config"
	"github.com/joblyhq/jobly/pkg/migrations"
	"github.com/joblyhq/jobly/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestConfig uses a file so that the WAL and busy timeout pragmas apply.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewForTest()
	cfg.DatabaseFilePath = filepath.Join(t.TempDir(), "test.db")
	cfg.DatabaseConnectRetryDelay = time.Millisecond
	return cfg
}

func TestNew(t *testing.T) {
	t.Parallel()

	db, err := New(newTestConfig(t))
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var fk int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestNew_InMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := New(config.NewForTest())
	require.NoError(t, err)
	defer db.Close()

	// The pool keeps a single connection, so the schema survives between
	// queries.
	_, err = migrations.BringUpToDate(ctx, db)
	require.NoError(t, err)

	count, err := db.NewSelect().Model((*models.Job)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// TestConcurrentWrites makes sure concurrent requests creating jobs don't
// surface "database is locked" errors.
func TestConcurrentWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := New(newTestConfig(t))
	require.NoError(t, err)
	defer db.Close()

	_, err = migrations.BringUpToDate(ctx, db)
	require.NoError(t, err)

	_, err = db.NewInsert().Model(&models.Company{
		Handle:    "acme",
		Name:      "Acme",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}).Exec(ctx)
	require.NoError(t, err)

	const numWorkers = 10
	const writesPerWorker = 20

	var wg sync.WaitGroup
	errs := make(chan error, numWorkers*writesPerWorker)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := 0; i < writesPerWorker; i++ {
				job := &models.Job{
					Title:         fmt.Sprintf("worker-%d-job-%d", workerID, i),
					CompanyHandle: "acme",
					CreatedAt:     time.Now(),
					UpdatedAt:     time.Now(),
				}
				if _, err := db.NewInsert().Model(job).Exec(ctx); err != nil {
					errs <- fmt.Errorf("worker %d write %d: %w", workerID, i, err)
				}
			}
		}(w)
	}

	wg.Wait()
	close(errs)

	var allErrors []error
	for err := range errs {
		allErrors = append(allErrors, err)
	}
	assert.Empty(t, allErrors)

	count, err := db.NewSelect().Model((*models.Job)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, numWorkers*writesPerWorker, count)
}
