package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func tableExists(ctx context.Context, t *testing.T, db *bun.DB, name string) bool {
	t.Helper()

	var count int
	err := db.NewSelect().
		TableExpr("sqlite_master").
		ColumnExpr("COUNT(*)").
		Where("type = 'table' AND name = ?", name).
		Scan(ctx, &count)
	require.NoError(t, err)
	return count > 0
}

func TestBringUpToDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)

	group, err := BringUpToDate(ctx, db)
	require.NoError(t, err)
	assert.NotZero(t, group.ID)

	for _, table := range []string{"users", "companies", "jobs", "applications"} {
		assert.True(t, tableExists(ctx, t, db, table), table)
	}

	// Running again is a no-op.
	group, err = BringUpToDate(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, group.ID)
}

func TestRollback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)

	_, err := BringUpToDate(ctx, db)
	require.NoError(t, err)

	// Both migrations were applied as a single group, so one rollback
	// undoes them all.
	group, err := NewMigrator(db).Rollback(ctx)
	require.NoError(t, err)
	assert.Len(t, group.Migrations, 2)

	for _, table := range []string{"users", "companies", "jobs", "applications"} {
		assert.False(t, tableExists(ctx, t, db, table), table)
	}
}
