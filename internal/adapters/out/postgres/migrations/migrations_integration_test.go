package migrations_test

import (
	"context"
	"testing"

	"fooddelivery/internal/adapters/out/postgres/migrations"
	"fooddelivery/internal/adapters/out/postgres/pgtest"

	"github.com/stretchr/testify/require"
)

func TestMigrations_UpDown(t *testing.T) {
	pg, err := pgtest.Start(context.Background())
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })
	require.NoError(t, err)

	version, dirty, err := migrations.Version(pg.DSN)
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), version)

	require.NoError(t, migrations.Up(pg.DSN), "re-applying is a no-op")

	require.True(t, pg.DB.Migrator().HasTable("orders"))
	require.True(t, pg.DB.Migrator().HasTable("loyalty_credits"))

	require.NoError(t, migrations.Down(pg.DSN))
	require.False(t, pg.DB.Migrator().HasTable("orders"))

	version, _, err = migrations.Version(pg.DSN)
	require.NoError(t, err)
	require.Zero(t, version)
}
