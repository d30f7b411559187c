package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/mockmaster/internal/config"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMigrationCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    MigrationCommand
		wantErr bool
	}{
		{name: "up", args: []string{"up"}, want: MigrationCommand{Action: MigrateUp}},
		{name: "action is case insensitive", args: []string{" VERSION "}, want: MigrationCommand{Action: MigrateVersion}},
		{name: "down defaults to one step", args: []string{"down"}, want: MigrationCommand{Action: MigrateDown, Steps: 1}},
		{name: "down with steps", args: []string{"down", "3"}, want: MigrationCommand{Action: MigrateDown, Steps: 3}},
		{name: "down rejects zero", args: []string{"down", "0"}, wantErr: true},
		{name: "down rejects text", args: []string{"down", "all"}, wantErr: true},
		{name: "force", args: []string{"force", "1771776100"}, want: MigrationCommand{Action: MigrateForce, Version: 1771776100}},
		{name: "force needs version", args: []string{"force"}, wantErr: true},
		{name: "force rejects negative", args: []string{"force", "-1"}, wantErr: true},
		{name: "goto", args: []string{"goto", "1771776034"}, want: MigrationCommand{Action: MigrateGoto, Target: 1771776034}},
		{name: "migrate is goto", args: []string{"migrate", "1771776034"}, want: MigrationCommand{Action: MigrateGoto, Target: 1771776034}},
		{name: "goto rejects negative", args: []string{"goto", "-4"}, wantErr: true},
		{name: "unknown action", args: []string{"redo"}, wantErr: true},
		{name: "no args", args: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMigrationCommand(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	t.Run("configured dir wins", func(t *testing.T) {
		dir := t.TempDir()
		got, err := resolveMigrationsDir(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("file is not a migrations dir", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "up.sql")
		require.NoError(t, os.WriteFile(file, []byte("SELECT 1;"), 0o600))
		if _, err := os.Stat("/app/db/migrations"); err == nil {
			t.Skip("container migrations dir present")
		}
		t.Chdir(t.TempDir())

		_, err := resolveMigrationsDir(file)
		require.Error(t, err)
	})
}

func TestNewMigrator_RequiresDBURL(t *testing.T) {
	_, err := NewMigrator(config.Config{StoreDriver: config.StoreMemory}, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URL")
}
