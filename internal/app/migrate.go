package app

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/mockmaster/internal/config"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
)

const migrationAppName = "mockmaster-migration"

var defaultMigrationsDirs = []string{"./db/migrations", "/app/db/migrations"}

type MigrationAction string

const (
	MigrateUp      MigrationAction = "up"
	MigrateDown    MigrationAction = "down"
	MigrateVersion MigrationAction = "version"
	MigrateForce   MigrationAction = "force"
	MigrateGoto    MigrationAction = "goto"
)

// MigrationCommand is a parsed migration CLI invocation.
type MigrationCommand struct {
	Action MigrationAction
	// Steps is how many migrations down rolls back.
	Steps int
	// Version is the version force marks as applied.
	Version int
	// Target is the version goto migrates to.
	Target uint
}

// ParseMigrationCommand reads `<action> [arg]`. down defaults to one step.
func ParseMigrationCommand(args []string) (MigrationCommand, error) {
	if len(args) == 0 {
		return MigrationCommand{}, fmt.Errorf("missing migration action")
	}

	action := MigrationAction(strings.ToLower(strings.TrimSpace(args[0])))
	if action == "migrate" {
		action = MigrateGoto
	}
	arg := ""
	if len(args) > 1 {
		arg = strings.TrimSpace(args[1])
	}

	cmd := MigrationCommand{Action: action}
	switch action {
	case MigrateUp, MigrateVersion:
		return cmd, nil
	case MigrateDown:
		cmd.Steps = 1
		if arg == "" {
			return cmd, nil
		}
		steps, err := strconv.Atoi(arg)
		if err != nil {
			return MigrationCommand{}, fmt.Errorf("invalid down steps %q: %w", arg, err)
		}
		if steps <= 0 {
			return MigrationCommand{}, fmt.Errorf("down steps must be > 0")
		}
		cmd.Steps = steps
		return cmd, nil
	case MigrateForce:
		if arg == "" {
			return MigrationCommand{}, fmt.Errorf("force requires a version argument")
		}
		version, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return MigrationCommand{}, fmt.Errorf("invalid version %q: %w", arg, err)
		}
		if version < 0 {
			return MigrationCommand{}, fmt.Errorf("version must be >= 0")
		}
		if version > math.MaxInt {
			return MigrationCommand{}, fmt.Errorf("version is too large for this platform")
		}
		cmd.Version = int(version)
		return cmd, nil
	case MigrateGoto:
		if arg == "" {
			return MigrationCommand{}, fmt.Errorf("goto requires a target version argument")
		}
		target, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return MigrationCommand{}, fmt.Errorf("invalid target version %q: %w", arg, err)
		}
		cmd.Target = uint(target)
		return cmd, nil
	default:
		return MigrationCommand{}, fmt.Errorf("unknown migration action %q", args[0])
	}
}

// Migrator applies the schema under db/migrations to the configured database.
type Migrator struct {
	m      *migrate.Migrate
	source string
	logger *logging.Logger
}

func NewMigrator(cfg config.Config, logger *logging.Logger) (*Migrator, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.DBURL) == "" {
		return nil, fmt.Errorf("DB_URL (or POSTGRES_URI) is required to run migrations")
	}

	dir, err := resolveMigrationsDir(cfg.MigrationsDir)
	if err != nil {
		return nil, err
	}

	source := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(source, normalizeDBURL(cfg.DBURL, migrationAppName))
	if err != nil {
		return nil, errors.Wrap(err, "create migrator")
	}
	m.Log = migrateLogger{logger: logger}

	return &Migrator{m: m, source: source, logger: logger}, nil
}

// Run executes cmd. A run with nothing to apply is not an error.
func (m *Migrator) Run(cmd MigrationCommand) error {
	switch cmd.Action {
	case MigrateUp:
		if err := ignoreNoChange(m.m.Up()); err != nil {
			return errors.Wrap(err, "migrate up")
		}
		m.logger.Info("migrations applied", "source", m.source)
	case MigrateDown:
		if err := ignoreNoChange(m.m.Steps(-cmd.Steps)); err != nil {
			return errors.Wrapf(err, "roll back %d migration(s)", cmd.Steps)
		}
		m.logger.Info("migrations rolled back", "steps", cmd.Steps)
	case MigrateVersion:
		version, dirty, err := m.m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			m.logger.Info("migration version", "version", "none", "dirty", false)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read version")
		}
		m.logger.Info("migration version", "version", version, "dirty", dirty)
	case MigrateForce:
		if err := m.m.Force(cmd.Version); err != nil {
			return errors.Wrapf(err, "force version %d", cmd.Version)
		}
		m.logger.Info("migration version forced", "version", cmd.Version)
	case MigrateGoto:
		if err := ignoreNoChange(m.m.Migrate(cmd.Target)); err != nil {
			return errors.Wrapf(err, "migrate to version %d", cmd.Target)
		}
		m.logger.Info("migrated", "version", cmd.Target)
	default:
		return fmt.Errorf("unknown migration action %q", cmd.Action)
	}
	return nil
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.CombineErrors(
		errors.Wrap(srcErr, "close migration source"),
		errors.Wrap(dbErr, "close migration db"),
	)
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func resolveMigrationsDir(configured string) (string, error) {
	candidates := append([]string{strings.TrimSpace(configured)}, defaultMigrationsDirs...)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, %s)", strings.Join(defaultMigrationsDirs, ", "))
}

// migrateLogger routes golang-migrate progress lines into the service logger.
type migrateLogger struct {
	logger *logging.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool { return false }
