package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/infrastructure/config"
)

const pingTimeout = 5 * time.Second

// NewDriver opens the deck store and returns an ent dialect driver bound to it.
func NewDriver(cfg *config.Config, logger logrus.FieldLogger) (dialect.Driver, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}

	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	var (
		rawDB *sql.DB
		name  string
	)
	switch driver {
	case "sqlite3":
		if cfg.Database.DSN == "" {
			if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create %s: %w", cfg.Paths.OutputDir, err)
			}
		}
		rawDB, err = openSQLite(dsn)
		name = dialect.SQLite
	case "postgres":
		rawDB, err = openPostgres(dsn)
		name = dialect.Postgres
	case "pgx":
		rawDB, err = openPgx(cfg, dsn, logger)
		name = dialect.Postgres
	default:
		return nil, nil, fmt.Errorf("%w: %q", entity.ErrUnsupportedDriver, driver)
	}
	if err != nil {
		return nil, nil, err
	}

	var drv dialect.Driver = entsql.OpenDB(name, rawDB)
	if cfg.Database.LogSQL {
		drv = dialect.Debug(drv, logger.Debug)
	}
	return drv, func() {
		_ = drv.Close()
	}, nil
}

func openPostgres(dsn string) (*sql.DB, error) {
	rawDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}
	return rawDB, ping(rawDB)
}

func openPgx(cfg *config.Config, dsn string, logger logrus.FieldLogger) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	if cfg.Database.LogSQL {
		connCfg.Tracer = &tracelog.TraceLog{
			Logger: tracelog.LoggerFunc(func(_ context.Context, lvl tracelog.LogLevel, msg string, data map[string]any) {
				logger.WithFields(logrus.Fields(data)).WithField("pgx_level", lvl.String()).Debug(msg)
			}),
			LogLevel: tracelog.LogLevelTrace,
		}
	}
	rawDB := stdlib.OpenDB(*connCfg)
	return rawDB, ping(rawDB)
}

func openSQLite(dsn string) (*sql.DB, error) {
	rawDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	rawDB.SetMaxOpenConns(1)
	rawDB.SetMaxIdleConns(1)

	if err := ping(rawDB); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if _, err := rawDB.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
	}
	return rawDB, nil
}

func ping(rawDB *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rawDB.PingContext(ctx); err != nil {
		rawDB.Close()
		return fmt.Errorf("ping db: %w", err)
	}
	return nil
}
