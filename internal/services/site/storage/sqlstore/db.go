package sqlstore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/tsolutions/site/internal/platform/storage/sqlmigrate"
	"github.com/tsolutions/site/internal/platform/timeouts"
	"github.com/tsolutions/site/internal/services/site/resource"
	"github.com/tsolutions/site/internal/services/site/storage"
	"github.com/tsolutions/site/internal/services/site/storage/sqlstore/migrations"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DB is a migrated content database shared by every resource kind.
type DB struct {
	sqlDB *sqlx.DB
}

// Open opens driver at dsn, verifies connectivity and applies migrations.
func Open(ctx context.Context, driver string, dsn string) (*DB, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSQLite:
		return OpenSQLite(ctx, dsn)
	case DriverPostgres:
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// sqlitePragmas is applied on every new connection. modernc.org/sqlite only
// reads _pragma=name(value) parameters.
const sqlitePragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

// OpenSQLite opens a SQLite file store and applies bundled migrations.
//
// The pool holds one connection, so writers from this process queue on it.
// busy_timeout covers other processes writing the same file.
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	return open(ctx, DriverSQLite, filepath.Clean(path)+sqlitePragmas)
}

// OpenPostgres opens a PostgreSQL store and applies bundled migrations.
func OpenPostgres(ctx context.Context, dsn string) (*DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	return open(ctx, DriverPostgres, dsn)
}

func open(ctx context.Context, driver string, dsn string) (*DB, error) {
	sqlDB, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.StorePing)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}

	db := New(sqlDB)
	if err := db.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

// New wraps an existing handle without migrating it.
func New(sqlDB *sqlx.DB) *DB {
	return &DB{sqlDB: sqlDB}
}

// Migrate applies the embedded migrations for the handle's driver.
func (d *DB) Migrate(ctx context.Context) error {
	if d == nil || d.sqlDB == nil {
		return fmt.Errorf("sql db is required")
	}
	root := DriverSQLite
	if d.sqlDB.DriverName() == DriverPostgres {
		root = DriverPostgres
	}
	return sqlmigrate.ApplyMigrations(ctx, d.sqlDB, migrations.FS, root)
}

// Ping checks connectivity.
func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.sqlDB == nil {
		return fmt.Errorf("sql db is required")
	}
	return d.sqlDB.PingContext(ctx)
}

// SQLX returns the raw handle for tooling.
func (d *DB) SQLX() *sqlx.DB {
	if d == nil {
		return nil
	}
	return d.sqlDB
}

// Close releases the underlying database.
func (d *DB) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

// Store binds kind to this database.
func (d *DB) Store(kind *resource.Kind) *Store {
	return newStore(d.sqlDB, kind)
}

// Stores binds every resource kind, keyed by plural name.
func (d *DB) Stores() map[string]storage.Store {
	stores := make(map[string]storage.Store, len(resource.Kinds()))
	for _, kind := range resource.Kinds() {
		stores[kind.Plural] = d.Store(kind)
	}
	return stores
}
