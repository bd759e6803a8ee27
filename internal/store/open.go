package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/adatasks/internal/dbx"
	"github.com/dmitrijs2005/adatasks/internal/store/migrations"
	"github.com/pressly/goose/v3"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DriverMemory selects the in-memory repository; nothing is persisted.
const DriverMemory = "memory"

// DB is an opened backend.
type DB struct {
	Repo    Repository
	Dialect dbx.Dialect
	conn    *sql.DB
}

// Close releases the underlying connection, if any.
func (d *DB) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

// Conn returns the SQL connection, nil for the memory driver.
func (d *DB) Conn() *sql.DB {
	return d.conn
}

// Open connects to the backend named by driver (sqlite, postgres, mysql or
// memory) and brings its schema up to date.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	if driver == DriverMemory {
		return &DB{Repo: NewMemoryRepository()}, nil
	}

	dialect, err := dbx.ParseDialect(driver)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(sqlDriverName(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if dialect == dbx.DialectSQLite {
		// a single writer keeps ":memory:" databases on one connection.
		conn.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, conn, dialect); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &DB{Repo: NewSQLRepository(conn, dialect), Dialect: dialect, conn: conn}, nil
}

// RunMigrations applies the embedded migrations of dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, migrationDir(dialect))
}

func sqlDriverName(d dbx.Dialect) string {
	switch d {
	case dbx.DialectPostgres:
		return "pgx"
	case dbx.DialectMySQL:
		return "mysql"
	default:
		return "sqlite"
	}
}

func migrationDir(d dbx.Dialect) string {
	switch d {
	case dbx.DialectPostgres:
		return "postgres"
	case dbx.DialectMySQL:
		return "mysql"
	default:
		return "sqlite"
	}
}
