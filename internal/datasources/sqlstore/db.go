package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	_ "modernc.org/sqlite"
)

const mysqlDriverParamStr string = "?parseTime=true"

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func ConnectMySQL(ctx context.Context, uri string) (*sql.DB, error) {
	db, err := sql.Open("mysql", uri+mysqlDriverParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}

// OpenSQLite opens a SQLite database at path, which may be ":memory:".
// SQLite serializes writers, so the pool is limited to a single connection;
// this also keeps an in-memory database alive for the lifetime of the pool.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	return db, nil
}

// Open connects to the database named by driver ("mysql" or "sqlite"),
// applies the schema and returns a ready Repository.
func Open(ctx context.Context, driver, dsn string) (*Repository, error) {
	var (
		db     *sql.DB
		flavor sqlbuilder.Flavor
		err    error
	)
	switch driver {
	case "mysql":
		db, err = ConnectMySQL(ctx, dsn)
		flavor = sqlbuilder.MySQL
	case "sqlite":
		db, err = OpenSQLite(ctx, dsn)
		flavor = sqlbuilder.SQLite
	default:
		return nil, fmt.Errorf("unknown database driver [%s]", driver)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, db, flavor); err != nil {
		_ = db.Close()
		return nil, err
	}

	return New(db, flavor), nil
}
