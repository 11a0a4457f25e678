package db

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"os"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported store engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// Options describes how to reach the store. Path is used by sqlite;
// the network fields by mysql and postgres.
type Options struct {
	Engine   string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	UseTLS   bool
	TLSCA    string
}

// DB wraps the sql.DB for connection management.
type DB struct {
	conn   *sql.DB
	engine string
}

// Open creates a connection pool for the configured engine and verifies
// connectivity before returning. Callers are expected to treat an error
// here as fatal.
func Open(ctx context.Context, opts Options) (*DB, error) {
	driver, dsn, err := dataSource(opts)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	// bounded pool; callers beyond capacity queue on acquisition
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(30 * time.Minute)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &DB{conn: conn, engine: opts.Engine}, nil
}

// New creates a sqlite DB from a DSN. Kept for tests that want an
// in-memory store without building full Options.
func New(ctx context.Context, dsn string) (*DB, error) {
	return Open(ctx, Options{Engine: EngineSQLite, Path: dsn})
}

func dataSource(opts Options) (driver, dsn string, err error) {
	switch opts.Engine {
	case EngineSQLite:
		return "sqlite", opts.Path, nil

	case EngineMySQL:
		cfg := gomysql.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = fmt.Sprintf("%s:%d", opts.Host, opts.Port)
		cfg.User = opts.User
		cfg.Passwd = opts.Password
		cfg.DBName = opts.Database
		cfg.ParseTime = false
		if opts.UseTLS {
			name, err := registerMySQLTLS(opts.TLSCA)
			if err != nil {
				return "", "", err
			}
			cfg.TLSConfig = name
		}
		return "mysql", cfg.FormatDSN(), nil

	case EnginePostgres:
		sslmode := "disable"
		if opts.UseTLS {
			sslmode = "verify-full"
		}
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			opts.Host, opts.Port, opts.User, opts.Password, opts.Database, sslmode)
		if opts.UseTLS && opts.TLSCA != "" {
			dsn += " sslrootcert=" + opts.TLSCA
		}
		return "pgx", dsn, nil

	default:
		return "", "", fmt.Errorf("unknown store engine %q", opts.Engine)
	}
}

// registerMySQLTLS loads the CA bundle and registers it with the mysql
// driver under a fixed name.
func registerMySQLTLS(caPath string) (string, error) {
	const name = "custom"

	tlsCfg := &tls.Config{}
	if caPath != "" {
		pem, err := os.ReadFile(caPath)
		if err != nil {
			return "", fmt.Errorf("read tls ca bundle: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return "", fmt.Errorf("tls ca bundle %s contains no usable certificates", caPath)
		}
		tlsCfg.RootCAs = pool
	}

	if err := gomysql.RegisterTLSConfig(name, tlsCfg); err != nil {
		return "", fmt.Errorf("register tls config: %w", err)
	}
	return name, nil
}

// Engine reports which store engine this DB talks to.
func (db *DB) Engine() string {
	return db.engine
}

// Close closes the DB connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Exec executes a query.
func (db *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.conn.ExecContext(ctx, query, args...)
}

// QueryRow executes a query that is expected to return at most one row.
func (db *DB) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}

// QueryRows executes a query that returns multiple rows.
func (db *DB) QueryRows(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, query, args...)
}

// GetConn returns the underlying sql.DB.
func (db *DB) GetConn() *sql.DB {
	return db.conn
}
