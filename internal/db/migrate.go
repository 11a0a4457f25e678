package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// Migrate applies the embedded migrations for the DB's engine. It
// creates a `schema_migrations` table to track applied migrations and
// applies any SQL files under migrations/<engine>/ that have not yet
// been recorded. When uniqueEmail is set it additionally ensures a
// unique index on atendimentos.email; the index lives outside the
// migration files so the same set serves both uniqueness modes.
func Migrate(ctx context.Context, d *DB, migrationFS embed.FS, uniqueEmail bool) error {
	if err := d.ensureMigrationsTable(ctx); err != nil {
		return err
	}

	migDir := path.Join("migrations", d.engine)

	entries, err := fs.ReadDir(migrationFS, migDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	// collect .sql files and sort
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		// filename (without extension) is the migration version key
		version := strings.TrimSuffix(fname, path.Ext(fname))

		applied, err := d.migrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		p := path.Join(migDir, fname)
		b, err := fs.ReadFile(migrationFS, p)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec migration %s: %w", fname, err)
		}

		if err := d.recordMigration(ctx, version); err != nil {
			return fmt.Errorf("record migration %s: %w", fname, err)
		}
	}

	if uniqueEmail {
		if err := d.ensureUniqueEmailIndex(ctx); err != nil {
			return fmt.Errorf("ensure unique email index: %w", err)
		}
	}

	return nil
}

func (d *DB) ensureMigrationsTable(ctx context.Context) error {
	stmt := `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied BIGINT NOT NULL)`
	if d.engine == EngineMySQL {
		// TEXT cannot be a MySQL primary key without a length
		stmt = `CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(255) PRIMARY KEY, applied BIGINT NOT NULL)`
	}
	if _, err := d.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	return nil
}

func (d *DB) migrationApplied(ctx context.Context, version string) (bool, error) {
	query := `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`
	if d.engine == EnginePostgres {
		query = `SELECT COUNT(1) FROM schema_migrations WHERE version = $1`
	}

	var count int
	if err := d.QueryRow(ctx, query, version).Scan(&count); err != nil {
		return false, fmt.Errorf("scan migration applied count: %w", err)
	}
	return count > 0, nil
}

func (d *DB) recordMigration(ctx context.Context, version string) error {
	query := `INSERT INTO schema_migrations (version, applied) VALUES (?, ?)`
	if d.engine == EnginePostgres {
		query = `INSERT INTO schema_migrations (version, applied) VALUES ($1, $2)`
	}

	_, err := d.Exec(ctx, query, version, time.Now().Unix())
	return err
}

func (d *DB) ensureUniqueEmailIndex(ctx context.Context) error {
	const idx = "idx_atendimentos_email"

	switch d.engine {
	case EngineMySQL:
		// MySQL has no CREATE INDEX IF NOT EXISTS
		var count int
		err := d.QueryRow(ctx,
			`SELECT COUNT(1) FROM information_schema.statistics WHERE table_schema = DATABASE() AND table_name = 'atendimentos' AND index_name = ?`,
			idx,
		).Scan(&count)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		_, err = d.Exec(ctx, `CREATE UNIQUE INDEX `+idx+` ON atendimentos (email)`)
		return err

	default:
		_, err := d.Exec(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS `+idx+` ON atendimentos (email)`)
		return err
	}
}
