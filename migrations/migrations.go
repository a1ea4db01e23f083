package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

//go:embed *.sql
var files embed.FS

type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет SQL файлы схемы по порядку имени и запоминает примененные
type Migrator struct {
	db     dbmetrics.DBExecutor
	source fs.FS
	logger Logger
}

func NewMigrator(db dbmetrics.DBExecutor, logger Logger) *Migrator {
	return &Migrator{db: db, source: files, logger: logger}
}

// Files возвращает отсортированный список файлов миграций
func (m *Migrator) Files() ([]string, error) {
	entries, err := fs.ReadDir(m.source, ".")
	if err != nil {
		return nil, fmt.Errorf("migrations: read dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Run применяет все новые миграции
func (m *Migrator) Run(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename   VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("migrations: create tracking table: %w", err)
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return err
	}

	names, err := m.Files()
	if err != nil {
		return err
	}

	count := 0
	for _, name := range names {
		if applied[name] {
			continue
		}

		content, err := fs.ReadFile(m.source, name)
		if err != nil {
			return fmt.Errorf("migrations: read %s: %w", name, err)
		}

		m.logger.Info("Migrations: applying %s", name)
		if _, err := m.db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("migrations: apply %s: %w", name, err)
		}

		query, args, err := psqlbuilder.Insert("schema_migrations").
			Columns("filename").
			Values(name).
			Suffix("ON CONFLICT (filename) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("migrations: build insert: %w", err)
		}
		if _, err := m.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("migrations: record %s: %w", name, err)
		}
		count++
	}

	m.logger.Info("Migrations: %d applied, %d total", count, len(names))
	return nil
}

func (m *Migrator) applied(ctx context.Context) (map[string]bool, error) {
	query, args, err := psqlbuilder.Select("filename").
		From("schema_migrations").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("migrations: build select: %w", err)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("migrations: list applied: %w", err)
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("migrations: scan: %w", err)
		}
		result[name] = true
	}
	return result, rows.Err()
}
