package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	schema "github.com/terraincognita07/mindcheck/migrations"
	"gorm.io/gorm"
)

var (
	migrationNamePattern = regexp.MustCompile(`^(\d+)_[a-z0-9_]+\.sql$`)
	addColumnPattern     = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+([^\s]+)\s+ADD\s+COLUMN\s+([^\s]+)\b`)
)

var errEmptyMigration = errors.New("migration has no SQL statements")

type schemaMigration struct {
	Version int
	File    string
	Body    string
}

type migrationVersionRow struct {
	Version string `gorm:"column:version"`
}

type tableInfoRow struct {
	Name string `gorm:"column:name"`
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	return applyMigrations(database, schema.Files)
}

// applyMigrations runs every numbered *.sql file in source that is not yet
// recorded in schema_migrations, in version order.
func applyMigrations(database *gorm.DB, source fs.FS) error {
	if err := database.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := readMigrations(source)
	if err != nil {
		return err
	}

	rows := make([]migrationVersionRow, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&rows).Error; err != nil {
		return fmt.Errorf("load applied migration versions: %w", err)
	}
	applied := make(map[string]bool, len(rows))
	for _, row := range rows {
		applied[row.Version] = true
	}

	for _, migration := range pending {
		if applied[migrationVersionKey(migration.Version)] {
			continue
		}
		if err := runMigration(database, migration); err != nil {
			return err
		}
	}
	return nil
}

func migrationVersionKey(version int) string {
	return fmt.Sprintf("%03d", version)
}

func readMigrations(source fs.FS) ([]schemaMigration, error) {
	entries, err := fs.ReadDir(source, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]schemaMigration, 0, len(entries))
	byVersion := make(map[int]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := migrationNamePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		version, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", entry.Name(), err)
		}
		if previous, ok := byVersion[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %d in %s and %s", version, previous, entry.Name())
		}
		byVersion[version] = entry.Name()

		body, err := fs.ReadFile(source, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		migrations = append(migrations, schemaMigration{Version: version, File: entry.Name(), Body: string(body)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func runMigration(database *gorm.DB, migration schemaMigration) error {
	statements := sqlStatements(migration.Body)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s: %w", migration.File, errEmptyMigration)
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range statements {
			present, err := columnAlreadyAdded(tx, statement)
			if err != nil {
				return fmt.Errorf("inspect migration %s: %w", migration.File, err)
			}
			if present {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s statement %q: %w", migration.File, statement, err)
			}
		}

		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			migrationVersionKey(migration.Version),
			migration.File,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.File, err)
		}
		return nil
	})
}

// sqlStatements splits a migration on semicolons and drops "--" comment lines.
func sqlStatements(body string) []string {
	statements := make([]string, 0)
	for _, part := range strings.Split(body, ";") {
		lines := make([]string, 0)
		for _, line := range strings.Split(part, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		statement := strings.TrimSpace(strings.Join(lines, "\n"))
		if statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

// columnAlreadyAdded reports whether statement is an ADD COLUMN whose column
// already exists, which happens when a store was created by a newer base schema.
func columnAlreadyAdded(database *gorm.DB, statement string) (bool, error) {
	match := addColumnPattern.FindStringSubmatch(strings.TrimSpace(statement))
	if match == nil {
		return false, nil
	}
	table := unquoteIdentifier(match[1])
	column := unquoteIdentifier(match[2])

	columns := make([]tableInfoRow, 0)
	query := fmt.Sprintf(`PRAGMA table_info("%s")`, strings.ReplaceAll(table, `"`, `""`))
	if err := database.Raw(query).Scan(&columns).Error; err != nil {
		return false, fmt.Errorf("load table_info for %s: %w", table, err)
	}
	for _, existing := range columns {
		if strings.EqualFold(strings.TrimSpace(existing.Name), column) {
			return true, nil
		}
	}
	return false, nil
}

func unquoteIdentifier(identifier string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(identifier), "\"`[]"))
}
