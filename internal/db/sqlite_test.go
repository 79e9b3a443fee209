package db

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/terraincognita07/mindcheck/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "mindcheck.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(database)
	})
	return database
}

func TestOpenSQLiteAppliesEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)

	var versions []string
	if err := database.Raw(`SELECT version FROM schema_migrations ORDER BY version`).Scan(&versions).Error; err != nil {
		t.Fatalf("load schema_migrations: %v", err)
	}
	want := []string{"001", "002", "003"}
	if strings.Join(versions, ",") != strings.Join(want, ",") {
		t.Fatalf("applied versions = %v, want %v", versions, want)
	}

	present, err := columnAlreadyAdded(database, "ALTER TABLE disorders ADD COLUMN symptom_count INTEGER")
	if err != nil {
		t.Fatalf("inspect column: %v", err)
	}
	if !present {
		t.Fatal("expected symptom_count column to exist")
	}
}

func TestOpenSQLiteIsIdempotentOnReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mindcheck.db")
	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := Close(first); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer Close(second)

	var count int64
	if err := second.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count).Error; err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 recorded migrations, got %d", count)
	}
}

func TestApplyMigrationsSkipsExistingColumn(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	source := fstest.MapFS{
		"900_readd_symptom_count.sql": {Data: []byte("-- already present\nALTER TABLE disorders ADD COLUMN symptom_count INTEGER NOT NULL DEFAULT 0;")},
		"notes.txt":                   {Data: []byte("ignored")},
	}
	if err := applyMigrations(database, source); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	var name string
	if err := database.Raw(`SELECT name FROM schema_migrations WHERE version = ?`, "900").Scan(&name).Error; err != nil {
		t.Fatalf("load migration row: %v", err)
	}
	if name != "900_readd_symptom_count.sql" {
		t.Fatalf("expected migration 900 to be recorded, got %q", name)
	}
}

func TestReadMigrationsRejectsDuplicateVersions(t *testing.T) {
	t.Parallel()

	source := fstest.MapFS{
		"004_a.sql":  {Data: []byte("SELECT 1;")},
		"0004_b.sql": {Data: []byte("SELECT 2;")},
	}
	if _, err := readMigrations(source); err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}
}

func TestSQLStatementsDropsCommentsAndBlanks(t *testing.T) {
	t.Parallel()

	statements := sqlStatements("-- header\nCREATE TABLE a (id INTEGER);\n\n;  \nCREATE INDEX i ON a(id);")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(statements), statements)
	}
	if statements[0] != "CREATE TABLE a (id INTEGER)" {
		t.Fatalf("unexpected first statement %q", statements[0])
	}
}

func TestDisorderRepositoryReplaceAllAndListOrdered(t *testing.T) {
	t.Parallel()

	repositories := NewRepositories(openTestDatabase(t))
	importedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	first := []models.DisorderRecord{
		{Position: 1, Name: "Second", Slug: "second", Payload: `{"name":"Second"}`, ImportedAt: importedAt},
		{Position: 0, Name: "First", Slug: "first", SymptomCount: 2, Payload: `{"name":"First"}`, ImportedAt: importedAt},
	}
	if err := repositories.Disorders.ReplaceAll(first); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	records, err := repositories.Disorders.ListOrdered()
	if err != nil {
		t.Fatalf("list ordered: %v", err)
	}
	if len(records) != 2 || records[0].Slug != "first" || records[1].Slug != "second" {
		t.Fatalf("unexpected order: %+v", records)
	}
	if records[0].SymptomCount != 2 {
		t.Fatalf("expected symptom count 2, got %d", records[0].SymptomCount)
	}

	found, err := repositories.Disorders.FindBySlug("second")
	if err != nil {
		t.Fatalf("find by slug: %v", err)
	}
	if found.Payload != `{"name":"Second"}` {
		t.Fatalf("unexpected payload %q", found.Payload)
	}

	replacement := []models.DisorderRecord{
		{Position: 0, Name: "Only", Slug: "only", Payload: `{"name":"Only"}`, ImportedAt: importedAt},
	}
	if err := repositories.Disorders.ReplaceAll(replacement); err != nil {
		t.Fatalf("second replace all: %v", err)
	}
	count, err := repositories.Disorders.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 record after replace, got %d", count)
	}

	if err := repositories.Disorders.ReplaceAll(nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	records, err = repositories.Disorders.ListOrdered()
	if err != nil {
		t.Fatalf("list after clear: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty store, got %d records", len(records))
	}
}
