package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/mindcheck/internal/db"
	"github.com/terraincognita07/mindcheck/internal/services"
)

// RunImportCatalogCommand stores the catalog document at catalogPath in the
// SQLite database at dbPath, replacing every stored disorder.
func RunImportCatalogCommand(dbPath string, catalogPath string, out io.Writer) error {
	content, err := os.ReadFile(catalogPath)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer db.Close(database)

	catalog := services.NewCatalogService(services.CatalogSourceDB, "", db.NewDisorderRepository(database))
	count, err := catalog.Import(content)
	if err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}

	fmt.Fprintf(out, "Imported %d disorders from %s into %s\n", count, catalogPath, dbPath)
	return nil
}
