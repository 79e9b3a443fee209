package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/mindcheck/internal/api"
	"github.com/terraincognita07/mindcheck/internal/config"
	"github.com/terraincognita07/mindcheck/internal/db"
	"github.com/terraincognita07/mindcheck/internal/i18n"
	"github.com/terraincognita07/mindcheck/internal/services"
	"github.com/terraincognita07/mindcheck/internal/templates"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var configPath string

	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	command.Flags().StringVar(&configPath, "config", config.PathFromEnv(), "path to the YAML config file")
	return command
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	location, err := cfg.Location()
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", cfg.Server.Timezone)
		location = time.UTC
	}
	time.Local = location

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	server, err := buildServer(lifecycleCtx, cfg, true)
	if err != nil {
		return err
	}
	defer closeDatabase(server.database)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("MindCheck listening on http://0.0.0.0:%s (catalog: %s, %d disorders, tz: %s)",
		cfg.Server.Port, cfg.Catalog.Source, server.catalog.Count(), location.String())
	if err := server.app.Listen(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

type server struct {
	app      *fiber.App
	catalog  *services.CatalogService
	database *gorm.DB
}

// buildServer wires storage, the catalog and the HTTP app from a validated
// config. The catalog watcher, when enabled, stops with ctx.
func buildServer(ctx context.Context, cfg *config.Config, accessLog bool) (*server, error) {
	database, store, err := openCatalogStore(cfg)
	if err != nil {
		return nil, err
	}

	catalog := services.NewCatalogService(cfg.Catalog.Source, cfg.Catalog.Path, store)
	catalog.Load()
	if cfg.Catalog.Watch && cfg.Catalog.Source == config.CatalogSourceFile {
		if err := catalog.Watch(ctx); err != nil {
			log.Printf("catalog watch disabled: %v", err)
		}
	}

	admin := services.NewAdminService(cfg.Admin.PasswordHash, cfg.Admin.SecretKey, cfg.Admin.TokenTTL)

	i18nManager, err := newI18nManager(cfg.I18n)
	if err != nil {
		closeDatabase(database)
		return nil, fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(catalog, admin, i18nManager, templates.Files, cfg.Server.CookieSecure)
	if err != nil {
		closeDatabase(database)
		return nil, fmt.Errorf("handler init failed: %w", err)
	}

	return &server{
		app:      api.NewApp(handler, api.AppOptions{AccessLog: accessLog}),
		catalog:  catalog,
		database: database,
	}, nil
}

// openCatalogStore opens SQLite for the catalog. A file-backed catalog still
// serves without the store, so an open failure there is only logged and both
// returned values are nil.
func openCatalogStore(cfg *config.Config) (*gorm.DB, services.DisorderStore, error) {
	database, err := db.OpenSQLite(cfg.Storage.DBPath)
	if err != nil {
		if cfg.Catalog.Source == config.CatalogSourceFile {
			log.Printf("database unavailable, catalog imports will not persist: %v", err)
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	return database, db.NewRepositories(database).Disorders, nil
}

func closeDatabase(database *gorm.DB) {
	if database == nil {
		return
	}
	if err := db.Close(database); err != nil {
		log.Printf("database close failed: %v", err)
	}
}

func newI18nManager(cfg config.I18nConfig) (*i18n.Manager, error) {
	if cfg.LocalesDir != "" {
		return i18n.NewManagerFromDir(cfg.DefaultLanguage, cfg.LocalesDir)
	}
	return i18n.NewEmbeddedManager(cfg.DefaultLanguage)
}
