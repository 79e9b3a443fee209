// Package config loads mindcheck settings from an optional YAML file and the
// process environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "mindcheck.yaml"
	ConfigPathEnv     = "MINDCHECK_CONFIG"

	CatalogSourceFile = "file"
	CatalogSourceDB   = "db"

	minSecretKeyLength = 32
)

var ErrInvalidConfig = errors.New("invalid config")

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
	I18n    I18nConfig    `yaml:"i18n"`
	Admin   AdminConfig   `yaml:"admin"`
}

type ServerConfig struct {
	Port         string `yaml:"port"`
	CookieSecure bool   `yaml:"cookie_secure"`
	Timezone     string `yaml:"timezone"`
}

type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

type CatalogConfig struct {
	Source string `yaml:"source"` // file | db
	Path   string `yaml:"path"`
	Watch  bool   `yaml:"watch"`
}

type I18nConfig struct {
	DefaultLanguage string `yaml:"default_language"`
	LocalesDir      string `yaml:"locales_dir"` // empty: use the embedded locales
}

type AdminConfig struct {
	PasswordHash string        `yaml:"password_hash"`
	SecretKey    string        `yaml:"secret_key"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// Enabled reports whether the admin API can issue tokens.
func (admin AdminConfig) Enabled() bool {
	return strings.TrimSpace(admin.PasswordHash) != ""
}

// PathFromEnv returns the config file path named by MINDCHECK_CONFIG.
func PathFromEnv() string {
	return getEnv(ConfigPathEnv, DefaultConfigPath)
}

// Load reads the YAML file at path, falls back to defaults when it does not
// exist, and then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "8080",
			Timezone: "UTC",
		},
		Storage: StorageConfig{
			DBPath: filepath.Join("data", "mindcheck.db"),
		},
		Catalog: CatalogConfig{
			Source: CatalogSourceFile,
			Path:   filepath.Join("data", "data.json"),
		},
		I18n: I18nConfig{
			DefaultLanguage: "en",
		},
		Admin: AdminConfig{
			TokenTTL: 12 * time.Hour,
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := defaultConfig()
	if cfg.Server.Port == "" {
		cfg.Server.Port = defaults.Server.Port
	}
	if cfg.Server.Timezone == "" {
		cfg.Server.Timezone = defaults.Server.Timezone
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = defaults.Storage.DBPath
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = defaults.Catalog.Source
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = defaults.Catalog.Path
	}
	if cfg.I18n.DefaultLanguage == "" {
		cfg.I18n.DefaultLanguage = defaults.I18n.DefaultLanguage
	}
	if cfg.Admin.TokenTTL <= 0 {
		cfg.Admin.TokenTTL = defaults.Admin.TokenTTL
	}
}

func applyEnv(cfg *Config) error {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.Timezone = getEnv("TZ", cfg.Server.Timezone)
	cfg.Storage.DBPath = getEnv("DB_PATH", cfg.Storage.DBPath)
	cfg.Catalog.Path = getEnv("CATALOG_PATH", cfg.Catalog.Path)
	cfg.Catalog.Source = strings.ToLower(getEnv("CATALOG_SOURCE", cfg.Catalog.Source))
	cfg.I18n.DefaultLanguage = getEnv("DEFAULT_LANGUAGE", cfg.I18n.DefaultLanguage)
	cfg.I18n.LocalesDir = getEnv("LOCALES_DIR", cfg.I18n.LocalesDir)
	cfg.Admin.SecretKey = getEnv("SECRET_KEY", cfg.Admin.SecretKey)
	cfg.Admin.PasswordHash = getEnv("ADMIN_PASSWORD_HASH", cfg.Admin.PasswordHash)

	var err error
	if cfg.Catalog.Watch, err = getEnvBool("CATALOG_WATCH", cfg.Catalog.Watch); err != nil {
		return err
	}
	if cfg.Server.CookieSecure, err = getEnvBool("COOKIE_SECURE", cfg.Server.CookieSecure); err != nil {
		return err
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (cfg *Config) Validate() error {
	switch cfg.Catalog.Source {
	case CatalogSourceFile, CatalogSourceDB:
	default:
		return fmt.Errorf("%w: unknown catalog source %q", ErrInvalidConfig, cfg.Catalog.Source)
	}

	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: invalid port %q", ErrInvalidConfig, cfg.Server.Port)
	}

	if cfg.Admin.Enabled() {
		secret := strings.TrimSpace(cfg.Admin.SecretKey)
		if _, insecure := insecureSecretKeys[secret]; insecure {
			return fmt.Errorf("%w: SECRET_KEY uses a placeholder value", ErrInvalidConfig)
		}
		if len(secret) < minSecretKeyLength {
			return fmt.Errorf("%w: SECRET_KEY must be at least %d characters when admin login is enabled", ErrInvalidConfig, minSecretKeyLength)
		}
	}
	return nil
}

// Location resolves the configured timezone, falling back to UTC.
func (cfg *Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("%w: invalid TZ %q", ErrInvalidConfig, cfg.Server.Timezone)
	}
	return location, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidConfig, key, raw)
	}
	return value, nil
}
