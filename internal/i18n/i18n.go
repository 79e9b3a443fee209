package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	LangRU = "ru"
	LangEN = "en"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
}

// NewEmbeddedManager loads the locales compiled into the binary.
func NewEmbeddedManager(defaultLanguage string) (*Manager, error) {
	locales, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("open embedded locales: %w", err)
	}
	return NewManager(defaultLanguage, locales)
}

// NewManagerFromDir loads locales from a directory on disk, which lets
// operators override the shipped translations.
func NewManagerFromDir(defaultLanguage string, localesDir string) (*Manager, error) {
	return NewManager(defaultLanguage, os.DirFS(localesDir))
}

func NewManager(defaultLanguage string, locales fs.FS) (*Manager, error) {
	manager := &Manager{
		locales: map[string]map[string]string{},
	}

	entries, err := fs.ReadDir(locales, ".")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		language := strings.ToLower(strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
		content, err := fs.ReadFile(locales, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", language, err)
		}

		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", language, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", language)
		}

		manager.locales[language] = messages
		manager.supported = append(manager.supported, language)
	}

	for _, required := range []string{LangEN, LangRU} {
		if _, ok := manager.locales[required]; !ok {
			return nil, fmt.Errorf("required locale %q missing", required)
		}
	}

	sort.Strings(manager.supported)
	manager.defaultLanguage = LangEN
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	return append([]string(nil), manager.supported...)
}

func (manager *Manager) IsSupported(language string) bool {
	_, ok := manager.locales[language]
	return ok
}

func (manager *Manager) NormalizeLanguage(raw string) string {
	if language := baseLanguage(raw); manager.IsSupported(language) {
		return language
	}
	return manager.defaultLanguage
}

// DetectFromAcceptLanguage returns the first supported language listed in an
// Accept-Language header. Quality weights are ignored; browsers already send
// languages in preference order.
func (manager *Manager) DetectFromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if language := baseLanguage(tag); manager.IsSupported(language) {
			return language
		}
	}
	return manager.defaultLanguage
}

// Messages returns the language's messages layered over the default language.
func (manager *Manager) Messages(language string) map[string]string {
	fallback := manager.locales[manager.defaultLanguage]
	target := manager.locales[manager.NormalizeLanguage(language)]

	merged := make(map[string]string, len(fallback)+len(target))
	for key, value := range fallback {
		merged[key] = value
	}
	for key, value := range target {
		merged[key] = value
	}
	return merged
}

func (manager *Manager) Translate(language string, key string) string {
	for _, candidate := range []string{manager.NormalizeLanguage(language), manager.defaultLanguage} {
		if value := strings.TrimSpace(manager.locales[candidate][key]); value != "" {
			return manager.locales[candidate][key]
		}
	}
	return key
}

func (manager *Manager) Translatef(language string, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(language, key), args...)
}

func baseLanguage(raw string) string {
	language := strings.ToLower(strings.TrimSpace(raw))
	language = strings.ReplaceAll(language, "_", "-")
	language, _, _ = strings.Cut(language, "-")
	return language
}
