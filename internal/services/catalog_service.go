package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/terraincognita07/mindcheck/internal/models"
)

const (
	CatalogSourceFile = "file"
	CatalogSourceDB   = "db"
)

var (
	ErrCatalogStoreUnavailable = errors.New("catalog store unavailable")
	ErrCatalogStoreFailed      = errors.New("store catalog failed")
	ErrCatalogSourceUnknown    = errors.New("unknown catalog source")
)

type DisorderStore interface {
	ListOrdered() ([]models.DisorderRecord, error)
	ReplaceAll(records []models.DisorderRecord) error
}

type catalogSnapshot struct {
	disorders []models.Disorder
	bySlug    map[string]int
	loadedAt  time.Time
}

// CatalogService owns the loaded disorder catalog. Callers take an immutable
// snapshot per request; reloads swap in a new snapshot atomically.
type CatalogService struct {
	source   string
	path     string
	store    DisorderStore
	now      func() time.Time
	reloadMu sync.Mutex
	current  atomic.Pointer[catalogSnapshot]
}

func NewCatalogService(source string, path string, store DisorderStore) *CatalogService {
	service := &CatalogService{
		source: source,
		path:   path,
		store:  store,
		now:    time.Now,
	}
	service.current.Store(newCatalogSnapshot(nil, time.Time{}))
	return service
}

// Load performs the initial load. Any failure leaves an empty catalog.
func (service *CatalogService) Load() int {
	count, err := service.Reload()
	if err != nil {
		log.Printf("catalog load failed, serving empty catalog: %v", err)
		service.current.Store(newCatalogSnapshot(nil, service.now()))
		return 0
	}
	return count
}

// Reload re-reads the configured source. On failure the previous snapshot stays.
func (service *CatalogService) Reload() (int, error) {
	service.reloadMu.Lock()
	defer service.reloadMu.Unlock()

	disorders, err := service.readSource()
	if err != nil {
		return service.Count(), err
	}
	service.current.Store(newCatalogSnapshot(disorders, service.now()))
	return len(disorders), nil
}

// Import replaces the catalog with a new document, persisting it to the store
// when one is configured.
func (service *CatalogService) Import(data []byte) (int, error) {
	disorders, err := ParseCatalog(data)
	if err != nil {
		return 0, err
	}

	service.reloadMu.Lock()
	defer service.reloadMu.Unlock()

	importedAt := service.now()
	if service.store != nil {
		records, err := DisorderRecords(disorders, importedAt)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrCatalogStoreFailed, err)
		}
		if err := service.store.ReplaceAll(records); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrCatalogStoreFailed, err)
		}
	} else if service.source == CatalogSourceDB {
		return 0, ErrCatalogStoreUnavailable
	}

	service.current.Store(newCatalogSnapshot(disorders, importedAt))
	return len(disorders), nil
}

func (service *CatalogService) Snapshot() []models.Disorder {
	return service.current.Load().disorders
}

func (service *CatalogService) Count() int {
	return len(service.current.Load().disorders)
}

func (service *CatalogService) LoadedAt() time.Time {
	return service.current.Load().loadedAt
}

func (service *CatalogService) Source() string {
	return service.source
}

func (service *CatalogService) FindBySlug(slug string) (models.Disorder, bool) {
	snapshot := service.current.Load()
	index, ok := snapshot.bySlug[slug]
	if !ok {
		return models.Disorder{}, false
	}
	return snapshot.disorders[index], true
}

func (service *CatalogService) readSource() ([]models.Disorder, error) {
	switch service.source {
	case CatalogSourceFile:
		content, err := os.ReadFile(service.path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", service.path, err)
		}
		return ParseCatalog(content)
	case CatalogSourceDB:
		if service.store == nil {
			return nil, ErrCatalogStoreUnavailable
		}
		records, err := service.store.ListOrdered()
		if err != nil {
			return nil, fmt.Errorf("list stored disorders: %w", err)
		}
		return DisordersFromRecords(records), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrCatalogSourceUnknown, service.source)
	}
}

func newCatalogSnapshot(disorders []models.Disorder, loadedAt time.Time) *catalogSnapshot {
	if disorders == nil {
		disorders = []models.Disorder{}
	}
	bySlug := make(map[string]int, len(disorders))
	for index, disorder := range disorders {
		slug := SlugifyName(disorder.DisplayName())
		if _, exists := bySlug[slug]; !exists {
			bySlug[slug] = index
		}
	}
	return &catalogSnapshot{
		disorders: disorders,
		bySlug:    bySlug,
		loadedAt:  loadedAt,
	}
}
