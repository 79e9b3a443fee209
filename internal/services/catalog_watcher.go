package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const catalogReloadDebounce = 100 * time.Millisecond

// Watch reloads a file-backed catalog whenever the file changes. The parent
// directory is watched because editors often replace files by rename.
func (service *CatalogService) Watch(ctx context.Context) error {
	if service.source != CatalogSourceFile {
		return nil
	}

	target, err := filepath.Abs(service.path)
	if err != nil {
		return fmt.Errorf("resolve catalog path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch catalog directory: %w", err)
	}

	go service.watchLoop(ctx, watcher, target)
	return nil
}

func (service *CatalogService) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		_ = watcher.Close()
	}()

	reload := func() {
		count, err := service.Reload()
		if err != nil {
			log.Printf("catalog reload failed, keeping %d disorders: %v", count, err)
			return
		}
		log.Printf("catalog reloaded: %d disorders", count)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(catalogReloadDebounce, reload)
			} else {
				timer.Reset(catalogReloadDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("catalog watcher error: %v", err)
		}
	}
}
