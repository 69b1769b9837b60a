package prices

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pitwall/internal/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// overrideFile is the on-disk shape of a price override file.
type overrideFile struct {
	Drivers      map[string]float64 `yaml:"drivers"`
	Constructors map[string]float64 `yaml:"constructors"`
}

// ApplyOverrides loads the YAML file at path and applies its prices to the
// store. Names outside the fixed entity sets are logged and skipped.
func (s *Store) ApplyOverrides(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading price overrides: %w", err)
	}
	var file overrideFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing price overrides: %w", err)
	}
	applied := 0
	for name, price := range file.Drivers {
		if err := s.SetDriverPrice(name, decimal.NewFromFloat(price)); err != nil {
			logger.Warnf("price override skipped: %v", err)
			continue
		}
		applied++
	}
	for name, price := range file.Constructors {
		if err := s.SetConstructorPrice(name, decimal.NewFromFloat(price)); err != nil {
			logger.Warnf("price override skipped: %v", err)
			continue
		}
		applied++
	}
	logger.Infof("price overrides applied: %d entries from %s", applied, path)
	return nil
}

// WatchOverrides re-applies the override file whenever it changes, until ctx
// is canceled. The initial application must have been done by the caller.
func (s *Store) WatchOverrides(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("price override watcher: %w", err)
	}
	// Watch the directory so editors that replace the file are still seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("price override watcher: %w", err)
	}
	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
					continue
				}
				if err := s.ApplyOverrides(path); err != nil {
					logger.Errorf("price override reload failed: %v", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warnf("price override watcher: %v", err)
			}
		}
	}()
	return nil
}
