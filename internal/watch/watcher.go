// Package watch re-runs a callback whenever the site configuration, its
// environment files or the documentation tree change on disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/siteconf/internal/logfields"
)

// DefaultDebounce coalesces editor save bursts into a single callback.
const DefaultDebounce = 300 * time.Millisecond

// ConfigWatcher monitors a configuration file and triggers debounced callbacks.
type ConfigWatcher struct {
	configPath   string
	watched      map[string]bool // base names in the config directory
	docsDirs     []string
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	onChange     func(ctx context.Context)
}

// NewConfigWatcher creates a watcher for configPath. The directory is watched
// rather than the file so editors that replace files on save are seen.
func NewConfigWatcher(configPath string, debounce time.Duration, onChange func(ctx context.Context)) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	configDir := filepath.Dir(absPath)
	if err := watcher.Add(configDir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch config directory %s: %w", configDir, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ConfigWatcher{
		configPath: absPath,
		watched: map[string]bool{
			filepath.Base(absPath): true,
			".env":                 true,
			".env.local":           true,
		},
		watcher:      watcher,
		debounceTime: debounce,
		onChange:     onChange,
	}, nil
}

// AddDocsDir additionally watches every directory below dir for Markdown changes.
func (cw *ConfigWatcher) AddDocsDir(dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	err = filepath.WalkDir(absDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != absDir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return cw.watcher.Add(p)
	})
	if err != nil {
		return fmt.Errorf("failed to watch docs directory %s: %w", dir, err)
	}
	cw.docsDirs = append(cw.docsDirs, absDir)
	return nil
}

// Run processes file events until ctx is cancelled. The callback runs on the
// calling goroutine, so reloads never overlap.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	defer func() {
		if err := cw.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()
	slog.Info("Watching configuration", logfields.Path(cw.configPath))

	timer := time.NewTimer(cw.debounceTime)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if !cw.relevant(event) {
				continue
			}
			if event.Op.Has(fsnotify.Remove) {
				slog.Warn("Watched file removed", logfields.Path(event.Name))
			} else {
				slog.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			}
			timer.Reset(cw.debounceTime)
		case <-timer.C:
			cw.onChange(ctx)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (cw *ConfigWatcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(event.Name)
	if filepath.Dir(name) == filepath.Dir(cw.configPath) && cw.watched[filepath.Base(name)] {
		return true
	}
	for _, dir := range cw.docsDirs {
		if strings.HasPrefix(name, dir+string(filepath.Separator)) {
			if event.Op.Has(fsnotify.Create) {
				// new subdirectories are picked up lazily
				_ = cw.watcher.Add(name)
			}
			return strings.EqualFold(filepath.Ext(name), ".md") || event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
		}
	}
	return false
}
