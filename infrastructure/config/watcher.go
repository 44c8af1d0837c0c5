package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = 250 * time.Millisecond

// ConfigWatcher reloads the YAML configuration file when it changes and
// notifies subscribers with the new configuration.
type ConfigWatcher struct {
	config    *Config
	path      string
	callbacks []func(*Config)
	mu        sync.RWMutex
	logger    *zap.Logger
	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewConfigWatcher starts watching initial.File. Without a file there is
// nothing to watch and the watcher stays idle.
func NewConfigWatcher(initial *Config, logger *zap.Logger) (*ConfigWatcher, error) {
	w := &ConfigWatcher{
		config: initial,
		path:   filepath.Clean(initial.File),
		logger: logger,
		stopCh: make(chan struct{}),
	}

	if initial.File == "" {
		logger.Debug("No configuration file, hot reloading disabled")
		return w, nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Editors often replace the file, so watch the directory
	if err := fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.watcher = fsWatcher

	go w.watchLoop()

	logger.Info("Configuration hot reloading enabled", zap.String("file", w.path))
	return w, nil
}

func (w *ConfigWatcher) watchLoop() {
	defer w.watcher.Close()

	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.logger.Debug("Configuration file changed",
				zap.String("file", event.Name),
				zap.String("operation", event.Op.String()),
			)

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, w.reloadConfig)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return
		}
	}
}

func (w *ConfigWatcher) reloadConfig() {
	newConfig, err := Load(w.path)
	if err != nil {
		w.logger.Error("Invalid configuration after reload, keeping previous", zap.Error(err))
		return
	}

	w.mu.Lock()
	old := w.config
	w.config = newConfig
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	if old.LogLevel != newConfig.LogLevel {
		w.logger.Info("Log level changed",
			zap.String("old", old.LogLevel),
			zap.String("new", newConfig.LogLevel),
		)
	}

	for _, cb := range callbacks {
		cb(newConfig)
	}

	w.logger.Info("Configuration reloaded", zap.Int("callbacks_notified", len(callbacks)))
}

// OnChange registers a callback to be called when configuration changes
func (w *ConfigWatcher) OnChange(callback func(*Config)) {
	w.mu.Lock()
	w.callbacks = append(w.callbacks, callback)
	w.mu.Unlock()
}

// Stop stops the configuration watcher
func (w *ConfigWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
}
