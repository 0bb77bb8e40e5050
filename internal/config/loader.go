package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Loader reads a YAML graph config file and watches it for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *GraphConfig
	onChange []func(*GraphConfig)
	watcher  *fsnotify.Watcher
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg
	return l, nil
}

// Config returns the current (latest) configuration.
func (l *Loader) Config() *GraphConfig {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the config reloads.
func (l *Loader) OnChange(fn func(*GraphConfig)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the config on
// file changes. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}
	l.watcher = w

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					cfg, err := l.load()
					if err != nil {
						// Keep serving the old config.
						continue
					}
					l.swap(cfg)
				}
			case <-w.Errors:
				// Ignore watcher errors.
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}

// Reload forces an immediate re-read of the config file.
func (l *Loader) Reload() (*GraphConfig, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.swap(cfg)
	return cfg, nil
}

// Peek re-reads the config file without committing it. Config() keeps
// returning the previous config until Commit is called, so callers can
// validate a candidate before it becomes current.
func (l *Loader) Peek() (*GraphConfig, error) {
	return l.load()
}

// Commit makes cfg the current config and notifies OnChange subscribers.
func (l *Loader) Commit(cfg *GraphConfig) {
	l.swap(cfg)
}

func (l *Loader) swap(cfg *GraphConfig) {
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*GraphConfig), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}
}

func (l *Loader) load() (*GraphConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}
	var cfg GraphConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}
	// Apply defaults.
	if cfg.Server.AnalysisWorkers == 0 {
		cfg.Server.AnalysisWorkers = 8
	}
	if cfg.Server.QueueDepth == 0 {
		cfg.Server.QueueDepth = 1000
	}
	if cfg.Server.AnalysisTimeoutMs == 0 {
		cfg.Server.AnalysisTimeoutMs = 5000
	}
	if cfg.Server.JobRetention == 0 {
		cfg.Server.JobRetention = 1000
	}
	return &cfg, nil
}
