package server

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reloader watches the config file for changes and triggers hot-reload.
type Reloader struct {
	watcher *fsnotify.Watcher
	server  *Server
	path    string
}

// NewReloader creates a file watcher for the server's config path.
// Returns (nil, nil) when the server has no config file to watch.
func NewReloader(server *Server) (*Reloader, error) {
	if server.cfgPath == "" {
		return nil, nil
	}
	if _, err := os.Stat(server.cfgPath); err != nil {
		return nil, fmt.Errorf("cannot watch config %q: %w", server.cfgPath, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(server.cfgPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", server.cfgPath, err)
	}

	return &Reloader{
		watcher: watcher,
		server:  server,
		path:    server.cfgPath,
	}, nil
}

// Run watches for file changes and reloads config. Blocks until ctx is
// cancelled.
func (r *Reloader) Run(ctx context.Context) error {
	defer r.watcher.Close()

	// Debounce: wait 500ms after last write before reloading
	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-r.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(500*time.Millisecond, func() {
					if err := r.server.Reload(); err != nil {
						fmt.Fprintf(os.Stderr, "hot-reload failed: %v\n", err)
					} else {
						fmt.Fprintf(os.Stderr, "hot-reload: config reloaded\n")
					}
				})
			}

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "file watcher error: %v\n", err)
		}
	}
}
