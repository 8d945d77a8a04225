package watcher

import "context"

// Watcher monitors the input directory for new subtitle files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one detected subtitle file.
type EventHandler func(ctx context.Context, srtPath string) error
