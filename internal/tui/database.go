package tui

import "context"

// Store defines the persistence methods the TUI requires.
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
	DeleteSessionSnapshots(ctx context.Context, sessionID string) (int64, error)
}
