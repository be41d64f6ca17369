package export

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/vocesvisuales/internal/models"
)

// SnapshotStore records snapshots for a session and returns a record id.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, sessionID string, snap models.Snapshot) (string, error)
}

// StoreExporter records every export in a SnapshotStore.
type StoreExporter struct {
	store     SnapshotStore
	sessionID string
}

func NewStoreExporter(store SnapshotStore, sessionID string) *StoreExporter {
	return &StoreExporter{store: store, sessionID: sessionID}
}

func (e *StoreExporter) Export(ctx context.Context, snap models.Snapshot) (Artifact, error) {
	id, err := e.store.SaveSnapshot(ctx, e.sessionID, snap)
	if err != nil {
		return Artifact{}, fmt.Errorf("record snapshot: %w", err)
	}
	return Artifact{Location: "store:" + id}, nil
}
