package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akyairhashvil/vocesvisuales/internal/models"
	"github.com/akyairhashvil/vocesvisuales/internal/rubric"
	"github.com/google/uuid"
)

const defaultSnapshotListLimit = 20

// snapshotsPerSession caps stored exports per session; older ones are pruned.
var snapshotsPerSession = 50

// Fixed width so created_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SnapshotRecord is one stored export.
type SnapshotRecord struct {
	ID        string
	SessionID string
	Title     string
	Total     int
	MaxTotal  int
	CreatedAt time.Time
	Snapshot  models.Snapshot
}

// SaveSnapshot stores snap under a fresh ID and returns it. The insert and
// the pruning of the session's oldest records share one transaction.
func (d *Database) SaveSnapshot(ctx context.Context, sessionID string, snap models.Snapshot) (string, error) {
	if sessionID == "" {
		return "", wrapSnapshotErr("save", "", fmt.Errorf("session id is required"))
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", wrapSnapshotErr("save", "", err)
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	id := uuid.NewString()
	maxTotal := snap.Rubric.CriterionCount() * int(rubric.MaxScore)
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshots (id, session_id, title, total, max_total, payload, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, sessionID, snap.Poster.Title, snap.Rubric.Total(), maxTotal, string(payload),
			time.Now().UTC().Format(timestampLayout)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`DELETE FROM snapshots WHERE session_id = ? AND rowid NOT IN (
				SELECT rowid FROM snapshots WHERE session_id = ?
				ORDER BY created_at DESC, rowid DESC LIMIT ?)`,
			sessionID, sessionID, snapshotsPerSession)
		return err
	})
	if err != nil {
		return "", wrapSnapshotErr("save", id, err)
	}
	return id, nil
}

// LatestSnapshot returns the most recently stored snapshot, if any.
func (d *Database) LatestSnapshot(ctx context.Context) (models.Snapshot, bool, error) {
	records, err := d.ListSnapshots(ctx, 1)
	if err != nil {
		return models.Snapshot{}, false, err
	}
	if len(records) == 0 {
		return models.Snapshot{}, false, nil
	}
	return records[0].Snapshot, true, nil
}

// GetSnapshot loads one record by ID.
func (d *Database) GetSnapshot(ctx context.Context, id string) (SnapshotRecord, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	row := d.DB.QueryRowContext(ctx,
		`SELECT id, session_id, title, total, max_total, payload, created_at
		FROM snapshots WHERE id = ?`, id)
	rec, err := scanSnapshot(row)
	if isNoRows(err) {
		return SnapshotRecord{}, wrapSnapshotErr("get", id, ErrNotFound)
	}
	if err != nil {
		return SnapshotRecord{}, wrapSnapshotErr("get", id, err)
	}
	return rec, nil
}

// ListSnapshots returns stored snapshots, newest first.
func (d *Database) ListSnapshots(ctx context.Context, limit int) ([]SnapshotRecord, error) {
	if limit <= 0 {
		limit = defaultSnapshotListLimit
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	rows, err := d.DB.QueryContext(ctx,
		`SELECT id, session_id, title, total, max_total, payload, created_at
		FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, wrapSnapshotErr("list", "", err)
	}
	defer rows.Close()

	var records []SnapshotRecord
	for rows.Next() {
		rec, err := scanSnapshot(rows)
		if err != nil {
			return nil, wrapSnapshotErr("list", "", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSnapshotErr("list", "", err)
	}
	return records, nil
}

// DeleteSessionSnapshots removes every snapshot recorded for a session.
func (d *Database) DeleteSessionSnapshots(ctx context.Context, sessionID string) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := d.DB.ExecContext(ctx, "DELETE FROM snapshots WHERE session_id = ?", sessionID)
	if err != nil {
		return 0, wrapSnapshotErr("delete", sessionID, err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (SnapshotRecord, error) {
	var rec SnapshotRecord
	var payload, created string
	if err := row.Scan(&rec.ID, &rec.SessionID, &rec.Title, &rec.Total, &rec.MaxTotal, &payload, &created); err != nil {
		return SnapshotRecord{}, err
	}
	if err := json.Unmarshal([]byte(payload), &rec.Snapshot); err != nil {
		return SnapshotRecord{}, fmt.Errorf("decode payload: %w", err)
	}
	if ts, err := time.Parse(timestampLayout, created); err == nil {
		rec.CreatedAt = ts
	}
	return rec, nil
}
