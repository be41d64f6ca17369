// Package export hands session snapshots to collaborators that persist
// them. Exporters only ever see a copy; they cannot reach live state.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/akyairhashvil/vocesvisuales/internal/models"
)

var (
	ErrPassphraseRequired = errors.New("export is encrypted; passphrase required")
	ErrWrongPassphrase    = errors.New("incorrect passphrase")
)

// Artifact describes what an exporter produced.
type Artifact struct {
	Location  string
	Size      int
	Encrypted bool
}

// Exporter consumes a snapshot.
type Exporter interface {
	Export(ctx context.Context, snap models.Snapshot) (Artifact, error)
}

// Marshal renders a snapshot as indented JSON: {"poster":{...},"rubric":{...}}.
func Marshal(snap models.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// Unmarshal parses plain snapshot JSON.
func Unmarshal(data []byte) (models.Snapshot, error) {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, err
	}
	return snap, nil
}

// Decode parses either a plain or an encrypted export.
func Decode(data []byte, passphrase string) (models.Snapshot, error) {
	var head struct {
		Encrypted bool `json:"encrypted"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return models.Snapshot{}, err
	}
	if !head.Encrypted {
		return Unmarshal(data)
	}
	if passphrase == "" {
		return models.Snapshot{}, ErrPassphraseRequired
	}
	var env encryptedExport
	if err := json.Unmarshal(data, &env); err != nil {
		return models.Snapshot{}, err
	}
	raw, err := openExport(env, passphrase)
	if err != nil {
		return models.Snapshot{}, err
	}
	return Unmarshal(raw)
}

// Multi fans a snapshot out to several exporters. Every exporter runs even
// if an earlier one fails; the errors are joined.
type Multi []Exporter

func (m Multi) Export(ctx context.Context, snap models.Snapshot) (Artifact, error) {
	var (
		locations []string
		errs      []error
		out       Artifact
	)
	for _, e := range m {
		if e == nil {
			continue
		}
		a, err := e.Export(ctx, snap.Clone())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		locations = append(locations, a.Location)
		out.Size += a.Size
		out.Encrypted = out.Encrypted || a.Encrypted
	}
	out.Location = strings.Join(locations, ", ")
	return out, errors.Join(errs...)
}
