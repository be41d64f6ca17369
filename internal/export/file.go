package export

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/akyairhashvil/vocesvisuales/internal/config"
	"github.com/akyairhashvil/vocesvisuales/internal/models"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
)

const maxFileTitleRunes = 80

type encryptedExport struct {
	Encrypted  bool   `json:"encrypted"`
	AppVersion string `json:"app_version"`
	ExportedAt string `json:"exported_at"`
	KDF        string `json:"kdf"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Data       string `json:"data"`
}

// FileExporter writes one JSON file per export into Dir. With a
// passphrase the file holds an AES-GCM envelope instead of plain JSON.
type FileExporter struct {
	Dir        string
	Passphrase string
	Now        func() time.Time
}

func NewFileExporter(dir, passphrase string) *FileExporter {
	return &FileExporter{Dir: dir, Passphrase: passphrase, Now: time.Now}
}

func (e *FileExporter) Export(ctx context.Context, snap models.Snapshot) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	raw, err := Marshal(snap)
	if err != nil {
		return Artifact{}, fmt.Errorf("marshal snapshot: %w", err)
	}
	encrypted := e.Passphrase != ""
	if encrypted {
		env, err := sealExport(raw, e.Passphrase, e.now())
		if err != nil {
			return Artifact{}, fmt.Errorf("encrypt export: %w", err)
		}
		if raw, err = json.MarshalIndent(env, "", "  "); err != nil {
			return Artifact{}, err
		}
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return Artifact{}, err
	}
	path := filepath.Join(e.Dir, FileName(snap.Poster.Title))
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return Artifact{}, err
	}
	return Artifact{Location: path, Size: len(raw), Encrypted: encrypted}, nil
}

func (e *FileExporter) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// FileName builds cartel_voces_visuales_<title>.json, falling back to
// sin_titulo for a blank title.
func FileName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r), strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if runes := []rune(name); len(runes) > maxFileTitleRunes {
		name = string(runes[:maxFileTitleRunes])
	}
	if strings.Trim(name, "_. ") == "" {
		name = config.UntitledFileStem
	}
	return config.ExportFilePrefix + name + ".json"
}

// ReadFile loads an export written by FileExporter.
func ReadFile(path, passphrase string) (models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Snapshot{}, err
	}
	return Decode(data, passphrase)
}

func sealExport(plaintext []byte, passphrase string, now time.Time) (encryptedExport, error) {
	salt, err := util.NewSalt()
	if err != nil {
		return encryptedExport{}, err
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return encryptedExport{}, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return encryptedExport{}, err
	}
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return encryptedExport{
		Encrypted:  true,
		AppVersion: config.AppVersion,
		ExportedAt: now.Format(time.RFC3339),
		KDF:        "argon2id",
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Data:       base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

func openExport(env encryptedExport, passphrase string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("nonce has %d bytes, want %d", len(nonce), gcm.NonceSize())
	}
	plain, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return plain, nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(util.DeriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
