package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/vocesvisuales/internal/config"
	"github.com/akyairhashvil/vocesvisuales/internal/database"
	"github.com/akyairhashvil/vocesvisuales/internal/export"
	"github.com/akyairhashvil/vocesvisuales/internal/models"
	"github.com/akyairhashvil/vocesvisuales/internal/session"
	"github.com/akyairhashvil/vocesvisuales/internal/tui"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("an interactive terminal is required")

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := config.Load(env.ConfigPath, util.ConfigDir(config.AppName))
	if err != nil {
		return err
	}
	schema, err := cfg.Rubric.Schema()
	if err != nil {
		return err
	}

	passphrase, err := resolvePassphrase(env, promptForKey)
	if err != nil {
		return err
	}

	if env.LogFile != "" {
		f, err := tea.LogToFile(env.LogFile, config.AppName)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		util.SilenceLogs()
	}

	db, err := openStore(ctx, util.DataDir(config.AppName, env.DataDir))
	if err != nil {
		return err
	}
	defer db.Close()

	if passphrase != "" {
		checkPassphrase(ctx, db, passphrase)
	}

	state, err := session.New(schema)
	if err != nil {
		return err
	}
	switch {
	case env.ImportPath != "":
		if err := importFile(state, env.ImportPath, passphrase); err != nil {
			return err
		}
	case env.ResumeID != "" || env.Resume:
		restoreStored(ctx, state, db, env.ResumeID)
	}

	locale, theme := resolveUI(ctx, env, cfg, db)
	exporter := export.Multi{
		export.NewFileExporter(util.ExportsDir(config.AppName, env.ReportsDir), passphrase),
		export.NewStoreExporter(db, state.ID()),
	}
	model := tui.NewMainModel(ctx, state, tui.Options{
		Exporter: exporter,
		Store:    db,
		Locale:   locale,
		Theme:    theme,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// openStore opens the sqlite store under dir, creating the directory.
func openStore(ctx context.Context, dir string) (*database.Database, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return database.Open(ctx, filepath.Join(dir, config.DBFileName))
}

// resolvePassphrase returns the export passphrase, prompting for one when
// encryption is requested without it. An empty result means plain exports.
func resolvePassphrase(env config.Env, prompt func(string) (string, error)) (string, error) {
	pass := strings.TrimSpace(env.ExportPassphrase)
	if pass == "" && !env.EncryptExports {
		return "", nil
	}
	for tries := 0; pass == "" && tries < 3; tries++ {
		entered, err := prompt("Export passphrase: ")
		if err != nil {
			return "", err
		}
		if err := util.ValidatePassphrase(entered); err != nil {
			fmt.Fprintf(os.Stderr, "Passphrase too weak: %v\n", err)
			continue
		}
		pass = entered
	}
	if pass == "" {
		return "", errors.New("no usable export passphrase")
	}
	if err := util.ValidatePassphrase(pass); err != nil {
		return "", fmt.Errorf("export passphrase: %w", err)
	}
	return pass, nil
}

type settingsStore interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// checkPassphrase remembers the fingerprint of the first export passphrase
// and warns when a later session encrypts with a different one.
func checkPassphrase(ctx context.Context, store settingsStore, pass string) bool {
	hash := util.HashPassphrase(pass)
	stored, ok := store.GetSetting(ctx, config.SettingPassHash)
	if !ok || stored == "" {
		util.LogError("save passphrase hash", store.SetSetting(ctx, config.SettingPassHash, hash))
		return true
	}
	if stored != hash {
		fmt.Fprintln(os.Stderr, "Warning: export passphrase differs from the one used for earlier exports.")
		return false
	}
	return true
}

// settingsReader is the part of the store resolveUI needs.
type settingsReader interface {
	GetSetting(ctx context.Context, key string) (string, bool)
}

// resolveUI picks the locale and theme: environment first, then the last
// choice saved in the app, then the config file.
func resolveUI(ctx context.Context, env config.Env, cfg config.Config, store settingsReader) (string, string) {
	pick := func(fromEnv, key, fromFile string) string {
		if fromEnv != "" {
			return fromEnv
		}
		if store != nil {
			if v, ok := store.GetSetting(ctx, key); ok && v != "" {
				return v
			}
		}
		return fromFile
	}
	locale := pick(env.Locale, config.SettingLocale, cfg.UI.Locale)
	theme := pick(env.Theme, config.SettingTheme, cfg.UI.Theme)
	return locale, theme
}

type snapshotSource interface {
	LatestSnapshot(ctx context.Context) (models.Snapshot, bool, error)
	GetSnapshot(ctx context.Context, id string) (database.SnapshotRecord, error)
}

// restoreStored loads the snapshot with the given ID into state, or the
// newest one when id is empty. Failures are logged and the session starts
// fresh.
func restoreStored(ctx context.Context, state *session.State, src snapshotSource, id string) bool {
	var snap models.Snapshot
	if id != "" {
		rec, err := src.GetSnapshot(ctx, id)
		if err != nil {
			util.LogError("load snapshot", err)
			return false
		}
		snap = rec.Snapshot
	} else {
		latest, ok, err := src.LatestSnapshot(ctx)
		if err != nil {
			util.LogError("load latest snapshot", err)
			return false
		}
		if !ok {
			return false
		}
		snap = latest
	}
	if err := state.Restore(snap); err != nil {
		util.LogError("restore snapshot", err)
		return false
	}
	return true
}

// importFile restores state from an export file, plain or encrypted. The
// prototype's own JSON downloads are accepted too.
func importFile(state *session.State, path, passphrase string) error {
	snap, err := export.ReadFile(path, passphrase)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	if err := state.Restore(snap); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	return nil
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
