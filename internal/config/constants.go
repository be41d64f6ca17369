package config

// Application and file names.
const (
	AppName          = "vocesvisuales"
	DBFileName       = "vocesvisuales.db"
	ConfigFileName   = "config"
	ExportFilePrefix = "cartel_voces_visuales_"
	UntitledFileStem = "sin_titulo"
	EnvPrefix        = "VV"
)

// Build metadata, set with -ldflags.
var (
	AppVersion = "0.1.0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

// Poster guidance.
const (
	// TitleWordGuideline is the contest's maximum title length in words.
	TitleWordGuideline = 21

	// LandingPreviewLength limits the introduction on the landing page.
	LandingPreviewLength = 80

	// EditorPreviewLength limits the introduction in the editor preview.
	EditorPreviewLength = 120
)

// Rehearsal pace slider, words per minute.
const (
	PaceMin     = 80
	PaceMax     = 200
	PaceDefault = 140
	PaceStep    = 5
)

// Settings keys kept in the store.
const (
	SettingJuryDraft = "jury_draft"
	SettingTheme     = "theme"
	SettingLocale    = "locale"
	SettingPassHash  = "passphrase_hash"
)

// Default presentation settings.
const (
	DefaultLocale = "es"
	DefaultTheme  = "default"
)
