package config

// Layout constants.
const (
	// CompactModeThreshold drops the preview panel below this width.
	CompactModeThreshold = 90

	// EditorInputWidth is the width of the title input and section areas.
	EditorInputWidth = 60

	// EditorAreaHeight is the height of each section textarea.
	EditorAreaHeight = 4

	// PreviewWidth is the width of the poster preview panel.
	PreviewWidth = 40

	// CommentsHeight is the height of the jury comments textarea.
	CommentsHeight = 7

	// ScoreBarWidth is the number of cells in a rendered score slider.
	ScoreBarWidth = 3

	// PaceBarWidth is the number of cells in the pace slider.
	PaceBarWidth = 24
)

// Display limits.
const (
	// StatusMaxWidth caps the status line before truncation.
	StatusMaxWidth = 100

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
