package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/vocesvisuales/internal/config"
	"github.com/akyairhashvil/vocesvisuales/internal/rubric"
	"github.com/charmbracelet/x/ansi"
)

// formatElapsed renders a stopwatch reading as mm:ss, or hh:mm:ss past an hour.
func formatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// scoreBar renders a score as filled and empty cells.
func scoreBar(score rubric.Score) string {
	filled := int(score)
	if filled < 0 {
		filled = 0
	}
	if filled > config.ScoreBarWidth {
		filled = config.ScoreBarWidth
	}
	return strings.Repeat("■", filled) + strings.Repeat("□", config.ScoreBarWidth-filled)
}

// paceBar renders the pace slider position.
func paceBar(pace int) string {
	span := config.PaceMax - config.PaceMin
	pos := (pace - config.PaceMin) * (config.PaceBarWidth - 1) / span
	if pos < 0 {
		pos = 0
	}
	if pos > config.PaceBarWidth-1 {
		pos = config.PaceBarWidth - 1
	}
	return strings.Repeat("─", pos) + "●" + strings.Repeat("─", config.PaceBarWidth-1-pos)
}

// truncateLabel shortens text to max terminal cells.
func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
