package tui

import (
	"fmt"

	"github.com/akyairhashvil/vocesvisuales/internal/config"
)

func versionLabel() string {
	label := config.AppVersion
	if config.GitCommit != "unknown" || config.BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", config.AppVersion, config.GitCommit, config.BuildTime)
	}
	return label
}
