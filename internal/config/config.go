// Package config holds application constants and loads the optional
// TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/vocesvisuales/internal/rubric"
	"github.com/spf13/viper"
)

// Config is the file-backed configuration.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Rubric RubricConfig `mapstructure:"rubric"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme  string `mapstructure:"theme"`
	Locale string `mapstructure:"locale"`
}

// RubricConfig replaces the reference rubric when Categories is non-empty.
type RubricConfig struct {
	DefaultScore int              `mapstructure:"default_score"`
	Categories   []CategoryConfig `mapstructure:"categories"`
}

type CategoryConfig struct {
	Key      string            `mapstructure:"key"`
	Label    string            `mapstructure:"label"`
	Criteria []CriterionConfig `mapstructure:"criteria"`
}

type CriterionConfig struct {
	Key   string `mapstructure:"key"`
	Label string `mapstructure:"label"`
}

// Load reads the TOML file at path, or config.toml under dir when path is
// empty. A missing file is not an error. Env vars prefixed VV_ override
// scalar keys, e.g. VV_UI_THEME.
func Load(path, dir string) (Config, error) {
	v := viper.New()
	v.SetDefault("ui.theme", DefaultTheme)
	v.SetDefault("ui.locale", DefaultLocale)
	v.SetDefault("rubric.default_score", int(rubric.ReferenceSchema().Default()))

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName(ConfigFileName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			src := path
			if src == "" {
				src = filepath.Join(dir, ConfigFileName+".toml")
			}
			return Config{}, fmt.Errorf("read config %s: %w", src, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Schema builds the rubric schema the session should use.
func (r RubricConfig) Schema() (rubric.Schema, error) {
	if len(r.Categories) == 0 {
		return rubric.ReferenceSchema(), nil
	}
	cats := make([]rubric.Category, 0, len(r.Categories))
	for _, c := range r.Categories {
		crits := make([]rubric.Criterion, 0, len(c.Criteria))
		for _, k := range c.Criteria {
			crits = append(crits, rubric.Criterion{Key: k.Key, Label: k.Label})
		}
		cats = append(cats, rubric.Category{Key: c.Key, Label: c.Label, Criteria: crits})
	}
	return rubric.NewSchema(rubric.Score(r.DefaultScore), cats...)
}
