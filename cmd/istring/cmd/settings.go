package cmd

import (
	"os"

	"github.com/msto63/istring/core/config"
	"github.com/msto63/istring/utils/stringx"
)

const envPrefix = "ISTRING"

// settingsFiles are looked up in the working directory when --config is not
// given
var settingsFiles = []string{"istring.toml", "istring.yaml", "istring.yml", "istring.json"}

// Settings holds the CLI settings
type Settings struct {
	Log    LogSettings    `json:"log"`
	Match  MatchSettings  `json:"match"`
	Format FormatSettings `json:"format"`
	Output OutputSettings `json:"output"`

	file string
}

// LogSettings configures the stderr logger
type LogSettings struct {
	Level  string `json:"level" validate:"oneof=trace debug info warn error"`
	Format string `json:"format" validate:"oneof=text json"`
}

// MatchSettings selects how startWith, endWith and replaceAll read patterns
type MatchSettings struct {
	Mode string `json:"mode" validate:"oneof=pattern literal"`
}

// FormatSettings configures template rendering
type FormatSettings struct {
	Missing string `json:"missing"`
}

// OutputSettings configures result rendering
type OutputSettings struct {
	Color bool `json:"color"`
	Quote bool `json:"quote"`
}

func settingsDefaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
		"match": map[string]interface{}{
			"mode": stringx.MatchPattern.String(),
		},
		"format": map[string]interface{}{
			"missing": stringx.Undefined,
		},
		"output": map[string]interface{}{
			"color": true,
			"quote": false,
		},
	}
}

// loadSettings reads path, or the first settings file found in the working
// directory, or only the defaults. Environment overrides apply in all
// three cases.
func loadSettings(path string) (*Settings, error) {
	if path == "" {
		path = findSettingsFile()
	}

	var cfg *config.Config
	if path == "" {
		cfg = config.FromMap(settingsDefaults()).WithEnvPrefix(envPrefix)
	} else {
		var err error
		cfg, err = config.LoadWithOptions(path, config.LoadOptions{
			EnvPrefix: envPrefix,
			Defaults:  settingsDefaults(),
		})
		if err != nil {
			return nil, err
		}
	}

	return &Settings{
		Log: LogSettings{
			Level:  cfg.GetString("log.level"),
			Format: cfg.GetString("log.format"),
		},
		Match: MatchSettings{
			Mode: cfg.GetString("match.mode"),
		},
		Format: FormatSettings{
			Missing: cfg.GetString("format.missing"),
		},
		Output: OutputSettings{
			Color: cfg.GetBool("output.color", true),
			Quote: cfg.GetBool("output.quote"),
		},
		file: path,
	}, nil
}

func findSettingsFile() string {
	for _, name := range settingsFiles {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

// Validate checks the settings values
func (s *Settings) Validate() error {
	return config.Validate(s)
}

// MatchMode returns the configured match mode
func (s *Settings) MatchMode() stringx.MatchMode {
	mode, err := stringx.ParseMatchMode(s.Match.Mode)
	if err != nil {
		return stringx.MatchPattern
	}
	return mode
}
