package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kitchoi/survey-exporter/internal/survey"
)

//go:embed sample_config.toml
var sampleConfig string

// Formbricks contains configuration for the survey management API.
type Formbricks struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	SurveyID       string `toml:"survey_id"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Fields names the survey question identifiers read out of each response.
type Fields struct {
	Breaches string `toml:"breaches"`
	Date     string `toml:"date"`
	Time     string `toml:"time"`
	Media    string `toml:"media"`
}

// Export contains output location configuration.
type Export struct {
	OutputDir string `toml:"output_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	LogDir string `toml:"log_dir"`
}

// Config encapsulates all configuration values for the exporter.
//
// Sections by subsystem:
//   - Formbricks: endpoint, credentials, survey selection, request timeout
//   - Fields: breach/date/time/media question identifiers
//   - Export: output directory for the report and media files
//   - Logging: log format, level, and optional log directory
type Config struct {
	Formbricks Formbricks `toml:"formbricks"`
	Fields     Fields     `toml:"fields"`
	Export     Export     `toml:"export"`
	Logging    Logging    `toml:"logging"`
}

// FieldIDs returns the configured question identifiers as the domain type
// consumed by the fetcher.
func (c *Config) FieldIDs() survey.FieldIDs {
	return survey.FieldIDs{
		Breaches: c.Fields.Breaches,
		Date:     c.Fields.Date,
		Time:     c.Fields.Time,
		Media:    c.Fields.Media,
	}
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/survey-exporter/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("survey-exporter.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// ExpandPath resolves a leading ~ to the current user's home directory.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return home, nil
	}
	if strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Abs(trimmed)
}
