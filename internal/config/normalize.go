package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeFormbricks(); err != nil {
		return err
	}
	c.normalizeFields()
	if err := c.normalizeExport(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeFormbricks() error {
	c.Formbricks.BaseURL = strings.TrimRight(strings.TrimSpace(c.Formbricks.BaseURL), "/")
	if c.Formbricks.BaseURL == "" {
		c.Formbricks.BaseURL = defaultBaseURL
	}
	c.Formbricks.SurveyID = strings.TrimSpace(c.Formbricks.SurveyID)
	if c.Formbricks.SurveyID == "" {
		c.Formbricks.SurveyID = defaultSurveyID
	}
	c.Formbricks.APIKey = strings.TrimSpace(c.Formbricks.APIKey)
	if c.Formbricks.APIKey == "" {
		if value, ok := os.LookupEnv(APIKeyEnvVar); ok {
			c.Formbricks.APIKey = strings.TrimSpace(value)
		}
	}
	if c.Formbricks.RequestTimeout == 0 {
		c.Formbricks.RequestTimeout = defaultRequestTimeout
	}
	return nil
}

func (c *Config) normalizeFields() {
	if strings.TrimSpace(c.Fields.Breaches) == "" {
		c.Fields.Breaches = defaultBreachesField
	}
	if strings.TrimSpace(c.Fields.Date) == "" {
		c.Fields.Date = defaultDateField
	}
	if strings.TrimSpace(c.Fields.Time) == "" {
		c.Fields.Time = defaultTimeField
	}
	if strings.TrimSpace(c.Fields.Media) == "" {
		c.Fields.Media = defaultMediaField
	}
}

func (c *Config) normalizeExport() error {
	if strings.TrimSpace(c.Export.OutputDir) == "" {
		c.Export.OutputDir = defaultOutputDir
	}
	expanded, err := expandPath(c.Export.OutputDir)
	if err != nil {
		return fmt.Errorf("export.output_dir: %w", err)
	}
	c.Export.OutputDir = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.LogDir) != "" {
		expanded, err := expandPath(c.Logging.LogDir)
		if err != nil {
			return fmt.Errorf("logging.log_dir: %w", err)
		}
		c.Logging.LogDir = expanded
	} else {
		c.Logging.LogDir = ""
	}
	return nil
}
