package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/kitchoi/survey-exporter/internal/services"
)

// Validate ensures the configuration is usable. Failures are tagged with
// services.ErrConfiguration. The API key is deliberately not required here:
// whether a key is present is the entry point's concern, so
// `config validate` works without the secret.
func (c *Config) Validate() error {
	if err := c.validateFormbricks(); err != nil {
		return fmt.Errorf("%w: %w", services.ErrConfiguration, err)
	}
	if err := c.validateFields(); err != nil {
		return fmt.Errorf("%w: %w", services.ErrConfiguration, err)
	}
	if err := c.validateLogging(); err != nil {
		return fmt.Errorf("%w: %w", services.ErrConfiguration, err)
	}
	return nil
}

func (c *Config) validateFormbricks() error {
	parsed, err := url.Parse(c.Formbricks.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("formbricks.base_url %q is not an absolute URL", c.Formbricks.BaseURL)
	}
	if c.Formbricks.SurveyID == "" {
		return errors.New("formbricks.survey_id must be set")
	}
	if c.Formbricks.RequestTimeout <= 0 {
		return errors.New("formbricks.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateFields() error {
	named := map[string]string{
		"fields.breaches": c.Fields.Breaches,
		"fields.date":     c.Fields.Date,
		"fields.time":     c.Fields.Time,
		"fields.media":    c.Fields.Media,
	}
	for name, value := range named {
		if value == "" {
			return fmt.Errorf("%s must be set", name)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
