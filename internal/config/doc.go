// Package config loads, normalizes, and validates the exporter
// configuration.
//
// Settings come from a TOML file (default ~/.config/survey-exporter/
// config.toml, or survey-exporter.toml in the working directory), with
// built-in defaults for every field and an environment fallback for the API
// key. All path fields are expanded before use.
package config
