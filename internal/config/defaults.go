package config

const (
	defaultBaseURL        = "https://app.formbricks.com"
	defaultSurveyID       = "cm5sb0baq0009ms03eli9nlgd"
	defaultRequestTimeout = 30

	defaultBreachesField = "e8p6wqvz5ihqls9i1fyy6y1a"
	defaultDateField     = "h6fzgacr725cmapuwzz9ot5h"
	defaultTimeField     = "o45q50hpyzow5xfgk5dr8ey5"
	defaultMediaField    = "qu3bazylkalup4hy24q2pb1n"

	defaultOutputDir = "~/survey-export"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// APIKeyEnvVar is the environment variable consulted when no API key is
// configured.
const APIKeyEnvVar = "FORMBRICKS_API_KEY"

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Formbricks: Formbricks{
			BaseURL:        defaultBaseURL,
			SurveyID:       defaultSurveyID,
			RequestTimeout: defaultRequestTimeout,
		},
		Fields: Fields{
			Breaches: defaultBreachesField,
			Date:     defaultDateField,
			Time:     defaultTimeField,
			Media:    defaultMediaField,
		},
		Export: Export{
			OutputDir: defaultOutputDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
