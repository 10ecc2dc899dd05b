package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kitchoi/survey-exporter/internal/config"
	"github.com/kitchoi/survey-exporter/internal/export"
	"github.com/kitchoi/survey-exporter/internal/logging"
	"github.com/kitchoi/survey-exporter/internal/media"
	"github.com/kitchoi/survey-exporter/internal/progress"
	"github.com/kitchoi/survey-exporter/internal/services/formbricks"
)

var errMissingAPIKey = errors.New("api key not set: pass --api-key, set FORMBRICKS_API_KEY, or add formbricks.api_key to the config file")

// progressBuffer bounds the progress channel; overflow degrades to the
// logger instead of blocking the export.
const progressBuffer = 64

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var surveyID string
	var apiKey string
	var breachesField, dateField, timeField, mediaField string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch survey responses and build the HTML report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			req := export.Request{
				APIKey:    firstNonEmpty(apiKey, cfg.Formbricks.APIKey),
				OutputDir: cfg.Export.OutputDir,
				SurveyID:  firstNonEmpty(surveyID, cfg.Formbricks.SurveyID),
				Fields:    cfg.FieldIDs(),
			}
			if strings.TrimSpace(outputDir) != "" {
				expanded, err := config.ExpandPath(outputDir)
				if err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
				req.OutputDir = expanded
			}
			overrideField(&req.Fields.Breaches, breachesField)
			overrideField(&req.Fields.Date, dateField)
			overrideField(&req.Fields.Time, timeField)
			overrideField(&req.Fields.Media, mediaField)

			if strings.TrimSpace(req.APIKey) == "" {
				return errMissingAPIKey
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			// The drain goroutine is the consumer side of the progress
			// channel; the builder never blocks on it.
			messages := make(chan string, progressBuffer)
			done := make(chan struct{})
			go func() {
				defer close(done)
				for msg := range messages {
					fmt.Fprintln(cmd.OutOrStdout(), msg)
				}
			}()

			timeout := time.Duration(cfg.Formbricks.RequestTimeout) * time.Second
			client := formbricks.NewClient(cfg.Formbricks.BaseURL, req.APIKey, &http.Client{Timeout: timeout})
			downloader := media.NewDownloader(&http.Client{Timeout: timeout}, logger)
			builder := export.NewBuilder(client, downloader, progress.NewChannelSink(messages, logger), logger)

			result, err := builder.Build(cmd.Context(), req)
			close(messages)
			<-done
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the report and media files")
	cmd.Flags().StringVar(&surveyID, "survey-id", "", "Survey to export")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Formbricks API key (overrides config and environment)")
	cmd.Flags().StringVar(&breachesField, "breaches-field", "", "Question identifier for breaches")
	cmd.Flags().StringVar(&dateField, "date-field", "", "Question identifier for the date")
	cmd.Flags().StringVar(&timeField, "time-field", "", "Question identifier for the time")
	cmd.Flags().StringVar(&mediaField, "media-field", "", "Question identifier for media URLs")

	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func overrideField(target *string, value string) {
	if strings.TrimSpace(value) != "" {
		*target = strings.TrimSpace(value)
	}
}
