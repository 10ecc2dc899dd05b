package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/kitchoi/survey-exporter/internal/fileutil"
	"github.com/kitchoi/survey-exporter/internal/progress"
	"github.com/kitchoi/survey-exporter/internal/services"
	"github.com/kitchoi/survey-exporter/internal/survey"
)

// ReportFileName is the name of the rendered report inside the output
// directory.
const ReportFileName = "survey_responses.html"

const mediaDirName = "media"

// Fetcher retrieves survey entries from the management API.
type Fetcher interface {
	FetchEntries(ctx context.Context, surveyID string, fields survey.FieldIDs) ([]survey.Entry, error)
}

// Downloader fetches one media file best-effort; false means the file was
// not written.
type Downloader interface {
	Download(ctx context.Context, url string, header http.Header, targetPath string) bool
}

// Request carries the per-invocation parameters of a build.
type Request struct {
	APIKey    string
	OutputDir string
	SurveyID  string
	Fields    survey.FieldIDs
}

// Result summarizes a completed build. ReportPath is always set on a nil
// error, even when the report is the recovered error or no-data document.
type Result struct {
	ReportPath     string
	Entries        int
	MediaFiles     int
	Downloaded     int
	AlreadyPresent int
	Failed         int
	SkippedUnsafe  int
	ErrorReport    bool
	NoData         bool
}

// Builder runs exports. All collaborators are injected so tests can stub
// the network edges.
type Builder struct {
	fetcher    Fetcher
	downloader Downloader
	sink       progress.Sink
	logger     *slog.Logger
}

// NewBuilder constructs a Builder. A nil sink discards progress messages; a
// nil logger is replaced with slog.Default().
func NewBuilder(fetcher Fetcher, downloader Downloader, sink progress.Sink, logger *slog.Logger) *Builder {
	if sink == nil {
		sink = progress.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{fetcher: fetcher, downloader: downloader, sink: sink, logger: logger}
}

// Build performs one export and returns the path of the written report.
//
// Fetch failures (services.ErrFetch) and duplicate-filename collisions
// (survey.ErrDuplicateMediaKey) are recovered: the error lands in a minimal
// report and Build returns its path with a nil error. Only output-directory
// and report-write failures propagate.
func (b *Builder) Build(ctx context.Context, req Request) (Result, error) {
	if err := fileutil.EnsureDir(req.OutputDir); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}
	result := Result{ReportPath: filepath.Join(req.OutputDir, ReportFileName)}

	entries, err := b.fetcher.FetchEntries(ctx, req.SurveyID, req.Fields)
	if err != nil {
		if !errors.Is(err, services.ErrFetch) && !errors.Is(err, survey.ErrDuplicateMediaKey) {
			return Result{}, err
		}
		b.emit("Error fetching responses: " + err.Error())
		result.ErrorReport = true
		if werr := b.writeReport(result.ReportPath, renderErrorDocument(err)); werr != nil {
			return Result{}, werr
		}
		return result, nil
	}

	result.Entries = len(entries)
	if len(entries) == 0 {
		b.emit("No response data found")
		result.NoData = true
		if err := b.writeReport(result.ReportPath, renderNoDataDocument()); err != nil {
			return Result{}, err
		}
		return result, nil
	}

	b.downloadAll(ctx, req, entries, &result)

	if err := b.writeReport(result.ReportPath, renderReportDocument(entries)); err != nil {
		return Result{}, err
	}
	b.emit("Done. Output written to " + ReportFileName)
	return result, nil
}

func (b *Builder) downloadAll(ctx context.Context, req Request, entries []survey.Entry, result *Result) {
	header := http.Header{}
	header.Set("x-api-key", req.APIKey)
	mediaDir := filepath.Join(req.OutputDir, mediaDirName)

	for _, entry := range entries {
		for _, m := range entry.Media {
			result.MediaFiles++
			name := sanitizeName(m.Name)
			if name == "" {
				result.SkippedUnsafe++
				b.emit(fmt.Sprintf("Warning: skipping unsafe media filename %q from %s", m.Name, m.URL))
				continue
			}
			targetPath := filepath.Join(mediaDir, name)
			if _, err := os.Stat(targetPath); err == nil {
				result.AlreadyPresent++
				b.emit("Media already present, skipping: " + name)
				continue
			}
			b.emit("Downloading media: " + m.URL)
			if b.downloader.Download(ctx, m.URL, header, targetPath) {
				result.Downloaded++
				continue
			}
			result.Failed++
			b.emit(fmt.Sprintf("Warning: failed to download %s to %s", m.URL, targetPath))
		}
	}
}

func (b *Builder) writeReport(path, document string) error {
	if err := fileutil.WriteFileAtomic(path, []byte(document), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (b *Builder) emit(message string) {
	b.sink.Emit(message)
}

// sanitizeName reduces a derived filename to its final path component and
// rejects anything that could escape the media directory. An empty result
// means the name is unusable.
func sanitizeName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "" || base == "." || base == ".." || base == "/" {
		return ""
	}
	return base
}
