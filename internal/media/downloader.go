// Package media performs best-effort single-file downloads of survey
// attachments.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kitchoi/survey-exporter/internal/fileutil"
)

// RequestTimeout is the fixed per-download network timeout.
const RequestTimeout = 30 * time.Second

// HTTPDoer describes the HTTP client used by the downloader.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Downloader fetches one URL to one file. Failures never propagate as
// errors; the boolean result is the whole contract and the caller owns the
// progress messaging around it.
type Downloader struct {
	client HTTPDoer
	logger *slog.Logger
}

// NewDownloader constructs a Downloader. A nil httpClient falls back to a
// default client with the fixed request timeout; a nil logger drops the
// debug detail of failed attempts.
func NewDownloader(httpClient HTTPDoer, logger *slog.Logger) *Downloader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: RequestTimeout}
	}
	return &Downloader{client: httpClient, logger: logger}
}

// Download fetches url with the given headers and writes the body to
// targetPath. The body lands in a uuid-suffixed temp file that is renamed
// into place, so targetPath either holds the complete payload or does not
// exist. Returns false on any failure after removing the partial file.
// The skip-if-exists policy lives in the caller; Download always attempts
// the network call.
func (d *Downloader) Download(ctx context.Context, url string, header http.Header, targetPath string) bool {
	if err := fileutil.EnsureDir(filepath.Dir(targetPath)); err != nil {
		d.debug("create media directory", url, targetPath, err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		d.debug("build media request", url, targetPath, err)
		return false
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		d.debug("fetch media", url, targetPath, err)
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		d.debug("fetch media", url, targetPath, fmt.Errorf("status %d", resp.StatusCode))
		return false
	}

	tmpPath := fmt.Sprintf("%s.%s.partial", targetPath, uuid.NewString())
	out, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		d.debug("create media file", url, targetPath, err)
		return false
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(tmpPath)
		d.debug("write media file", url, targetPath, err)
		return false
	}
	if err := out.Sync(); err != nil {
		out.Close()
		_ = os.Remove(tmpPath)
		d.debug("sync media file", url, targetPath, err)
		return false
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmpPath)
		d.debug("close media file", url, targetPath, err)
		return false
	}
	if err := os.Rename(tmpPath, targetPath); err != nil {
		_ = os.Remove(tmpPath)
		d.debug("finalize media file", url, targetPath, err)
		return false
	}
	return true
}

func (d *Downloader) debug(operation, url, targetPath string, err error) {
	if d.logger == nil {
		return
	}
	d.logger.Debug("media download failed",
		slog.String("operation", operation),
		slog.String("url", url),
		slog.String("target", targetPath),
		slog.String("error", err.Error()),
	)
}
