package formbricks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kitchoi/survey-exporter/internal/services"
	"github.com/kitchoi/survey-exporter/internal/survey"
)

var testFields = survey.FieldIDs{
	Breaches: "breach_123",
	Date:     "date_456",
	Time:     "time_789",
	Media:    "media_101",
}

func newResponseServer(t *testing.T, payload any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/management/responses" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("surveyId"); got != "survey_123" {
			t.Fatalf("unexpected surveyId: %q", got)
		}
		if got := r.Header.Get("x-api-key"); got != "test_key" {
			t.Fatalf("unexpected api key header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}))
}

func record(data map[string]any) map[string]any {
	return map[string]any{"data": data}
}

func TestFetchEntriesMapsRecordsInOrder(t *testing.T) {
	server := newResponseServer(t, map[string]any{
		"data": []any{
			record(map[string]any{
				"breach_123": []any{"Breach A", "Breach B"},
				"date_456":   "2025-11-15",
				"time_789":   "14:30",
				"media_101": []any{
					"https://example.com/private/file1.pdf",
					"https://example.com/private/file2.jpg",
				},
			}),
			record(map[string]any{
				"breach_123": []any{"Breach C"},
				"date_456":   "2025-11-14",
				"time_789":   "10:15",
				"media_101":  []any{"https://example.com/uploads/document.png"},
			}),
		},
	})
	defer server.Close()

	client := NewClient(server.URL, "test_key", nil)
	entries, err := client.FetchEntries(context.Background(), "survey_123", testFields)
	if err != nil {
		t.Fatalf("FetchEntries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if len(first.Breaches) != 2 || first.Breaches[0] != "Breach A" || first.Breaches[1] != "Breach B" {
		t.Fatalf("unexpected breaches: %v", first.Breaches)
	}
	if first.Date != "2025-11-15" || first.Time != "14:30" {
		t.Fatalf("unexpected date/time: %q %q", first.Date, first.Time)
	}
	m := first.MediaMap()
	if m["file1.pdf"] != "https://example.com/private/file1.pdf" {
		t.Fatalf("media map missing file1.pdf: %v", m)
	}
	if m["file2.jpg"] != "https://example.com/private/file2.jpg" {
		t.Fatalf("media map missing file2.jpg: %v", m)
	}

	second := entries[1]
	if second.Date != "2025-11-14" {
		t.Fatalf("entries out of order: second date %q", second.Date)
	}
	if got := second.MediaMap()["document.png"]; got != "https://example.com/uploads/document.png" {
		t.Fatalf("unexpected second entry media: %v", second.MediaMap())
	}
}

func TestFetchEntriesSingleMediaString(t *testing.T) {
	server := newResponseServer(t, map[string]any{
		"data": []any{
			record(map[string]any{
				"media_101": "https://example.com/private/single_file.pdf",
			}),
		},
	})
	defer server.Close()

	client := NewClient(server.URL, "test_key", nil)
	entries, err := client.FetchEntries(context.Background(), "survey_123", testFields)
	if err != nil {
		t.Fatalf("FetchEntries returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].MediaMap()["single_file.pdf"]; got != "https://example.com/private/single_file.pdf" {
		t.Fatalf("expected one-element media map, got %v", entries[0].MediaMap())
	}
}

func TestFetchEntriesMissingFields(t *testing.T) {
	server := newResponseServer(t, map[string]any{
		"data": []any{record(map[string]any{"breach_123": []any{}})},
	})
	defer server.Close()

	client := NewClient(server.URL, "test_key", nil)
	entries, err := client.FetchEntries(context.Background(), "survey_123", testFields)
	if err != nil {
		t.Fatalf("FetchEntries returned error: %v", err)
	}
	entry := entries[0]
	if len(entry.Breaches) != 0 {
		t.Fatalf("expected empty breaches, got %v", entry.Breaches)
	}
	if entry.Date != "" || entry.Time != "" {
		t.Fatalf("expected empty date/time, got %q %q", entry.Date, entry.Time)
	}
	if len(entry.Media) != 0 {
		t.Fatalf("expected empty media, got %v", entry.Media)
	}
}

func TestFetchEntriesNumericScalarsAreStringified(t *testing.T) {
	server := newResponseServer(t, map[string]any{
		"data": []any{
			record(map[string]any{"date_456": 20251115, "time_789": 14.5}),
		},
	})
	defer server.Close()

	client := NewClient(server.URL, "test_key", nil)
	entries, err := client.FetchEntries(context.Background(), "survey_123", testFields)
	if err != nil {
		t.Fatalf("FetchEntries returned error: %v", err)
	}
	if entries[0].Date != "20251115" {
		t.Fatalf("numeric date rendered as %q, want %q", entries[0].Date, "20251115")
	}
	if entries[0].Time != "14.5" {
		t.Fatalf("numeric time rendered as %q, want %q", entries[0].Time, "14.5")
	}
}

func TestFetchEntriesNonListDataYieldsNoEntries(t *testing.T) {
	server := newResponseServer(t, map[string]any{"data": "invalid"})
	defer server.Close()

	client := NewClient(server.URL, "test_key", nil)
	entries, err := client.FetchEntries(context.Background(), "survey_123", testFields)
	if err != nil {
		t.Fatalf("expected no error for non-list data, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected zero entries, got %d", len(entries))
	}
}

func TestFetchEntriesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test_key", nil)
	_, err := client.FetchEntries(context.Background(), "survey_123", testFields)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !errors.Is(err, services.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if !strings.Contains(err.Error(), "Failed to fetch entries") {
		t.Fatalf("error %q missing fetch failure message", err.Error())
	}
}

func TestFetchEntriesErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad_key", nil)
	_, err := client.FetchEntries(context.Background(), "survey_123", testFields)
	if !errors.Is(err, services.ErrFetch) {
		t.Fatalf("expected ErrFetch for 403, got %v", err)
	}
}

func TestFetchEntriesMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test_key", nil)
	_, err := client.FetchEntries(context.Background(), "survey_123", testFields)
	if !errors.Is(err, services.ErrFetch) {
		t.Fatalf("expected ErrFetch for malformed body, got %v", err)
	}
}

func TestFetchEntriesDuplicateSuffixAbortsFetch(t *testing.T) {
	server := newResponseServer(t, map[string]any{
		"data": []any{
			record(map[string]any{
				"media_101": []any{
					"https://example.com/private/document.pdf",
					"https://other.com/private/document.pdf",
				},
			}),
		},
	})
	defer server.Close()

	client := NewClient(server.URL, "test_key", nil)
	_, err := client.FetchEntries(context.Background(), "survey_123", testFields)
	if err == nil {
		t.Fatal("expected duplicate suffix error")
	}
	if !errors.Is(err, survey.ErrDuplicateMediaKey) {
		t.Fatalf("expected ErrDuplicateMediaKey, got %v", err)
	}
	if errors.Is(err, services.ErrFetch) {
		t.Fatalf("duplicate suffix must stay distinct from ErrFetch: %v", err)
	}
	for _, want := range []string{"document.pdf", "https://example.com/private/document.pdf", "https://other.com/private/document.pdf"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err.Error(), want)
		}
	}
}
