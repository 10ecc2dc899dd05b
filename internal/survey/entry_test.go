package survey

import (
	"errors"
	"strings"
	"testing"
)

func TestEntryAddMediaBuildsOrderedMap(t *testing.T) {
	var entry Entry
	urls := []string{
		"https://example.com/private/file1.pdf",
		"https://example.com/uploads/document.png",
	}
	for _, u := range urls {
		if err := entry.AddMedia(u); err != nil {
			t.Fatalf("AddMedia(%q) returned error: %v", u, err)
		}
	}

	if len(entry.Media) != 2 {
		t.Fatalf("expected 2 media files, got %d", len(entry.Media))
	}
	if entry.Media[0].Name != "file1.pdf" || entry.Media[1].Name != "document.png" {
		t.Fatalf("unexpected media order: %+v", entry.Media)
	}

	m := entry.MediaMap()
	if m["file1.pdf"] != urls[0] {
		t.Fatalf("media map missing file1.pdf: %v", m)
	}
	if m["document.png"] != urls[1] {
		t.Fatalf("media map missing document.png: %v", m)
	}
}

func TestEntryAddMediaRejectsDuplicateSuffix(t *testing.T) {
	var entry Entry
	first := "https://example.com/private/document.pdf"
	second := "https://other.com/private/document.pdf"

	if err := entry.AddMedia(first); err != nil {
		t.Fatalf("first AddMedia returned error: %v", err)
	}
	err := entry.AddMedia(second)
	if err == nil {
		t.Fatal("expected duplicate suffix error")
	}
	if !errors.Is(err, ErrDuplicateMediaKey) {
		t.Fatalf("expected ErrDuplicateMediaKey, got %v", err)
	}
	for _, want := range []string{"Duplicate media suffix", "document.pdf", first, second, "naming conflict"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err.Error(), want)
		}
	}
}
