package survey

import (
	"errors"
	"fmt"
)

// ErrDuplicateMediaKey marks two media URLs within one entry colliding on
// the same derived filename. The collision aborts the whole fetch rather
// than skipping the record, so the caller never renders a report that
// silently dropped an attachment.
var ErrDuplicateMediaKey = errors.New("duplicate media key")

// FieldIDs names the survey questions to read out of each raw response
// record.
type FieldIDs struct {
	Breaches string
	Date     string
	Time     string
	Media    string
}

// MediaFile pairs a derived filename with the URL it came from.
type MediaFile struct {
	Name string
	URL  string
}

// Entry is one parsed survey response. Media preserves the order the URLs
// appeared in the raw record; names are unique within an entry. Entries are
// value types and are not mutated after the fetch that produced them.
type Entry struct {
	Breaches []string
	Date     string
	Time     string
	Media    []MediaFile
}

// AddMedia derives the filename for url and appends it to the entry's media
// list. Returns an error wrapping ErrDuplicateMediaKey when the derived name
// is already taken by another URL in this entry.
func (e *Entry) AddMedia(url string) error {
	name := MediaSuffix(url)
	for _, m := range e.Media {
		if m.Name == name {
			return fmt.Errorf("%w: Duplicate media suffix %q for %s and %s: naming conflict", ErrDuplicateMediaKey, name, m.URL, url)
		}
	}
	e.Media = append(e.Media, MediaFile{Name: name, URL: url})
	return nil
}

// MediaMap returns the filename to source URL mapping for the entry.
func (e *Entry) MediaMap() map[string]string {
	out := make(map[string]string, len(e.Media))
	for _, m := range e.Media {
		out[m.Name] = m.URL
	}
	return out
}
