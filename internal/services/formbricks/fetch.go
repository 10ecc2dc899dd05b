package formbricks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kitchoi/survey-exporter/internal/services"
	"github.com/kitchoi/survey-exporter/internal/survey"
)

const fetchFailure = "Failed to fetch entries"

// FetchEntries issues one GET to the management responses endpoint and maps
// every raw record to a survey.Entry, preserving API response order.
//
// Transport, status, and decode failures are tagged with services.ErrFetch.
// A payload whose top-level data field is not a list yields an empty slice
// and no error. A derived-filename collision inside a single entry aborts
// the fetch with survey.ErrDuplicateMediaKey.
func (c *Client) FetchEntries(ctx context.Context, surveyID string, fields survey.FieldIDs) ([]survey.Entry, error) {
	endpoint := fmt.Sprintf("%s/api/v1/management/responses?surveyId=%s", c.baseURL, url.QueryEscape(surveyID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, wrapFetch(err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, wrapFetch(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, wrapFetch(fmt.Errorf("responses endpoint returned %d", resp.StatusCode))
	}

	decoder := json.NewDecoder(resp.Body)
	// UseNumber keeps numeric scalars in their literal form; float64 would
	// render large dates like 20251115 in scientific notation.
	decoder.UseNumber()
	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return nil, wrapFetch(err)
	}
	return entriesFromPayload(payload, fields)
}

func wrapFetch(err error) error {
	return services.Wrap(services.ErrFetch, "formbricks", "fetch responses", fetchFailure, err)
}

func entriesFromPayload(payload any, fields survey.FieldIDs) ([]survey.Entry, error) {
	object, ok := payload.(map[string]any)
	if !ok {
		return []survey.Entry{}, nil
	}
	records, ok := object["data"].([]any)
	if !ok {
		// Missing or non-list data is the "no responses" case, not an error.
		return []survey.Entry{}, nil
	}

	entries := make([]survey.Entry, 0, len(records))
	for _, record := range records {
		entry := survey.Entry{
			Breaches: stringList(fieldValue(record, fields.Breaches)),
			Date:     scalarString(fieldValue(record, fields.Date)),
			Time:     scalarString(fieldValue(record, fields.Time)),
		}
		for _, mediaURL := range mediaURLs(fieldValue(record, fields.Media)) {
			if err := entry.AddMedia(mediaURL); err != nil {
				return nil, err
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// fieldValue reads record.data[fieldID] from a raw response record.
// Anything that does not match the expected nesting yields nil.
func fieldValue(record any, fieldID string) any {
	object, ok := record.(map[string]any)
	if !ok {
		return nil
	}
	data, ok := object["data"].(map[string]any)
	if !ok {
		return nil
	}
	return data[fieldID]
}

// stringList coerces a raw field value into a list of strings; absent or
// wrong-shaped values become an empty list.
func stringList(value any) []string {
	list, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, scalarString(item))
	}
	return out
}

// scalarString coerces a raw scalar into its string form; absent values
// become the empty string.
func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// mediaURLs coerces the media field into a list of URL strings: a list of
// strings, a single string treated as a one-element list, or absent treated
// as empty.
func mediaURLs(value any) []string {
	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}
