package export

import (
	"net/url"
	"strings"

	"github.com/kitchoi/survey-exporter/internal/survey"
)

// htmlEscaper covers the five entities required for untrusted text: the
// apostrophe is rendered as &#39; to match the report's historical output.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func renderDocument(body string) string {
	return "<!doctype html><html><head><meta charset='utf-8'><title>Survey Responses</title></head><body>" +
		body +
		"</body></html>"
}

func renderErrorDocument(err error) string {
	return renderDocument("<p>Error fetching responses: " + escapeHTML(err.Error()) + "</p>")
}

func renderNoDataDocument() string {
	return renderDocument("<p>No response data found</p>")
}

// renderReportDocument renders one table row per entry, in input order.
func renderReportDocument(entries []survey.Entry) string {
	var b strings.Builder
	b.WriteString("<table border='1'>")
	b.WriteString("<thead><tr><th>Breaches</th><th>Date</th><th>Time</th><th>Media</th></tr></thead>")
	b.WriteString("<tbody>")
	for _, entry := range entries {
		b.WriteString("<tr><td>")
		for i, breach := range entry.Breaches {
			if i > 0 {
				b.WriteString("<br/>")
			}
			b.WriteString(escapeHTML(breach))
		}
		b.WriteString("</td><td>")
		b.WriteString(escapeHTML(entry.Date))
		b.WriteString("</td><td>")
		b.WriteString(escapeHTML(entry.Time))
		b.WriteString("</td><td>")
		for i, m := range entry.Media {
			if i > 0 {
				b.WriteString("<br/>")
			}
			b.WriteString(mediaLink(m))
		}
		b.WriteString("</td></tr>")
	}
	b.WriteString("</tbody></table>")
	return renderDocument(b.String())
}

// mediaLink renders one attachment. The href points at the sanitized
// on-disk name (escaped, never percent-decoded); the visible text is the
// percent-decoded original suffix, escaped. Names that failed sanitization
// were never downloaded, so they render as plain text.
func mediaLink(m survey.MediaFile) string {
	display := m.Name
	if decoded, err := url.PathUnescape(m.Name); err == nil {
		display = decoded
	}
	text := escapeHTML(display)

	name := sanitizeName(m.Name)
	if name == "" {
		return text
	}
	return `<a href="` + mediaDirName + `/` + escapeHTML(name) + `">` + text + `</a>`
}
