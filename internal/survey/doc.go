// Package survey holds the parsed-response domain types shared by the
// Formbricks client and the report builder: the Entry value type, the field
// identifier set, and the media suffix resolver that derives stable
// filenames from attachment URLs.
package survey
