// Package formbricks implements the Formbricks Management API client used
// to fetch survey responses.
//
// The client issues a single authenticated GET per export and maps the raw
// nested response records into survey.Entry values. Transport and decode
// failures are tagged with services.ErrFetch; a well-formed payload whose
// data field is not a list is the "no responses" case and yields an empty
// slice instead of an error.
package formbricks
