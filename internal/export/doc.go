// Package export orchestrates one survey export: fetch the responses,
// download every attachment best-effort, and render the static HTML report.
//
// The build is a single linear pass. Fetch failures and duplicate-filename
// collisions are recovered into a minimal error report so every invocation
// leaves an HTML artifact behind; individual download failures and unsafe
// filenames are skipped with a warning and never abort the run.
package export
