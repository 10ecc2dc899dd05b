// Command survey-exporter fetches survey responses from the Formbricks
// Management API, downloads their media attachments, and writes a static
// HTML report.
package main
