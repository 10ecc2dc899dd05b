package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kitchoi/survey-exporter/internal/export"
)

var summaryTitler = cases.Title(language.Und)

func summaryRows(result export.Result) [][]string {
	label := func(s string) string { return summaryTitler.String(s) }

	if result.ErrorReport {
		return [][]string{
			{label("report"), result.ReportPath},
			{label("status"), "error report (fetch failed)"},
		}
	}
	if result.NoData {
		return [][]string{
			{label("report"), result.ReportPath},
			{label("status"), "no response data"},
		}
	}
	return [][]string{
		{label("report"), result.ReportPath},
		{label("entries"), strconv.Itoa(result.Entries)},
		{label("media files"), strconv.Itoa(result.MediaFiles)},
		{label("downloaded"), strconv.Itoa(result.Downloaded)},
		{label("already present"), strconv.Itoa(result.AlreadyPresent)},
		{label("failed"), strconv.Itoa(result.Failed)},
		{label("skipped unsafe"), strconv.Itoa(result.SkippedUnsafe)},
	}
}

func printSummary(out io.Writer, result export.Result) {
	rows := summaryRows(result)
	if stdoutIsTerminal() {
		fmt.Fprintln(out, renderKeyValueTable("Summary", "", rows, true))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
