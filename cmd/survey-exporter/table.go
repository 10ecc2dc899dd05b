package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderKeyValueTable renders the two-column layout shared by the export
// summary and `config show`. Each row is a {key, value} pair; counts read
// better right-aligned, settings left-aligned.
func renderKeyValueTable(keyHeader, valueHeader string, rows [][]string, alignValuesRight bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{keyHeader, valueHeader})

	for _, row := range rows {
		var key, value string
		if len(row) > 0 {
			key = row[0]
		}
		if len(row) > 1 {
			value = row[1]
		}
		tw.AppendRow(table.Row{key, value})
	}

	valueAlign := text.AlignLeft
	if alignValuesRight {
		valueAlign = text.AlignRight
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: valueAlign, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
