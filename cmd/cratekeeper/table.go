package main

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"cratekeeper/internal/process"
)

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

// renderProposal lays out a tag proposal as a table, the file name
// first and the tag rows below it.
func renderProposal(p *process.Proposal) string {
	rows := make([][]string, 0, len(p.Fields)+1)
	rows = append(rows, []string{"file", p.File, p.NewFile})
	for _, f := range p.Fields {
		rows = append(rows, []string{string(f.Name), f.Old, f.New})
	}
	return renderTable([]string{"Tag", "Current", "Proposed"}, rows)
}
