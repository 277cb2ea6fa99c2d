// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	tableTitleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

type (
	// TableOptions describes a static table.
	TableOptions struct {
		// Title is rendered above the table when set.
		Title string
		// Headers are the column titles.
		Headers []string
		// Rows contains the table data.
		Rows [][]string
		// Border frames the table; BorderNone still separates columns with spaces.
		Border BorderStyle
		// Width caps the rendered width (0 for natural width).
		Width int
		// CellStyle, when set, overrides the style of individual body cells.
		CellStyle func(row, col int) lipgloss.Style
	}
)

// RenderTable renders opts as a string. An invalid border falls back to BorderRounded.
func RenderTable(opts TableOptions) string {
	border, ok := opts.Border.border()
	if !ok {
		border, _ = BorderRounded.border()
	}

	t := table.New().
		Border(border).
		BorderStyle(tableBorderStyle).
		Headers(opts.Headers...).
		Rows(opts.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if opts.CellStyle != nil {
				return opts.CellStyle(row, col).Inherit(tableCellStyle)
			}
			return tableCellStyle
		})
	if opts.Border == BorderNone {
		t = t.BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
			BorderColumn(false).BorderHeader(false)
	}
	if opts.Width > 0 {
		t = t.Width(opts.Width)
	}

	out := t.String()
	if opts.Title != "" {
		out = tableTitleStyle.Render(opts.Title) + "\n" + out
	}
	return out
}
