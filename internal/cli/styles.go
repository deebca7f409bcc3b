// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-lms/internal/settings"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	sectionStyle = cellStyle.Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(8)
)

// renderOptions draws the tree as a section / key / value table, sections
// and keys in lexical order.
func renderOptions(tree settings.Tree) string {
	var rows [][]string
	for _, section := range tree.Sections() {
		for _, key := range tree.Keys(section) {
			v, _ := tree.Lookup(section, key)
			rows = append(rows, []string{section, key, v.String()})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SECTION", "KEY", "VALUE").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return sectionStyle
			default:
				return cellStyle
			}
		}).
		Rows(rows...)

	return t.Render()
}

// renderField draws one "label value" line of the version output.
func renderField(label, value string) string {
	return labelStyle.Render(label) + value
}
