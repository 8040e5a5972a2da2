package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lexistack/lexibuild/internal/storage"
	"github.com/lexistack/lexibuild/internal/types"
)

// RenderRecord formats a full dictionary record for the show command.
func RenderRecord(record *types.DictionaryRecord) string {
	var sections []string

	header := fmt.Sprintf("%s (%s)", record.Lemma, record.POS.Describe())
	sections = append(sections, titleStyle.Render(header))

	if len(record.WordForms) > 0 {
		var forms []string
		for _, wf := range record.WordForms {
			if wf.Tag != "" {
				forms = append(forms, fmt.Sprintf("%s [%s]", wf.Form, wf.Tag))
			} else {
				forms = append(forms, wf.Form)
			}
		}
		sections = append(sections, labelStyle.Render("Forms: ")+strings.Join(forms, ", "))
	}

	for i, entry := range record.Entries {
		var lines []string
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%d. %s", i+1, entry.PartOfSpeech.Describe())))
		for _, def := range entry.Definitions {
			lines = append(lines, "   • "+def)
		}
		if len(entry.Synonyms) > 0 {
			lines = append(lines, "   syn: "+strings.Join(entry.Synonyms, ", "))
		}
		if len(entry.Antonyms) > 0 {
			lines = append(lines, "   ant: "+strings.Join(entry.Antonyms, ", "))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderStats formats database row counts as a bordered table.
func RenderStats(stats *storage.Stats, dbPath string, width int) string {
	if width > 48 {
		width = 48
	}

	rows := [][]string{
		{"Lemmas", fmt.Sprintf("%d", stats.Lemmas)},
		{"Word forms", fmt.Sprintf("%d", stats.WordForms)},
		{"Entries", fmt.Sprintf("%d", stats.Entries)},
		{"Definitions", fmt.Sprintf("%d", stats.Definitions)},
		{"Synonyms", fmt.Sprintf("%d", stats.Synonyms)},
		{"Antonyms", fmt.Sprintf("%d", stats.Antonyms)},
	}

	t := table.New().
		Headers("Table", "Rows").
		Rows(rows...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				style = style.Bold(true).Foreground(ColorAccent)
			}
			return style
		})

	header := titleStyle.Render("Dictionary: " + dbPath)
	return lipgloss.JoinVertical(lipgloss.Left, header, t.String())
}
