package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"repkit/internal/plan"
)

// tableColumn describes one column of a rendered listing. numeric columns
// are right-aligned; maxWidth, when positive, wraps long cells such as
// exercise names copied verbatim from library documents.
type tableColumn struct {
	title    string
	numeric  bool
	maxWidth int
}

func renderTable(columns []tableColumn, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.title
		align := text.AlignLeft
		if col.numeric {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			WidthMax:    col.maxWidth,
		}
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		cells := make(table.Row, len(columns))
		for i := range columns {
			if i < len(row) {
				cells[i] = row[i]
			} else {
				cells[i] = ""
			}
		}
		tw.AppendRow(cells)
	}

	return tw.Render()
}

// planExerciseTable renders one plan section. The prescription column merges
// sets and reps; the notes column carries the difficulty, or flags exercises
// whose details fell back to library instructions after a failed generation.
func planExerciseTable(exercises []plan.EnrichedExercise) string {
	rows := make([][]string, 0, len(exercises))
	for _, exercise := range exercises {
		prescription := exercise.Sets
		if exercise.Reps != "" {
			prescription = strings.TrimSpace(prescription + " x " + exercise.Reps)
		}
		note := exercise.Difficulty
		if exercise.DetailError != "" {
			note = "library fallback"
		}
		rows = append(rows, []string{exercise.Name, prescription, note})
	}
	return renderTable([]tableColumn{
		{title: "Exercise", maxWidth: 40},
		{title: "Sets", numeric: true},
		{title: "Notes", maxWidth: 32},
	}, rows)
}
