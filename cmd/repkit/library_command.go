package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"repkit/internal/library"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	var muscleFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "library",
		Short: "Inspect the parsed exercise library",
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := ctx.loadIndex()
			if err != nil {
				return err
			}

			filter := strings.TrimSpace(muscleFlag)
			if jsonFlag {
				return writeJSON(cmd.OutOrStdout(), libraryPayload(index, filter))
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(index.Entries))
			for _, muscle := range index.Muscles {
				if filter != "" && !strings.EqualFold(muscle.Slug, filter) && !strings.EqualFold(muscle.Label, filter) {
					continue
				}
				for _, entry := range muscle.Exercises {
					media := "-"
					if len(entry.Media) > 0 {
						media = fmt.Sprintf("%d", len(entry.Media))
					}
					rows = append(rows, []string{
						muscle.Label,
						entry.Name,
						entry.Difficulty,
						fmt.Sprintf("%d", len(entry.Instructions)),
						media,
					})
				}
			}
			fmt.Fprintln(out, renderTable([]tableColumn{
				{title: "Muscle"},
				{title: "Exercise", maxWidth: 40},
				{title: "Difficulty"},
				{title: "Steps", numeric: true},
				{title: "Media", numeric: true},
			}, rows))
			if index.ParseSkips > 0 {
				fmt.Fprintf(out, "%d incomplete sections skipped during parsing\n", index.ParseSkips)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&muscleFlag, "muscle", "m", "", "Only show one muscle group")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the library as JSON")
	return cmd
}

type libraryEntryJSON struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Muscle       string   `json:"muscle"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	Notes        []string `json:"notes,omitempty"`
	Media        []string `json:"media,omitempty"`
}

func libraryPayload(index *library.Index, filter string) []libraryEntryJSON {
	var entries []libraryEntryJSON
	for _, muscle := range index.Muscles {
		if filter != "" && !strings.EqualFold(muscle.Slug, filter) && !strings.EqualFold(muscle.Label, filter) {
			continue
		}
		for _, entry := range muscle.Exercises {
			entries = append(entries, libraryEntryJSON{
				ID:           entry.ID,
				Name:         entry.Name,
				Muscle:       muscle.Label,
				Difficulty:   entry.Difficulty,
				Instructions: entry.Instructions,
				Notes:        entry.Notes,
				Media:        entry.Media,
			})
		}
	}
	return entries
}
