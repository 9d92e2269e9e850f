package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"repkit/internal/match"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "match <name>",
		Short: "Resolve a free-text exercise name against the library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := ctx.loadIndex()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			result := match.New(index).Match(query)

			if jsonFlag {
				return writeJSON(cmd.OutOrStdout(), matchPayload(query, result))
			}

			out := cmd.OutOrStdout()
			if result.Matched {
				fmt.Fprintf(out, "%s -> %s (%s, score %.2f)\n",
					query, result.Entry.Name, result.Strategy, result.Score)
				fmt.Fprintf(out, "  muscle: %s\n", result.Entry.MuscleLabel)
				return nil
			}
			fmt.Fprintf(out, "%s -> no match (best score %.2f)\n", query, result.Score)
			if result.Suggestion != nil {
				fmt.Fprintf(out, "  closest: %s (%s)\n", result.Suggestion.Name, result.Suggestion.MuscleLabel)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the match result as JSON")
	return cmd
}

type matchJSON struct {
	Query      string  `json:"query"`
	Matched    bool    `json:"matched"`
	Strategy   string  `json:"strategy"`
	Score      float64 `json:"score"`
	Entry      string  `json:"entry,omitempty"`
	Muscle     string  `json:"muscle,omitempty"`
	Suggestion string  `json:"suggestion,omitempty"`
}

func matchPayload(query string, result match.Result) matchJSON {
	payload := matchJSON{
		Query:    query,
		Matched:  result.Matched,
		Strategy: string(result.Strategy),
		Score:    result.Score,
	}
	if result.Entry != nil {
		payload.Entry = result.Entry.Name
		payload.Muscle = result.Entry.MuscleLabel
	}
	if result.Suggestion != nil {
		payload.Suggestion = result.Suggestion.Name
	}
	return payload
}
