package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Query the upstream muscle taxonomy",
	}
	catalogCmd.AddCommand(newCatalogMusclesCommand(ctx))
	return catalogCmd
}

func newCatalogMusclesCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "muscles",
		Short: "List muscle groups from the catalog API",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.catalogClient()
			if err != nil {
				return err
			}

			groups, err := client.FetchMuscleGroups(cmd.Context())
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd.OutOrStdout(), groups)
			}

			rows := make([][]string, 0, len(groups))
			for _, group := range groups {
				ids := make([]string, len(group.APIIDs))
				for i, id := range group.APIIDs {
					ids[i] = strconv.FormatInt(id, 10)
				}
				rows = append(rows, []string{group.ID, group.Label, strings.Join(ids, ", ")})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]tableColumn{
				{title: "ID"},
				{title: "Muscle"},
				{title: "API IDs", numeric: true},
			}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit muscle groups as JSON")
	return cmd
}
