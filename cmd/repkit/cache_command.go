package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the insight cache",
	}
	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	return cacheCmd
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cached insight counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := ctx.openCache()
			if err != nil {
				return err
			}
			defer cache.Close()

			out := cmd.OutOrStdout()
			if !cache.Enabled() {
				fmt.Fprintln(out, "Insight cache is disabled")
				return nil
			}
			exercises, overviews, err := cache.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Cached exercise insights: %d\n", exercises)
			fmt.Fprintf(out, "Cached section overviews: %d\n", overviews)
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached insight",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := ctx.openCache()
			if err != nil {
				return err
			}
			defer cache.Close()

			if !cache.Enabled() {
				fmt.Fprintln(cmd.OutOrStdout(), "Insight cache is disabled; nothing to clear")
				return nil
			}
			if err := cache.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Insight cache cleared")
			return nil
		},
	}
}
