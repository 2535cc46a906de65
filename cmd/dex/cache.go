package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and clear the local catalog cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cached entry counts and image usage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			stats := a.store.Stats(ctx)
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "Backend:          %s\n", stats.Backend)
			namespaces := make([]string, 0, len(stats.Entries))
			for ns := range stats.Entries {
				namespaces = append(namespaces, string(ns))
			}
			sort.Strings(namespaces)
			for _, ns := range namespaces {
				fmt.Fprintf(w, "  %-16s %d\n", ns, stats.Entries[dex.Namespace(ns)])
			}
			fmt.Fprintf(w, "Persist failures: %d\n", stats.PersistFailures)
			fmt.Fprintf(w, "Images:           %d files, %d bytes\n", stats.ImageFiles, stats.ImageBytes)
			return nil
		})
	},
}

var cacheClearImagesCmd = &cobra.Command{
	Use:   "clear-images",
	Short: "Remove every cached image",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			removed := a.store.ClearAll(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d images, %d bytes remain\n", removed, a.store.TotalSizeBytes(ctx))
			return nil
		})
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [namespace]",
	Short: "Empty one document namespace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ns := dex.Namespace(args[0])
		if !ns.IsDocument() {
			return errors.InvalidArgumentf("unknown namespace %q", args[0])
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			a.store.Clear(ctx, ns)
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", ns)
			return nil
		})
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearImagesCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
