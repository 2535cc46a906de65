package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/lookup"
	"github.com/KirkDiggler/dex-api/internal/platform/otel"
)

var (
	jsonOutput bool
	spriteOut  string
	countOnly  bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [name]",
	Short: "Look up a species",
	Long:  `Look up a species by name or variety, with its forms, evolution, type matchups and games.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.lookup.Lookup(ctx, &lookup.LookupInput{Name: args[0]})
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd, out)
			}
			renderLookup(cmd.OutOrStdout(), out)
			return nil
		})
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Look up each name read from stdin, showing only the latest result",
	Long: `Reads one name per line. Lookups run in the background; when a new name arrives
before the previous lookup finished, the older result is dropped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			var mu sync.Mutex
			deliver := func(out *lookup.LookupOutput, err error) {
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "lookup failed: %v\n", err)
					return
				}
				renderLookup(cmd.OutOrStdout(), out)
				fmt.Fprintln(cmd.OutOrStdout())
			}

			var pending []<-chan struct{}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				name := strings.TrimSpace(scanner.Text())
				if name == "" {
					continue
				}
				pending = append(pending, a.lookup.LookupLatest(ctx, &lookup.LookupInput{Name: name}, deliver))
			}
			for _, done := range pending {
				<-done
			}
			return scanner.Err()
		})
	},
}

var evolutionCmd = &cobra.Command{
	Use:   "evolution [name]",
	Short: "Show the next evolution step of a species",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.lookup.GetEvolution(ctx, &lookup.GetEvolutionInput{Name: args[0]})
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd, out.Evolution)
			}
			renderEvolution(cmd.OutOrStdout(), out.Evolution)
			return nil
		})
	},
}

var typesCmd = &cobra.Command{
	Use:   "types [type] [type]",
	Short: "Show weaknesses, resistances and immunities of one or two types",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.lookup.GetTypeEffectiveness(ctx, &lookup.GetTypeEffectivenessInput{Types: args})
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd, out.Effectiveness)
			}
			renderEffectiveness(cmd.OutOrStdout(), out.Effectiveness)
			return nil
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move [name]",
	Short: "Show a move",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.lookup.GetMove(ctx, &lookup.GetMoveInput{Name: args[0]})
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd, out)
			}
			renderMove(cmd.OutOrStdout(), out)
			return nil
		})
	},
}

var abilityCmd = &cobra.Command{
	Use:   "ability [name]",
	Short: "Show an ability and the species that can have it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.lookup.GetAbility(ctx, &lookup.GetAbilityInput{Name: args[0]})
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd, out)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s\n%s\n", dex.DisplayName(out.Ability.Name), out.Effect)
			fmt.Fprintf(w, "Holders: %s\n", orDash(strings.Join(out.Holders, ", ")))
			return nil
		})
	},
}

var itemCmd = &cobra.Command{
	Use:   "item [name]",
	Short: "Show an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.lookup.GetItem(ctx, &lookup.GetItemInput{Name: args[0]})
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd, out)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, cost %d)\n%s\n",
				dex.DisplayName(out.Item.Name), out.Category, out.Item.Cost, out.Effect)
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list [species|move|ability|item|type]",
	Short: "List every name in a catalog namespace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.lookup.ListResources(ctx, &lookup.ListResourcesInput{Namespace: dex.Namespace(args[0])})
			if err != nil {
				return err
			}
			if countOnly {
				fmt.Fprintln(cmd.OutOrStdout(), out.Count)
				return nil
			}
			for _, name := range out.Names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		})
	},
}

var spriteCmd = &cobra.Command{
	Use:   "sprite [name]",
	Short: "Download the sprite of a species through the image cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			record, err := a.catalog.SafeFetchSpecies(ctx, args[0])
			if err != nil {
				return err
			}
			image, err := a.catalog.GetSpeciesImage(ctx, record)
			if err != nil {
				return err
			}

			path := spriteOut
			if path == "" {
				path = record.Name + ".png"
			}
			if err := os.WriteFile(path, image, 0o644); err != nil {
				return fmt.Errorf("failed to write sprite: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(image))
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{lookupCmd, evolutionCmd, typesCmd, moveCmd, abilityCmd, itemCmd} {
		c.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	}
	spriteCmd.Flags().StringVarP(&spriteOut, "output", "o", "", "output file (defaults to <name>.png)")
	listCmd.Flags().BoolVar(&countOnly, "count", false, "print only the total")
}

// withApp wires the components, enables tracing when configured and runs fn
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()

	shutdownTracing, err := otel.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
