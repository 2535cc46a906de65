// Package client provides commands that call a running dex gRPC server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/handlers/dex/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running dex server",
	Long:  `Client commands make real gRPC requests against a dex server and print the JSON response.`,
	// the server address is all a client needs, skip loading DEX_* config
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
}

var speciesCmd = &cobra.Command{
	Use:   "species [name]",
	Short: "Call GetSpecies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.DexServiceClient) (*structpb.Struct, error) {
			return c.GetSpecies(ctx, wrapperspb.String(args[0]))
		})
	},
}

var evolutionCmd = &cobra.Command{
	Use:   "evolution [name]",
	Short: "Call GetEvolution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.DexServiceClient) (*structpb.Struct, error) {
			return c.GetEvolution(ctx, wrapperspb.String(args[0]))
		})
	},
}

var typesCmd = &cobra.Command{
	Use:   "types [types]",
	Short: "Call GetTypeEffectiveness with comma separated types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.DexServiceClient) (*structpb.Struct, error) {
			return c.GetTypeEffectiveness(ctx, wrapperspb.String(args[0]))
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Call GetCacheStats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.DexServiceClient) (*structpb.Struct, error) {
			return c.GetCacheStats(ctx, &emptypb.Empty{})
		})
	},
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(speciesCmd)
	ClientCmd.AddCommand(evolutionCmd)
	ClientCmd.AddCommand(typesCmd)
	ClientCmd.AddCommand(statsCmd)
}

// createClient creates a dex service client
func createClient() (v1alpha1.DexServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return v1alpha1.NewDexServiceClient(conn), cleanup, nil
}

func call(cmd *cobra.Command, fn func(context.Context, v1alpha1.DexServiceClient) (*structpb.Struct, error)) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		err = errors.FromGRPCError(err)
		return fmt.Errorf("request failed (%s): %s", errors.GetCode(err), errors.GetMessage(err))
	}

	marshaler := protojson.MarshalOptions{Indent: "  "}
	jsonBytes, err := marshaler.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	return nil
}
