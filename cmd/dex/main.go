// Package main is the entry point for the dex CLI and gRPC server
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dex-api/cmd/dex/client"
	"github.com/KirkDiggler/dex-api/internal/config"
)

var (
	cfg *config.Config

	// overrides for the DEX_* environment
	catalogURL   string
	cacheFile    string
	imageDir     string
	cacheBackend string
	redisAddr    string
	logLevel     string
	httpTimeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "dex",
	Short: "Species catalog browser and gRPC server",
	Long: `dex looks up species, evolutions and type matchups from a public catalog API,
caching every document and sprite locally.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&catalogURL, "catalog-url", "", "catalog API base url (DEX_CATALOG_BASE_URL)")
	flags.StringVar(&cacheFile, "cache-file", "", "document cache file (DEX_CACHE_FILE)")
	flags.StringVar(&imageDir, "image-dir", "", "image cache directory (DEX_IMAGE_DIR)")
	flags.StringVar(&cacheBackend, "cache-backend", "", "document cache backend, file or redis (DEX_CACHE_BACKEND)")
	flags.StringVar(&redisAddr, "redis-addr", "", "redis address for the redis backend (DEX_REDIS_ADDR)")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (DEX_LOG_LEVEL)")
	flags.DurationVar(&httpTimeout, "http-timeout", 0, "timeout per catalog request (DEX_HTTP_TIMEOUT)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(evolutionCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(abilityCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(spriteCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads the environment, applies flag overrides and installs the
// default logger
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	applyOverrides(cmd, loaded)
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
	return nil
}

func applyOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("catalog-url") {
		c.CatalogBaseURL = catalogURL
	}
	if flags.Changed("cache-file") {
		c.CacheFile = cacheFile
	}
	if flags.Changed("image-dir") {
		c.ImageDir = imageDir
	}
	if flags.Changed("cache-backend") {
		c.CacheBackend = cacheBackend
	}
	if flags.Changed("redis-addr") {
		c.RedisAddr = redisAddr
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("http-timeout") {
		c.HTTPTimeout = httpTimeout
	}
}
