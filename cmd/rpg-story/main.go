package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-story/internal/config"
	"github.com/KirkDiggler/rpg-story/internal/errors"
)

var (
	redisAddr   string
	contentFile string
	bundleID    string
	logLevel    string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rpg-story",
	Short: "Branching text adventure RPG",
	Long: `Play branching story adventures and manage the content bundles that drive them.

Saves, content and dice rolls live in memory unless RPG_REDIS_ADDR (or --redis)
points at a Redis server.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err for the terminal and returns the exit status. An
// interrupted run exits quietly.
func reportError(w io.Writer, err error) int {
	if errors.IsCanceled(err) {
		return errors.ExitCode(err)
	}

	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	if errors.IsUnavailable(err) {
		_, _ = fmt.Fprintln(w, "Check RPG_REDIS_ADDR or --redis, or leave both empty to play in memory.")
	}
	return errors.ExitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address (overrides RPG_REDIS_ADDR)")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "content bundle seeded when none is stored (overrides RPG_CONTENT_FILE)")
	rootCmd.PersistentFlags().StringVar(&bundleID, "bundle", "", "content bundle id (overrides RPG_BUNDLE_ID)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides RPG_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(rollCmd)
}

// loadConfig reads the environment, applies explicit flags and installs the logger
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("redis") {
		loaded.RedisAddr = redisAddr
	}
	if flags.Changed("content") {
		loaded.ContentFile = contentFile
	}
	if flags.Changed("bundle") {
		loaded.BundleID = bundleID
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	level, err := config.ParseLogLevel(loaded.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg = loaded
	return nil
}
