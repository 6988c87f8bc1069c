/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jfmyers9/spotcat/internal/config"
	"github.com/jfmyers9/spotcat/internal/history"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotcat",
	Short: "Spotify catalog lookup tool",
	Long: `spotcat is a command-line client for the Spotify catalog.

It resolves open.spotify.com URLs and free-text queries to tracks,
albums and playlists, fetches their metadata (following pagination for
full track listings), renders human-readable summaries, and can save
results to a text file.

Lookups are recorded in a local history database.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

// setupLogger creates a logger with the configured level, writing to stderr
func setupLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	logger := zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// sdkLogger adapts zerolog to the SDK's Logger interface
type sdkLogger struct {
	logger zerolog.Logger
}

func (l sdkLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// requireCredentials validates that Spotify credentials are configured
func requireCredentials(cfg *config.Config) error {
	if cfg.Spotify.ClientID == "" || cfg.Spotify.ClientSecret == "" {
		return fmt.Errorf("Spotify credentials not configured. Run 'spotcat auth' first")
	}
	return nil
}

// openHistory opens the lookup history store. A failure is not fatal to a
// lookup; callers log it and continue with a nil store.
func openHistory() (*history.Store, error) {
	return history.Open(filepath.Join(config.DataDir(), "history.db"))
}
