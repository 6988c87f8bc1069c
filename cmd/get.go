package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/spotcat/internal/config"
	"github.com/jfmyers9/spotcat/pkg/spotify"
	"github.com/spf13/cobra"
)

var getSaveFile string

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Look up a track, album or playlist by URL",
	Long: `Look up a catalog entity by its open.spotify.com URL.

Tracks are shown with their audio features when available. Album and
playlist track listings are fetched page by page until complete; if a
page request fails, the tracks retrieved so far are shown together with
a warning.

Examples:
  spotcat get https://open.spotify.com/track/11dFghVXANMlKmJXsNCbNl
  spotcat get https://open.spotify.com/album/0tGPJ0bkWOUmH7MEOR77qc --save album.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&getSaveFile, "save", "s", "", "Save retrieved tracks to a text file")
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := setupLogger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := requireCredentials(cfg); err != nil {
		return err
	}

	client, err := spotify.Authenticate(ctx, spotify.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		Logger:       sdkLogger{logger},
	})
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	store, err := openHistory()
	if err != nil {
		logger.Warn().Err(err).Msg("Lookup history unavailable")
	} else {
		defer store.Close()
	}

	tracks, err := lookupURL(ctx, client, store, logger, args[0])
	if err != nil {
		return err
	}

	if getSaveFile != "" {
		return saveTracks(getSaveFile, tracks)
	}
	return nil
}
