package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jfmyers9/spotcat/internal/config"
	"github.com/jfmyers9/spotcat/pkg/spotify"
	"github.com/spf13/cobra"
)

var (
	searchLimit    int
	searchSaveFile string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog for tracks",
	Long: `Search the Spotify catalog for tracks matching a free-text query.

Examples:
  spotcat search blinding lights
  spotcat search "get lucky" --limit 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "Maximum number of results (default from config)")
	searchCmd.Flags().StringVarP(&searchSaveFile, "save", "s", "", "Save results to a text file")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := setupLogger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := requireCredentials(cfg); err != nil {
		return err
	}

	limit := searchLimit
	if limit == 0 {
		limit = cfg.SearchLimit
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

	results, err := searchTracks(ctx, client, store, logger, strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	if searchSaveFile != "" {
		return saveTracks(searchSaveFile, results)
	}
	return nil
}
