package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jfmyers9/spotcat/internal/config"
	"github.com/jfmyers9/spotcat/internal/resolver"
	"github.com/jfmyers9/spotcat/pkg/spotify"
	"github.com/spf13/cobra"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive lookup session",
	Long: `Start an interactive session that accepts open.spotify.com URLs
and free-text track queries.

URLs are looked up directly; anything else is treated as a track search.
After a lookup you are offered the option of saving the retrieved tracks
to a text file. Type "exit", "quit" or press Ctrl-D to leave.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := setupLogger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := requireCredentials(cfg); err != nil {
		return err
	}

	fmt.Println("Authenticating with Spotify...")
	client, err := spotify.Authenticate(ctx, spotify.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		Logger:       sdkLogger{logger},
	})
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	fmt.Println("Authentication successful.")

	store, err := openHistory()
	if err != nil {
		logger.Warn().Err(err).Msg("Lookup history unavailable")
	} else {
		defer store.Close()
	}

	fmt.Println()
	fmt.Println("Enter an open.spotify.com URL or a track name to search.")
	fmt.Println("Type \"exit\" to leave.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("spotcat> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			continue
		case input == "exit" || input == "quit":
			return nil
		}

		var tracks []spotify.Track
		if resolver.IsURL(input) {
			tracks, err = lookupURL(ctx, client, store, logger, input)
		} else {
			fmt.Printf("Searching for %q...\n\n", input)
			tracks, err = searchTracks(ctx, client, store, logger, input, cfg.SearchLimit)
		}
		if err != nil {
			fmt.Printf("error: %v\n\n", err)
			continue
		}

		if len(tracks) > 0 {
			if path := promptSave(reader); path != "" {
				if err := saveTracks(path, tracks); err != nil {
					fmt.Printf("error: %v\n", err)
				}
			}
		}
		fmt.Println()
	}
}

// promptSave asks whether to save the last result and returns the chosen
// file name, or "" to skip.
func promptSave(reader *bufio.Reader) string {
	fmt.Print("\nSave tracks to file? [y/N]: ")
	answer, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer != "y" && answer != "yes" {
		return ""
	}

	fmt.Print("File name [spotify_tracks.txt]: ")
	name, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "spotify_tracks.txt"
	}
	return name
}
