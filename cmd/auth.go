package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jfmyers9/spotcat/internal/config"
	"github.com/jfmyers9/spotcat/pkg/spotify"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Configure Spotify API credentials",
	Long: `Configure the Spotify application credentials used for lookups.

This command will prompt you for your application's client ID and client
secret, verify them against the Spotify token endpoint, and save them to
your config file.

You can create an application and get credentials from:
https://developer.spotify.com/dashboard`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Spotify Authentication")
	fmt.Println("======================")
	fmt.Println()
	fmt.Println("You can get API credentials from: https://developer.spotify.com/dashboard")
	fmt.Println()

	// Check if we already have credentials
	if cfg.Spotify.ClientID != "" && cfg.Spotify.ClientSecret != "" {
		fmt.Printf("Found existing API credentials.\n")
		fmt.Printf("Client ID: %s\n", cfg.Spotify.ClientID)
		fmt.Print("\nUse existing credentials? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			// User wants to enter new credentials
			cfg.Spotify.ClientID = ""
			cfg.Spotify.ClientSecret = ""
		}
	}

	// Prompt for client ID if not set
	if cfg.Spotify.ClientID == "" {
		fmt.Print("Enter your Spotify Client ID: ")
		clientID, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read client ID: %w", err)
		}
		cfg.Spotify.ClientID = strings.TrimSpace(clientID)
	}

	// Prompt for client secret if not set
	if cfg.Spotify.ClientSecret == "" {
		fmt.Print("Enter your Spotify Client Secret: ")
		clientSecret, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read client secret: %w", err)
		}
		cfg.Spotify.ClientSecret = strings.TrimSpace(clientSecret)
	}

	// Validate inputs
	if cfg.Spotify.ClientID == "" || cfg.Spotify.ClientSecret == "" {
		return fmt.Errorf("client ID and client secret are required")
	}

	// Verify the credentials with a real token exchange
	fmt.Println("\nVerifying credentials...")
	if _, err := spotify.Authenticate(ctx, spotify.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
	}); err != nil {
		return fmt.Errorf("credential verification failed: %w", err)
	}

	// Save credentials to config
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath := config.GetConfigDir()
	fmt.Printf("\n✓ Authentication successful!\n")
	fmt.Printf("✓ Credentials saved to %s/config.yaml\n", configPath)
	fmt.Println("\nYou can now use 'spotcat get', 'spotcat search' or 'spotcat shell'.")

	return nil
}
