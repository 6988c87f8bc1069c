// +build integration

package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

// buildBinary builds the spotcat binary for integration testing
func buildBinary(t *testing.T) string {
	t.Helper()

	bin := "spotcat_test"
	buildCmd := exec.Command("go", "build", "-o", bin, ".")
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("Failed to build binary: %v", err)
	}
	t.Cleanup(func() { os.Remove(bin) })

	return "./" + bin
}

// TestVersionFlag tests that the binary reports its version
func TestVersionFlag(t *testing.T) {
	bin := buildBinary(t)

	out, err := exec.Command(bin, "--version").CombinedOutput()
	if err != nil {
		t.Fatalf("Failed to run --version: %v\n%s", err, out)
	}

	if !strings.Contains(string(out), "spotcat") {
		t.Errorf("Expected version output to mention spotcat, got: %s", out)
	}
}

// TestHistoryEmpty tests the history command against a fresh home directory
func TestHistoryEmpty(t *testing.T) {
	bin := buildBinary(t)

	// Point the config and data directories at a temporary home
	cmd := exec.Command(bin, "history")
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir())

	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Failed to run history: %v\n%s", err, out)
	}

	if !strings.Contains(string(out), "No lookups recorded yet.") {
		t.Errorf("Expected empty history message, got: %s", out)
	}
}

// TestGetRequiresCredentials tests that lookups without configured
// credentials fail with a pointer to the auth command
func TestGetRequiresCredentials(t *testing.T) {
	bin := buildBinary(t)

	cmd := exec.Command(bin, "get", "https://open.spotify.com/track/11dFghVXANMlKmJXsNCbNl")
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir())

	out, _ := cmd.CombinedOutput()
	if !strings.Contains(string(out), "spotcat auth") {
		t.Errorf("Expected credentials error mentioning 'spotcat auth', got: %s", out)
	}
}
