package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lookups",
	Long: `List recent catalog lookups recorded in the local history database.

Each entry shows when the lookup happened, what kind of entity it was,
the original input, and how many items were retrieved. Lookups that
ended in a partial fetch are marked.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	lookups, err := store.Recent(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(lookups) == 0 {
		fmt.Println("No lookups recorded yet.")
		return nil
	}

	for _, l := range lookups {
		mark := ""
		if l.Partial {
			mark = " (partial)"
		}
		fmt.Printf("%s  %-8s  %-50s  %d items%s\n",
			l.CreatedAt.Format("2006-01-02 15:04"), l.Kind, truncateQuery(l.Query, 50), l.Items, mark)
	}

	return nil
}

// truncateQuery shortens long inputs so rows stay on one line.
func truncateQuery(q string, max int) string {
	if len(q) <= max {
		return q
	}
	return q[:max-3] + "..."
}
