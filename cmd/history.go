package cmd

import (
	"fmt"

	"dockrsync/internal/model"
	"dockrsync/internal/repository"

	"github.com/spf13/cobra"
)

var historyN int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sync transfers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewHistoryRepository()

		histories, err := repo.GetRecent(historyN)
		if err != nil {
			return err
		}

		if len(histories) == 0 {
			fmt.Println("no history yet")
			return nil
		}

		for _, h := range histories {
			status := "✓"
			if h.Status == model.StatusFailed {
				status = "✗"
			}

			fmt.Printf("%s [%s] %-5s %-10s %s\n",
				status,
				h.SyncedAt.Format("2006-01-02 15:04:05"),
				h.Direction,
				h.Service,
				h.Path,
			)
		}

		stats, err := repo.GetStats()
		if err != nil {
			return err
		}
		fmt.Printf("\ntotal: %d, success: %d, failed: %d\n",
			stats.Total, stats.Success, stats.Failed)

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyN, "number", "n", 20, "number of history entries to show")
	rootCmd.AddCommand(historyCmd)
}
