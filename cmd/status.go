package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dockrsync/internal/watch"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of a running watch session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StatusPort == 0 {
			return fmt.Errorf("no STATUS_PORT configured in %s", ".dockrsync")
		}

		resp, err := http.Get(statusURL("/status"))
		if err != nil {
			return fmt.Errorf("no watch session running: %w", err)
		}

		defer func() { _ = resp.Body.Close() }()

		var snap watch.Snapshot
		if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
			return fmt.Errorf("failed to decode status response: %w", err)
		}

		state := "idle"
		if snap.Busy {
			state = "busy"
		}

		lastSync := "-"
		if snap.LastSync != nil {
			lastSync = snap.LastSync.Format("2006-01-02 15:04:05")
		}

		fmt.Printf("service:   %s\n", snap.Service)
		fmt.Printf("container: %s\n", snap.Container)
		fmt.Printf("state:     %s\n", state)
		fmt.Printf("uptime:    %s\n", time.Since(snap.StartedAt).Round(time.Second))
		fmt.Printf("synced:    %d\n", snap.Synced)
		fmt.Printf("failed:    %d\n", snap.Failed)
		fmt.Printf("last sync: %s\n", lastSync)
		if snap.LastError != "" {
			fmt.Printf("last error: %s\n", snap.LastError)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
