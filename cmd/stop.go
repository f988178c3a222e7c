package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop a running watch session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StatusPort == 0 {
			return fmt.Errorf("no STATUS_PORT configured in %s", ".dockrsync")
		}

		resp, err := http.Post(statusURL("/stop"), "application/json", nil)
		if err != nil {
			return fmt.Errorf("no watch session running: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		fmt.Println("stop requested")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
