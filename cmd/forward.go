package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forwardCmd = &cobra.Command{
	Use:   "forward [service] [args...]",
	Short: "Forward a container port to the host",
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("forward is not implemented yet")
	},
}

func init() {
	rootCmd.AddCommand(forwardCmd)
}
