package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkversionCmd = &cobra.Command{
	Use:   "checkversion",
	Short: "Check for a newer dockrsync release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("checkversion is not implemented yet")
	},
}

func init() {
	rootCmd.AddCommand(checkversionCmd)
}
