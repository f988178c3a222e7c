package cmd

import (
	"dockrsync/internal/logger"
	"dockrsync/internal/runner"
	"dockrsync/internal/syncer"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [service]",
	Short: "Pull container-side changes back to the project directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		service := ""
		if len(args) == 1 {
			service = args[0]
		}

		s := syncer.New(cfg, runner.ExecRunner{})
		return s.SyncOnce(cmd.Context(), syncer.Fetch, service)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
