package cmd

import (
	"dockrsync/internal/logger"
	"dockrsync/internal/runner"
	"dockrsync/internal/syncer"

	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:     "push [service]",
	Aliases: []string{"sync"},
	Short:   "Push the project directory into the container once",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		service := ""
		if len(args) == 1 {
			service = args[0]
		}

		s := syncer.New(cfg, runner.ExecRunner{})
		return s.SyncOnce(cmd.Context(), syncer.Push, service)
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
}
