package cmd

import (
	"dockrsync/internal/compose"
	"dockrsync/internal/runner"
	"dockrsync/internal/transport"

	"github.com/spf13/cobra"
)

var bashCmd = &cobra.Command{
	Use:   "bash [service]",
	Short: "Open an interactive shell inside the container",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit := ""
		if len(args) == 1 {
			explicit = args[0]
		}

		service, err := compose.Resolve(explicit, cfg)
		if err != nil {
			return err
		}

		run := runner.ExecRunner{}
		containerID, err := compose.NewLocator(run).Locate(cmd.Context(), service)
		if err != nil {
			return err
		}

		inv := transport.New(containerID).Shell("bash")
		return run.Run(cmd.Context(), inv.Program, inv.Args...)
	},
}

func init() {
	rootCmd.AddCommand(bashCmd)
}
