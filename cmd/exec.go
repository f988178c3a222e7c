package cmd

import (
	"errors"

	"dockrsync/internal/compose"
	"dockrsync/internal/runner"
	"dockrsync/internal/transport"

	"github.com/spf13/cobra"
)

var ErrMalformedExecArgs = errors.New(
	"malformed arguments, usage: dockrsync exec [service] -- command...")

var execCmd = &cobra.Command{
	Use:                   "exec [service] -- command...",
	Short:                 "Run a command inside the container",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit, command, err := parseExecArgs(args, cmd.ArgsLenAtDash())
		if err != nil {
			return err
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

		inv := transport.New(containerID).Command(command...)
		return run.Run(cmd.Context(), inv.Program, inv.Args...)
	},
}

// parseExecArgs splits the `[service] -- command...` grammar. The separator
// is mandatory and must sit at position one or two of the raw argument
// list, which cobra reports as a dash index of 0 or 1.
func parseExecArgs(args []string, dash int) (service string, command []string, err error) {
	switch dash {
	case 0:
		command = args
	case 1:
		service = args[0]
		command = args[1:]
	default:
		return "", nil, ErrMalformedExecArgs
	}

	if len(command) == 0 {
		return "", nil, ErrMalformedExecArgs
	}

	return service, command, nil
}

func init() {
	rootCmd.AddCommand(execCmd)
}
