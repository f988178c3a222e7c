package cmd

import (
	"fmt"
	"os"

	"dockrsync/internal/config"
	"dockrsync/internal/db"
	"dockrsync/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfg   *config.Settings
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "dockrsync",
	Short: "Keep a local project directory synced with a docker-compose container",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(debug)

		// Setup and the version check are the only commands allowed to
		// run before settings exist.
		noSettingsCmds := map[string]bool{
			"help": true, "completion": true,
			"setup": true, "checkversion": true,
		}
		if noSettingsCmds[cmd.Name()] {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		historyCmds := map[string]bool{
			"push": true, "fetch": true, "watch": true, "history": true,
		}
		if historyCmds[cmd.Name()] {
			if err := db.Init(cfg.DBPath); err != nil {
				return err
			}
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Known reports whether arg names a subcommand or one of its aliases.
func Known(arg string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == arg {
			return true
		}
		for _, a := range c.Aliases {
			if a == arg {
				return true
			}
		}
	}
	return arg == "help"
}

// ShowHelp prints the top-level usage text.
func ShowHelp() {
	_ = rootCmd.Help()
}

func statusURL(path string) string {
	return fmt.Sprintf("http://localhost:%d%s", cfg.StatusPort, path)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")
}
