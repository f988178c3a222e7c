package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dockrsync/internal/config"
	"dockrsync/internal/excludes"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure dockrsync for this project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.Exists() {
			fmt.Printf("%s already exists, answers overwrite it\n\n", config.FileName)
		}

		reader := bufio.NewReader(os.Stdin)
		s := config.Default

		s.DefaultService = prompt(reader, "Default service (blank for none)", "")

		portStr := prompt(reader, "AnyBar port (blank to disable)", "")
		if portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return fmt.Errorf("invalid port %q: %w", portStr, err)
			}
			s.AnyBarPort = port
		}

		// Delete propagation removes container-side files missing
		// locally. Irreversible, so it stays off unless asked for.
		del := prompt(reader, "Propagate deletions to the container? [y/N]", "n")
		s.DeleteFlag = strings.EqualFold(del, "y") || strings.EqualFold(del, "yes")

		s.RemoteRoot = prompt(reader, "Remote app root", config.Default.RemoteRoot)

		if err := config.Save(&s); err != nil {
			return err
		}

		if _, err := excludes.General(); err != nil {
			return err
		}
		if _, err := excludes.Fetch(); err != nil {
			return err
		}

		fmt.Printf("\nwrote %s, %s and %s\n",
			config.FileName, excludes.GeneralFile, excludes.FetchFile)
		return nil
	},
}

func prompt(reader *bufio.Reader, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return def
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
