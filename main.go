package main

import (
	"fmt"
	"os"
	"strings"

	"dockrsync/cmd"
)

func main() {
	// An unknown first argument falls through to the help text and exits
	// zero, unlike genuine command failures.
	if len(os.Args) > 1 && !strings.HasPrefix(os.Args[1], "-") && !cmd.Known(os.Args[1]) {
		fmt.Printf("Unknown option: %s\n\n", os.Args[1])
		cmd.ShowHelp()
		return
	}

	cmd.Execute()
}
