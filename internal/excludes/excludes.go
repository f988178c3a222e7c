package excludes

import (
	"fmt"
	"os"
)

const (
	GeneralFile = ".dockrsync-ignore"
	FetchFile   = ".dockrsync-ignore-fetch"
)

// defaultGeneral seeds the general ignore file: hidden files stay local.
const defaultGeneral = ".*\n"

// General returns the path of the general exclude file, creating it with
// the default pattern on first use. Patterns are passed through to rsync's
// --exclude-from opaquely; no syntax validation happens here.
func General() (string, error) {
	if err := ensure(GeneralFile, defaultGeneral); err != nil {
		return "", err
	}
	return GeneralFile, nil
}

// Fetch returns the path of the fetch-only exclude file, creating it empty
// on first use.
func Fetch() (string, error) {
	if err := ensure(FetchFile, ""); err != nil {
		return "", err
	}
	return FetchFile, nil
}

func ensure(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	return nil
}
