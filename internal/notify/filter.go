package notify

import (
	"path/filepath"
	"strings"
)

// Filter drops events whose path, relative to root, contains a component
// matching any of the exclusion globs. Matching is per path component, so a
// pattern like .git also covers everything underneath it. Components of the
// root itself are never matched, in case the project lives under a hidden
// directory.
func Filter(inCh <-chan Event, root string, excludeGlobs []string) <-chan Event {
	outCh := make(chan Event, cap(inCh))

	go func() {
		defer close(outCh)

		for event := range inCh {
			if Excluded(root, event.Path, excludeGlobs) {
				continue
			}
			outCh <- event
		}
	}()

	return outCh
}

func Excluded(root, path string, excludeGlobs []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if matchesAny(part, excludeGlobs) {
			return true
		}
	}

	return false
}

func matchesAny(name string, globs []string) bool {
	for _, pattern := range globs {
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			return true
		}
	}

	return false
}
