package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcluded(t *testing.T) {
	root := "/home/dev/project"

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", "/home/dev/project/src/main.go", false},
		{"hidden file", "/home/dev/project/.env", true},
		{"inside hidden dir", "/home/dev/project/.git/HEAD", true},
		{"ide metadata", "/home/dev/project/.idea/workspace.xml", true},
		{"editor backup", "/home/dev/project/src/main.go~", true},
		{"swap file", "/home/dev/project/src/.main.go.swp", true},
		{"tmp file", "/home/dev/project/build/out.tmp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excluded(root, tt.path, DefaultExcludes))
		})
	}
}

func TestExcludedIgnoresHiddenRootComponents(t *testing.T) {
	// A project living under a hidden directory must not have every
	// event filtered away.
	root := "/home/dev/.config/project"
	assert.False(t, Excluded(root, "/home/dev/.config/project/main.go", DefaultExcludes))
}

func TestFilterDropsExcludedEvents(t *testing.T) {
	in := make(chan Event, 4)
	out := Filter(in, "/p", []string{".*"})

	in <- Event{Path: "/p/.hidden"}
	in <- Event{Path: "/p/kept.go"}
	close(in)

	var got []string
	for e := range out {
		got = append(got, e.Path)
	}
	assert.Equal(t, []string{"/p/kept.go"}, got)
}

func TestDebounceCoalescesBursts(t *testing.T) {
	in := make(chan Event, 8)
	out := Debounce(in, 50*time.Millisecond)

	// Three rapid-fire events for the same file inside the window.
	for range 3 {
		in <- Event{Path: "/p/a.go", At: time.Now()}
	}
	close(in)

	var got []Event
	timeout := time.After(2 * time.Second)
	for {
		select {
		case e, ok := <-out:
			if !ok {
				require.Len(t, got, 1)
				assert.Equal(t, "/p/a.go", got[0].Path)
				return
			}
			got = append(got, e)
		case <-timeout:
			t.Fatal("debounced channel never closed")
		}
	}
}

func TestDebounceCloseRacesFiredTimers(t *testing.T) {
	// Close the input while timers are firing, repeatedly: a send from a
	// fired timer must never hit the already-closed output channel, and
	// every event must be delivered exactly once either by its timer or
	// by the shutdown flush.
	paths := []string{"/p/a", "/p/b", "/p/c", "/p/d", "/p/e", "/p/f", "/p/g", "/p/h"}

	for range 500 {
		in := make(chan Event, len(paths))
		out := Debounce(in, time.Microsecond)

		for _, p := range paths {
			in <- Event{Path: p}
		}
		close(in)

		seen := map[string]int{}
		for e := range out {
			seen[e.Path]++
		}

		require.Len(t, seen, len(paths))
		for _, p := range paths {
			require.Equal(t, 1, seen[p])
		}
	}
}

func TestDebounceKeepsDistinctPaths(t *testing.T) {
	in := make(chan Event, 8)
	out := Debounce(in, 10*time.Millisecond)

	in <- Event{Path: "/p/a.go"}
	in <- Event{Path: "/p/b.go"}
	close(in)

	seen := map[string]int{}
	for e := range out {
		seen[e.Path]++
	}

	assert.Equal(t, map[string]int{"/p/a.go": 1, "/p/b.go": 1}, seen)
}
