package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dockrsync/internal/config"
	"dockrsync/internal/notify"
	"dockrsync/internal/syncer"
	"dockrsync/internal/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransferer struct {
	paths []string
	err   error
}

func (f *fakeTransferer) Transfer(ctx context.Context, t transport.Transport,
	d syncer.Direction, service, path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

func newTestLoop(t *testing.T, deleteFlag bool) (*Loop, *fakeTransferer, string) {
	t.Helper()

	root := t.TempDir()
	cfg := &config.Settings{DeleteFlag: deleteFlag, RemoteRoot: "/app"}
	ft := &fakeTransferer{}
	return NewLoop(cfg, ft, "web", "cafe01", root), ft, root
}

func TestTargetTranslatesToRelativeMarker(t *testing.T) {
	loop, _, root := newTestLoop(t, false)

	file := filepath.Join(root, "src", "main.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0755))
	require.NoError(t, os.WriteFile(file, []byte("package main"), 0644))

	target, ok := loop.target(file)
	require.True(t, ok)
	assert.Equal(t, "./src/main.go", target)
}

func TestTargetDeletedPathBecomesParentDir(t *testing.T) {
	loop, _, root := newTestLoop(t, true)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	gone := filepath.Join(root, "src", "deleted.go")

	target, ok := loop.target(gone)
	require.True(t, ok)
	assert.Equal(t, "./src", target)
}

func TestTargetDeletedAtRootBecomesRoot(t *testing.T) {
	loop, _, root := newTestLoop(t, true)

	target, ok := loop.target(filepath.Join(root, "deleted.go"))
	require.True(t, ok)
	assert.Equal(t, "./", target)
}

func TestTargetMissingPathKeptWhenDeleteDisabled(t *testing.T) {
	loop, _, root := newTestLoop(t, false)

	target, ok := loop.target(filepath.Join(root, "src", "deleted.go"))
	require.True(t, ok)
	assert.Equal(t, "./src/deleted.go", target)
}

func TestTargetOutsideRootIsSkipped(t *testing.T) {
	loop, _, _ := newTestLoop(t, false)

	_, ok := loop.target(filepath.Join(os.TempDir(), "elsewhere.txt"))
	assert.False(t, ok)
}

func TestRunIssuesOneTransferPerEvent(t *testing.T) {
	loop, ft, root := newTestLoop(t, false)

	file := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	events := make(chan notify.Event, 1)
	events <- notify.Event{Path: file, At: time.Now()}
	close(events)

	loop.Run(context.Background(), events)

	assert.Equal(t, []string{"./a.txt"}, ft.paths)
}

func TestRunSurvivesFailedTransfers(t *testing.T) {
	loop, ft, root := newTestLoop(t, false)
	ft.err = errors.New("exit status 23")

	for _, name := range []string{"a.txt", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0644))
	}

	events := make(chan notify.Event, 2)
	events <- notify.Event{Path: filepath.Join(root, "a.txt"), At: time.Now()}
	events <- notify.Event{Path: filepath.Join(root, "b.txt"), At: time.Now()}
	close(events)

	loop.Run(context.Background(), events)

	assert.Equal(t, []string{"./a.txt", "./b.txt"}, ft.paths)
	assert.Equal(t, 2, loop.State().Snapshot().Failed)
}

func TestRunStopsOnCancellation(t *testing.T) {
	loop, ft, _ := newTestLoop(t, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events := make(chan notify.Event)
	done := make(chan struct{})
	go func() {
		loop.Run(ctx, events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop on cancellation")
	}
	assert.Empty(t, ft.paths)
}
