package syncer

import (
	"testing"

	"dockrsync/internal/transport"

	"github.com/stretchr/testify/assert"
)

func TestTransferArgsPush(t *testing.T) {
	args := transferArgs(Push, transport.New("abc"), "/app", "./",
		[]string{".dockrsync-ignore"}, false)

	assert.Equal(t, []string{
		"-az", "--blocking-io", "-e", "docker exec -i",
		"--exclude-from=.dockrsync-ignore",
		"./", "abc:/app",
	}, args)
}

func TestTransferArgsFetchAppliesBothExcludeFiles(t *testing.T) {
	args := transferArgs(Fetch, transport.New("abc"), "/app", "./",
		[]string{".dockrsync-ignore", ".dockrsync-ignore-fetch"}, false)

	assert.Contains(t, args, "--exclude-from=.dockrsync-ignore")
	assert.Contains(t, args, "--exclude-from=.dockrsync-ignore-fetch")

	// Fetch reverses the endpoints.
	assert.Equal(t, "abc:/app/", args[len(args)-2])
	assert.Equal(t, "./", args[len(args)-1])
}

func TestTransferArgsDeleteFlag(t *testing.T) {
	with := transferArgs(Push, transport.New("abc"), "/app", "./", nil, true)
	without := transferArgs(Push, transport.New("abc"), "/app", "./", nil, false)

	assert.Contains(t, with, "--delete")
	assert.NotContains(t, without, "--delete")
}

func TestTransferArgsIncremental(t *testing.T) {
	args := transferArgs(Incremental, transport.New("abc"), "/app", "./src/main.go",
		[]string{".dockrsync-ignore"}, false)

	assert.Contains(t, args, "--relative")
	assert.Equal(t, "./src/main.go", args[len(args)-2])
	assert.Equal(t, "abc:/app", args[len(args)-1])
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "push", Push.String())
	assert.Equal(t, "fetch", Fetch.String())
	assert.Equal(t, "watch", Incremental.String())
}
