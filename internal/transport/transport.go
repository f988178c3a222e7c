package transport

import "strings"

// Invocation is a structured command descriptor: a program and its ordered
// arguments, handed directly to the process spawner. Building commands this
// way keeps container ids out of shell interpretation entirely.
type Invocation struct {
	Program string
	Args    []string
}

// Transport reaches the filesystem of one resolved container through
// docker exec. All constructors are pure; nothing here performs I/O.
type Transport struct {
	containerID string
}

func New(containerID string) Transport {
	return Transport{containerID: containerID}
}

// Shell is the interactive variant: allocates a pseudo-terminal, used for
// remote shell sessions.
func (t Transport) Shell(command ...string) Invocation {
	args := append([]string{"exec", "-it", t.containerID}, command...)
	return Invocation{Program: "docker", Args: args}
}

// Command is the non-interactive variant: stdin kept open, no
// pseudo-terminal, used for piping child-process output.
func (t Transport) Command(command ...string) Invocation {
	args := append([]string{"exec", "-i", t.containerID}, command...)
	return Invocation{Program: "docker", Args: args}
}

// RemoteShell is the hook handed to rsync's -e flag. rsync appends the host
// part of the endpoint itself, so the container id is not included here.
func (t Transport) RemoteShell() string {
	return "docker exec -i"
}

// Endpoint renders the remote side of a transfer for rsync, with the
// container id quoted defensively in case it ever contains separators.
func (t Transport) Endpoint(path string) string {
	return quote(t.containerID) + ":" + path
}

func quote(s string) string {
	if strings.ContainsAny(s, " \t:'\"") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}
