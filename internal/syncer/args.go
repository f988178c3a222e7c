package syncer

import "dockrsync/internal/transport"

type Direction int

const (
	// Push transfers the local project root into the container.
	Push Direction = iota
	// Fetch transfers the container's app root back to disk.
	Fetch
	// Incremental transfers a single changed path during a watch session.
	Incremental
)

func (d Direction) String() string {
	switch d {
	case Push:
		return "push"
	case Fetch:
		return "fetch"
	case Incremental:
		return "watch"
	default:
		return "unknown"
	}
}

// transferArgs builds the full rsync argv for one transfer. Fetch applies
// both exclude files; Push and Incremental only the general one (the caller
// passes the right set). path is only meaningful for Incremental, where it
// must already carry the ./ relative marker so rsync's --relative mode keys
// off the project root instead of an absolute filesystem path.
func transferArgs(d Direction, t transport.Transport, remoteRoot, path string,
	excludeFiles []string, deleteFlag bool) []string {

	args := []string{"-az", "--blocking-io", "-e", t.RemoteShell()}

	for _, f := range excludeFiles {
		args = append(args, "--exclude-from="+f)
	}

	if deleteFlag {
		args = append(args, "--delete")
	}

	switch d {
	case Push:
		args = append(args, "./", t.Endpoint(remoteRoot))
	case Fetch:
		args = append(args, t.Endpoint(remoteRoot+"/"), "./")
	case Incremental:
		args = append(args, "--relative", path, t.Endpoint(remoteRoot))
	}

	return args
}
