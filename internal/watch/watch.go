package watch

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"dockrsync/internal/anybar"
	"dockrsync/internal/config"
	"dockrsync/internal/logger"
	"dockrsync/internal/notify"
	"dockrsync/internal/syncer"
	"dockrsync/internal/transport"

	"go.uber.org/zap"
)

// Transferer issues one incremental transfer of a single path.
// *syncer.Syncer is the production implementation.
type Transferer interface {
	Transfer(ctx context.Context, t transport.Transport, d syncer.Direction,
		service, path string) error
}

// Loop processes change events one at a time: each delivered event becomes
// exactly one incremental transfer, in delivery order, with at most one
// transfer in flight. A failed transfer is logged and the loop keeps going.
type Loop struct {
	cfg      *config.Settings
	sync     Transferer
	notifier *anybar.Notifier
	state    *State
	service  string
	t        transport.Transport
	root     string
}

func NewLoop(cfg *config.Settings, sync Transferer, service, containerID, root string) *Loop {
	return &Loop{
		cfg:      cfg,
		sync:     sync,
		notifier: anybar.New(cfg.AnyBarPort),
		state:    NewState(service, containerID),
		service:  service,
		t:        transport.New(containerID),
		root:     root,
	}
}

func (l *Loop) State() *State {
	return l.state
}

// Run consumes events until the context is cancelled or the stream closes.
// There is no drain of an in-flight transfer on cancellation; it finishes
// or fails on its own.
func (l *Loop) Run(ctx context.Context, events <-chan notify.Event) {
	defer l.notifier.Notify(anybar.Quit)

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("watch loop stopping")
			return

		case event, ok := <-events:
			if !ok {
				logger.Log.Info("event stream closed")
				return
			}
			l.handle(ctx, event)
		}
	}
}

func (l *Loop) handle(ctx context.Context, event notify.Event) {
	target, ok := l.target(event.Path)
	if !ok {
		return
	}

	l.state.SetBusy(true)
	err := l.sync.Transfer(ctx, l.t, syncer.Incremental, l.service, target)
	l.state.SetBusy(false)
	l.state.RecordSync(err)

	if err != nil {
		// A single failed sync must not kill the session.
		logger.Log.Error("incremental sync failed",
			zap.String("path", target),
			zap.Error(err))
		return
	}

	logger.Log.Info("synced", zap.String("path", target))
}

// target translates an absolute event path into the ./-prefixed relative
// form rsync's --relative mode expects. When delete propagation is on and
// the path is gone from disk, the containing directory is substituted: a
// relative transfer of a nonexistent path would be a no-op, while rsyncing
// the parent with --delete removes the now-absent child remotely. The
// substitution is a best-effort approximation; unrelated new files in that
// directory ride along.
func (l *Loop) target(absPath string) (string, bool) {
	rel, err := filepath.Rel(l.root, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		logger.Log.Debug("event outside watch root, skipping",
			zap.String("path", absPath))
		return "", false
	}

	rel = filepath.ToSlash(rel)

	if l.cfg.DeleteFlag {
		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			rel = path.Dir(rel)
		}
	}

	if rel == "." {
		return "./", true
	}
	return "./" + rel, true
}
