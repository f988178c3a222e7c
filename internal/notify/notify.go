// Package notify turns raw filesystem events into a coalesced stream of
// changed paths: a recursive watcher feeding a static-exclusion filter and a
// per-path debounce window. Consumers only ever see absolute paths that
// survived both stages.
package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dockrsync/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const bufferSize = 100

// Event is one delivered change notification.
type Event struct {
	Path string
	At   time.Time
}

// DefaultExcludes filters hidden files, IDE metadata and editor temp files
// before events ever reach the watch loop. These are static, configured
// once; the rsync exclude files are a separate mechanism.
var DefaultExcludes = []string{
	".*", "*~", "*.swp", "*.swx", "*.tmp", ".DS_Store", ".idea", ".vscode", ".git",
}

// Stream watches a directory tree recursively until stopped.
type Stream struct {
	fw       *fsnotify.Watcher
	excludes []string
	rawCh    chan Event
	outCh    <-chan Event
	doneCh   chan struct{}
}

// Watch starts watching root. latency is the coalescing window: bursts of
// events for the same path inside it collapse into one delivery.
func Watch(root string, latency time.Duration, excludeGlobs []string) (*Stream, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	if _, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("watch root not found: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	s := &Stream{
		fw:       fw,
		excludes: excludeGlobs,
		rawCh:    make(chan Event, bufferSize),
		doneCh:   make(chan struct{}),
	}
	s.outCh = Debounce(Filter(s.rawCh, absRoot, excludeGlobs), latency)

	if err := s.addRecursive(absRoot); err != nil {
		_ = fw.Close()
		return nil, err
	}

	go s.run()

	logger.Log.Info("watching for changes",
		zap.String("dir", absRoot),
		zap.Duration("latency", latency))

	return s, nil
}

// Events delivers coalesced change notifications. The channel closes after
// Stop.
func (s *Stream) Events() <-chan Event {
	return s.outCh
}

func (s *Stream) Stop() {
	close(s.doneCh)
	_ = s.fw.Close()
}

func (s *Stream) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		// Skip excluded directories wholesale so the kernel never has
		// to report events inside them.
		if path != dir && matchesAny(d.Name(), s.excludes) {
			return filepath.SkipDir
		}

		if err := s.fw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}

		return nil
	})
}

func (s *Stream) run() {
	defer close(s.rawCh)

	for {
		select {
		case <-s.doneCh:
			logger.Log.Debug("watcher stopping")
			return

		case fsEvent, ok := <-s.fw.Events:
			if !ok {
				return
			}

			if fsEvent.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(fsEvent.Name); err == nil && info.IsDir() {
					if err := s.addRecursive(fsEvent.Name); err != nil {
						logger.Log.Warn("failed to watch new directory",
							zap.String("path", fsEvent.Name),
							zap.Error(err))
					}
				}
			}

			event := Event{Path: fsEvent.Name, At: time.Now()}

			select {
			case s.rawCh <- event:
			default:
				logger.Log.Warn("event channel full, dropping event",
					zap.String("path", fsEvent.Name))
			}

		case err, ok := <-s.fw.Errors:
			if !ok {
				return
			}
			logger.Log.Error("watcher error", zap.Error(err))
		}
	}
}
