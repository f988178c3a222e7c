package syncer

import (
	"context"
	"fmt"
	"time"

	"dockrsync/internal/anybar"
	"dockrsync/internal/compose"
	"dockrsync/internal/config"
	"dockrsync/internal/db"
	"dockrsync/internal/excludes"
	"dockrsync/internal/logger"
	"dockrsync/internal/repository"
	"dockrsync/internal/runner"
	"dockrsync/internal/transport"

	"go.uber.org/zap"
)

// Syncer issues rsync transfers against a container, wrapping each one in
// best-effort status notifications and a history record.
type Syncer struct {
	cfg      *config.Settings
	run      runner.Runner
	locator  *compose.Locator
	notifier *anybar.Notifier
	history  *repository.HistoryRepository
}

func New(cfg *config.Settings, run runner.Runner) *Syncer {
	return &Syncer{
		cfg:      cfg,
		run:      run,
		locator:  compose.NewLocator(run),
		notifier: anybar.New(cfg.AnyBarPort),
		history:  repository.NewHistoryRepository(),
	}
}

// SyncOnce resolves the target service and container, then runs a single
// bulk transfer in the given direction. Resolution failures surface before
// any transfer is attempted.
func (s *Syncer) SyncOnce(ctx context.Context, d Direction, explicitService string) error {
	service, err := compose.Resolve(explicitService, s.cfg)
	if err != nil {
		return err
	}

	containerID, err := s.locator.Locate(ctx, service)
	if err != nil {
		return err
	}

	t := transport.New(containerID)

	logger.Log.Info("starting bulk sync",
		zap.String("direction", d.String()),
		zap.String("service", service))

	return s.Transfer(ctx, t, d, service, "./")
}

// Transfer runs one rsync invocation through an already-built transport.
// The watch loop calls this directly, once per delivered change event.
func (s *Syncer) Transfer(ctx context.Context, t transport.Transport, d Direction,
	service, path string) error {

	excludeFiles, err := s.excludesFor(d)
	if err != nil {
		return err
	}

	args := transferArgs(d, t, s.cfg.RemoteRoot, path, excludeFiles, s.cfg.DeleteFlag)

	s.notifier.Notify(anybar.Busy)
	start := time.Now()
	runErr := s.run.Run(ctx, "rsync", args...)
	elapsed := time.Since(start)

	if runErr != nil {
		s.notifier.Notify(anybar.Error)
	} else {
		s.notifier.Notify(anybar.Idle)
	}

	s.record(d, service, path, elapsed, runErr)

	if runErr != nil {
		return fmt.Errorf("transfer failed: %w", runErr)
	}

	logger.Log.Debug("transfer complete",
		zap.String("path", path),
		zap.Duration("took", elapsed))

	return nil
}

// excludesFor lazily materializes the exclude files a direction needs.
// Fetch is the only direction that also applies the fetch-only list.
func (s *Syncer) excludesFor(d Direction) ([]string, error) {
	general, err := excludes.General()
	if err != nil {
		return nil, err
	}

	files := []string{general}
	if d == Fetch {
		fetch, err := excludes.Fetch()
		if err != nil {
			return nil, err
		}
		files = append(files, fetch)
	}

	return files, nil
}

func (s *Syncer) record(d Direction, service, path string, took time.Duration, err error) {
	if s.history == nil || !db.Ready() {
		return
	}

	saveErr := s.history.Save(repository.Entry{
		Direction: d.String(),
		Service:   service,
		Path:      path,
		Duration:  took,
		Err:       err,
	})
	if saveErr != nil {
		logger.Log.Warn("failed to save history", zap.Error(saveErr))
	}
}
