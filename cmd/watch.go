package cmd

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"dockrsync/internal/compose"
	"dockrsync/internal/daemon"
	"dockrsync/internal/logger"
	"dockrsync/internal/notify"
	"dockrsync/internal/runner"
	"dockrsync/internal/syncer"
	"dockrsync/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// coalescingInterval is the window over which bursts of filesystem events
// for the same path collapse into a single delivered notification.
const coalescingInterval = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [service]",
	Short: "Watch the project directory and sync every change into the container",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	explicit := ""
	if len(args) == 1 {
		explicit = args[0]
	}

	service, err := compose.Resolve(explicit, cfg)
	if err != nil {
		return err
	}

	run := runner.ExecRunner{}
	containerID, err := compose.NewLocator(run).Locate(cmd.Context(), service)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(".")
	if err != nil {
		return err
	}

	stream, err := notify.Watch(root, coalescingInterval, notify.DefaultExcludes)
	if err != nil {
		return err
	}
	defer stream.Stop()

	loop := watch.NewLoop(cfg, syncer.New(cfg, run), service, containerID, root)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var srv *daemon.Server
	if cfg.StatusPort != 0 {
		srv = daemon.NewServer(loop.State(), cfg.StatusPort)
		srv.Start()
		go func() {
			select {
			case <-srv.StopCh():
				logger.Log.Info("stop requested via API")
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	logger.Log.Info("watch session started",
		zap.String("service", service),
		zap.String("container", containerID))

	loop.Run(ctx, stream.Events())

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Stop(shutdownCtx)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
