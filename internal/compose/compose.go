package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dockrsync/internal/config"
	"dockrsync/internal/logger"
	"dockrsync/internal/runner"

	"go.uber.org/zap"
)

var (
	ErrNoService = errors.New("no service specified and no default configured, " +
		"pass a service name or set DEFAULT_SERVICE via 'dockrsync setup'")
	ErrContainerNotFound = errors.New("no running container found for service")
)

// Resolve picks the target service: an explicit name wins, then
// DEFAULT_SERVICE, then the legacy DEFAULT_CONTAINER key. This runs as an
// eager precondition before any container lookup.
func Resolve(explicit string, cfg *config.Settings) (string, error) {
	switch {
	case explicit != "":
		return explicit, nil
	case cfg.DefaultService != "":
		return cfg.DefaultService, nil
	case cfg.DefaultContainer != "":
		return cfg.DefaultContainer, nil
	default:
		return "", ErrNoService
	}
}

type Locator struct {
	run runner.Runner
}

func NewLocator(run runner.Runner) *Locator {
	return &Locator{run: run}
}

// Locate maps a service name to the id of its running container. A blank
// query result is the orchestrator's way of saying "nothing running"; it is
// reported as ErrContainerNotFound and never treated as a valid id.
func (l *Locator) Locate(ctx context.Context, service string) (string, error) {
	out, err := l.run.Output(ctx, "docker-compose", "ps", "-q", service)
	if err != nil {
		return "", fmt.Errorf("failed to query containers for %s: %w", service, err)
	}

	id := strings.TrimSpace(out)
	if id == "" {
		return "", fmt.Errorf("%w: %s", ErrContainerNotFound, service)
	}

	logger.Log.Debug("located container",
		zap.String("service", service),
		zap.String("container", id))

	return id, nil
}
