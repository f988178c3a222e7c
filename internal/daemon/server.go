package daemon

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"dockrsync/internal/logger"
	"dockrsync/internal/watch"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Server exposes a running watch session over HTTP: a status snapshot and a
// stop hook. It only runs when STATUS_PORT is configured.
type Server struct {
	echo   *echo.Echo
	state  *watch.State
	port   int
	stopCh chan struct{}
}

func NewServer(state *watch.State, port int) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:   e,
		state:  state,
		port:   port,
		stopCh: make(chan struct{}, 1),
	}

	e.GET("/status", s.handleStatus)
	e.POST("/stop", s.handleStop)

	return s
}

func (s *Server) Start() {
	go func() {
		addr := ":" + strconv.Itoa(s.port)
		logger.Log.Info("status server started", zap.String("addr", addr))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("status server error", zap.Error(err))
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// StopCh fires when a stop was requested over the API.
func (s *Server) StopCh() <-chan struct{} {
	return s.stopCh
}

func (s *Server) handleStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, s.state.Snapshot())
}

func (s *Server) handleStop(c echo.Context) error {
	select {
	case s.stopCh <- struct{}{}:
	default:
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "stopping"})
}
