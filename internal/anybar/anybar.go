package anybar

import (
	"fmt"
	"net"
	"time"

	"dockrsync/internal/logger"

	"go.uber.org/zap"
)

// Color tokens understood by the AnyBar menu-bar indicator.
const (
	Idle  = "green"
	Busy  = "orange"
	Error = "red"
	Quit  = "quit"
)

// Notifier signals sync state to a local AnyBar instance over UDP.
// Fire-and-forget: no acknowledgment, no retry, and a failure to send never
// reaches the caller. A nil Notifier is a valid no-op.
type Notifier struct {
	addr string
}

// New returns a notifier for the given port, or nil when port is zero
// (unconfigured).
func New(port int) *Notifier {
	if port == 0 {
		return nil
	}
	return &Notifier{addr: fmt.Sprintf("127.0.0.1:%d", port)}
}

func (n *Notifier) Notify(state string) {
	if n == nil {
		return
	}

	conn, err := net.DialTimeout("udp", n.addr, time.Second)
	if err != nil {
		logger.Log.Debug("anybar unreachable", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.Write([]byte(state)); err != nil {
		logger.Log.Debug("anybar notify failed", zap.Error(err))
	}
}
