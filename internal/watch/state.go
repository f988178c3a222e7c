package watch

import (
	"sync"
	"time"
)

// State tracks one watch session for the status endpoint. The loop itself
// is single-threaded; the mutex only guards against concurrent snapshot
// reads from the HTTP handler.
type State struct {
	mu        sync.RWMutex
	service   string
	container string
	startedAt time.Time
	busy      bool
	synced    int
	failed    int
	lastSync  *time.Time
	lastError string
}

func NewState(service, container string) *State {
	return &State{
		service:   service,
		container: container,
		startedAt: time.Now(),
	}
}

func (s *State) SetBusy(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = busy
}

func (s *State) RecordSync(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.lastSync = &now
	if err != nil {
		s.failed++
		s.lastError = err.Error()
	} else {
		s.synced++
		s.lastError = ""
	}
}

type Snapshot struct {
	Service   string     `json:"service"`
	Container string     `json:"container"`
	StartedAt time.Time  `json:"started_at"`
	Busy      bool       `json:"busy"`
	Synced    int        `json:"synced"`
	Failed    int        `json:"failed"`
	LastSync  *time.Time `json:"last_sync,omitempty"`
	LastError string     `json:"last_error,omitempty"`
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Service:   s.service,
		Container: s.container,
		StartedAt: s.startedAt,
		Busy:      s.busy,
		Synced:    s.synced,
		Failed:    s.failed,
		LastSync:  s.lastSync,
		LastError: s.lastError,
	}
}
