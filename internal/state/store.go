package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/eternalcoin/eternalcoin/internal/node"
)

// offlineThreshold is the number of consecutive failures after which the
// node counts as offline.
const offlineThreshold = 2

// Snapshot represents the latest node data available to the UI.
type Snapshot struct {
	Info                node.Info
	HasInfo             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the node has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= offlineThreshold
}

// Change describes how an update moved the node's reachability.
type Change int

const (
	Unchanged Change = iota
	WentOffline
	CameBack
)

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a poll result. When err is non-nil the previous info is
// kept but the error is recorded for visibility. The returned Change reports
// whether the node just crossed the offline threshold in either direction.
func (s *Store) Update(info *node.Info, err error) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasOffline := s.snapshot.IsOffline()
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		if !wasOffline && s.snapshot.IsOffline() {
			return WentOffline
		}
		return Unchanged
	}

	if info != nil {
		s.snapshot.Info = *info
		s.snapshot.HasInfo = true
	} else {
		s.snapshot.HasInfo = false
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	if wasOffline {
		return CameBack
	}
	return Unchanged
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
