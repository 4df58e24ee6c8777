// Package heartbeat tracks the agent's last-seen timestamp as a single
// persisted document.
package heartbeat

import (
	"path/filepath"

	"github.com/mrz1836/warroom/internal/clock"
	"github.com/mrz1836/warroom/internal/constants"
	"github.com/mrz1836/warroom/internal/docstore"
	"github.com/mrz1836/warroom/internal/domain"
)

// Store provides access to the heartbeat document.
type Store struct {
	doc *docstore.Document[domain.Heartbeat]
	clk clock.Clock
}

// NewStore creates a heartbeat store persisting under dataDir.
func NewStore(dataDir string, clk clock.Clock) *Store {
	return &Store{
		doc: docstore.New(filepath.Join(dataDir, constants.HeartbeatFile), func() domain.Heartbeat {
			return domain.Heartbeat{}
		}),
		clk: clk,
	}
}

// Get returns the last recorded heartbeat. LastHeartbeat is nil when no
// heartbeat was ever recorded.
func (s *Store) Get() domain.Heartbeat {
	return s.doc.Read()
}

// Record stamps the current instant, in epoch milliseconds, as the last
// heartbeat.
func (s *Store) Record() (domain.Heartbeat, error) {
	now := clock.NowMillis(s.clk)
	hb := domain.Heartbeat{LastHeartbeat: &now}
	if err := s.doc.Write(hb); err != nil {
		return domain.Heartbeat{}, err
	}
	return hb, nil
}
