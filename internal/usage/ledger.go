// Package usage derives token-quota tiers from the agent gateway's
// append-only session logs. Nothing here is persisted: every snapshot
// is recomputed from the logs, with a short-lived cache bounding the
// cost of repeated scans.
package usage

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/warroom/internal/clock"
	"github.com/mrz1836/warroom/internal/constants"
	"github.com/mrz1836/warroom/internal/domain"
)

// scanWorkers bounds the number of session log files read concurrently.
const scanWorkers = 4

// ModelProvider supplies the active model identifier stamped onto each
// snapshot.
type ModelProvider interface {
	ActiveModel() string
}

// Ledger computes usage snapshots from session logs.
type Ledger struct {
	fs          afero.Fs
	sessionsDir string
	models      ModelProvider
	clk         clock.Clock
	ttl         time.Duration

	mu         sync.Mutex
	cached     domain.UsageSnapshot
	computedAt time.Time
	hasCache   bool
}

// NewLedger creates a usage ledger scanning sessionsDir on fs.
func NewLedger(fs afero.Fs, sessionsDir string, models ModelProvider, clk clock.Clock) *Ledger {
	return &Ledger{
		fs:          fs,
		sessionsDir: sessionsDir,
		models:      models,
		clk:         clk,
		ttl:         constants.UsageCacheTTL,
	}
}

// Snapshot returns the current usage tiers, recomputing from the
// session logs when the cached value has expired.
func (l *Ledger) Snapshot(ctx context.Context) (domain.UsageSnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clk.Now()
	if l.hasCache && now.Sub(l.computedAt) < l.ttl {
		return l.cached, nil
	}

	snapshot, err := l.compute(ctx, now)
	if err != nil {
		return domain.UsageSnapshot{}, err
	}
	l.cached = snapshot
	l.computedAt = now
	l.hasCache = true
	return snapshot, nil
}

func (l *Ledger) compute(ctx context.Context, now time.Time) (domain.UsageSnapshot, error) {
	sessionStart := now.Add(-constants.SessionWindow)
	weekStart := now.Add(-constants.WeeklyWindow)

	var sessionTokens, weekTokens atomic.Int64

	infos, err := afero.ReadDir(l.fs, l.sessionsDir)
	if err != nil {
		// A gateway that has never run has no sessions directory.
		return l.snapshotFor(0, 0), nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scanWorkers)

	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), constants.SessionLogExt) {
			continue
		}
		mtime := info.ModTime()
		if mtime.Before(weekStart) {
			// Too old to contribute to any window.
			continue
		}

		path := filepath.Join(l.sessionsDir, info.Name())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			session, week := scanSessionLog(l.fs, path, mtime, sessionStart, weekStart)
			sessionTokens.Add(session)
			weekTokens.Add(week)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.UsageSnapshot{}, err
	}

	return l.snapshotFor(sessionTokens.Load(), weekTokens.Load()), nil
}

func (l *Ledger) snapshotFor(sessionTokens, weekTokens int64) domain.UsageSnapshot {
	return domain.UsageSnapshot{
		Model: l.models.ActiveModel(),
		Tiers: []domain.UsageTier{
			{
				Label:    "Current session",
				Percent:  percentOf(sessionTokens, constants.SessionTokenCeiling),
				ResetsIn: formatDuration(constants.SessionWindow),
			},
			{
				Label:    "Current week (all models)",
				Percent:  percentOf(weekTokens, constants.WeeklyTokenCeiling),
				ResetsIn: formatDuration(constants.WeeklyWindow),
			},
		},
	}
}

// usageBlock is the token accounting attached to a session log entry.
type usageBlock struct {
	Input     int64 `json:"input"`
	Output    int64 `json:"output"`
	CacheRead int64 `json:"cacheRead"`
	Cost      struct {
		Total float64 `json:"total"`
	} `json:"cost"`
}

// logEntry is the subset of a session log line the ledger cares about.
// Usage may sit at the top level or under message, depending on the
// entry kind.
type logEntry struct {
	Timestamp string      `json:"timestamp"`
	Usage     *usageBlock `json:"usage"`
	Message   struct {
		Usage *usageBlock `json:"usage"`
	} `json:"message"`
}

// scanSessionLog tallies the tokens one log file contributes to the
// session and weekly windows. Unreadable files and malformed lines
// contribute nothing; entries without a timestamp fall back to the
// file's modification time.
func scanSessionLog(fs afero.Fs, path string, mtime, sessionStart, weekStart time.Time) (session, week int64) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return 0, 0
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry logEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		usage := entry.Message.Usage
		if usage == nil {
			usage = entry.Usage
		}
		// Entries only count once their cost has been settled.
		if usage == nil || usage.Cost.Total == 0 {
			continue
		}
		tokens := usage.Input + usage.Output + usage.CacheRead

		ts := parseEntryTime(entry.Timestamp, mtime)
		if !ts.Before(weekStart) {
			week += tokens
		}
		if !ts.Before(sessionStart) {
			session += tokens
		}
	}
	return session, week
}

// entryTimeLayouts are the timestamp shapes accepted in log entries.
var entryTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseEntryTime(raw string, fallback time.Time) time.Time {
	if raw == "" {
		return fallback
	}
	for _, layout := range entryTimeLayouts {
		if layout == time.RFC3339Nano {
			if ts, err := time.Parse(layout, raw); err == nil {
				return ts
			}
			continue
		}
		if ts, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return ts
		}
	}
	return fallback
}

// percentOf converts a token count into a share of the ceiling, rounded
// and clamped to 100.
func percentOf(tokens, ceiling int64) int {
	pct := int(math.Round(float64(tokens) / float64(ceiling) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// formatDuration renders a window length as "2h 15m", switching to
// "3d 4h" once days are involved.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMinutes := int(d.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	days := hours / 24
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours%24)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
