package usage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock returns a controllable instant for deterministic windows.
type fixedClock struct {
	at time.Time
}

func (c *fixedClock) Now() time.Time { return c.at }

func (c *fixedClock) advance(d time.Duration) { c.at = c.at.Add(d) }

// stubModels supplies a fixed active model.
type stubModels struct {
	model string
}

func (s stubModels) ActiveModel() string { return s.model }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T) (*Ledger, afero.Fs, *fixedClock) {
	t.Helper()
	fs := afero.NewMemMapFs()
	clk := &fixedClock{at: testNow}
	return NewLedger(fs, "/sessions", stubModels{model: "claude-sonnet"}, clk), fs, clk
}

func writeLog(t *testing.T, fs afero.Fs, name, content string, mtime time.Time) {
	t.Helper()
	path := filepath.Join("/sessions", name)
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o600))
	require.NoError(t, fs.Chtimes(path, mtime, mtime))
}

// entryLine renders one priced log line with the given tokens and timestamp.
func entryLine(ts time.Time, input, output, cacheRead int64) string {
	return fmt.Sprintf(
		`{"timestamp":%q,"message":{"usage":{"input":%d,"output":%d,"cacheRead":%d,"cost":{"total":0.42}}}}`,
		ts.Format(time.RFC3339), input, output, cacheRead,
	)
}

func TestLedger_Snapshot_NoSessionsDir(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	got, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "claude-sonnet", got.Model)
	require.Len(t, got.Tiers, 2)
	assert.Equal(t, "Current session", got.Tiers[0].Label)
	assert.Equal(t, 0, got.Tiers[0].Percent)
	assert.Equal(t, "5h 0m", got.Tiers[0].ResetsIn)
	assert.Equal(t, "Current week (all models)", got.Tiers[1].Label)
	assert.Equal(t, 0, got.Tiers[1].Percent)
	assert.Equal(t, "7d 0h", got.Tiers[1].ResetsIn)
}

func TestLedger_Snapshot_CountsPricedEntries(t *testing.T) {
	ledger, fs, _ := newTestLedger(t)

	// 4.5M tokens inside the session window: 10% of session, 2.5% weekly.
	writeLog(t, fs, "a.jsonl", entryLine(testNow.Add(-time.Hour), 3_000_000, 1_000_000, 500_000), testNow)

	got, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, got.Tiers[0].Percent)
	assert.Equal(t, 3, got.Tiers[1].Percent)
}

func TestLedger_Snapshot_SkipsUnpricedAndMalformed(t *testing.T) {
	ledger, fs, _ := newTestLedger(t)

	lines := `{"message":{"usage":{"input":9000000,"output":0,"cacheRead":0,"cost":{"total":0}}}}
not json at all
` + entryLine(testNow.Add(-time.Hour), 4_500_000, 0, 0) + `
`
	writeLog(t, fs, "a.jsonl", lines, testNow)

	got, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, got.Tiers[0].Percent, "only the priced entry counts")
}

func TestLedger_Snapshot_TopLevelUsage(t *testing.T) {
	ledger, fs, _ := newTestLedger(t)

	line := fmt.Sprintf(
		`{"timestamp":%q,"usage":{"input":4500000,"output":0,"cacheRead":0,"cost":{"total":1}}}`,
		testNow.Add(-time.Hour).Format(time.RFC3339),
	)
	writeLog(t, fs, "a.jsonl", line, testNow)

	got, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, got.Tiers[0].Percent)
}

func TestLedger_Snapshot_Windows(t *testing.T) {
	ledger, fs, _ := newTestLedger(t)

	// Six hours old: outside the 5h session window, inside the week.
	writeLog(t, fs, "old.jsonl", entryLine(testNow.Add(-6*time.Hour), 18_000_000, 0, 0), testNow)

	got, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Tiers[0].Percent)
	assert.Equal(t, 10, got.Tiers[1].Percent)
}

func TestLedger_Snapshot_FileOlderThanWeekSkipped(t *testing.T) {
	ledger, fs, _ := newTestLedger(t)

	stale := testNow.Add(-8 * 24 * time.Hour)
	writeLog(t, fs, "stale.jsonl", entryLine(testNow.Add(-time.Hour), 45_000_000, 0, 0), stale)

	got, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Tiers[0].Percent)
	assert.Equal(t, 0, got.Tiers[1].Percent)
}

func TestLedger_Snapshot_MissingTimestampUsesMtime(t *testing.T) {
	ledger, fs, _ := newTestLedger(t)

	line := `{"message":{"usage":{"input":4500000,"output":0,"cacheRead":0,"cost":{"total":1}}}}`
	writeLog(t, fs, "a.jsonl", line, testNow.Add(-time.Hour))

	got, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, got.Tiers[0].Percent)
}

func TestLedger_Snapshot_ClampsAtFull(t *testing.T) {
	ledger, fs, _ := newTestLedger(t)

	writeLog(t, fs, "big.jsonl", entryLine(testNow.Add(-time.Hour), 90_000_000, 0, 0), testNow)

	got, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, got.Tiers[0].Percent)
	assert.Equal(t, 50, got.Tiers[1].Percent)
}

func TestLedger_Snapshot_Cache(t *testing.T) {
	ledger, fs, clk := newTestLedger(t)

	first, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, first.Tiers[0].Percent)

	// New usage lands, but the cache is still fresh.
	writeLog(t, fs, "a.jsonl", entryLine(clk.at, 4_500_000, 0, 0), clk.at)
	clk.advance(30 * time.Second)

	cached, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, cached.Tiers[0].Percent)

	clk.advance(time.Minute)
	fresh, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, fresh.Tiers[0].Percent)
}

func TestLedger_Snapshot_IgnoresNonLogFiles(t *testing.T) {
	ledger, fs, _ := newTestLedger(t)

	writeLog(t, fs, "notes.txt", entryLine(testNow, 45_000_000, 0, 0), testNow)

	got, err := ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Tiers[0].Percent)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0h 0m"},
		{5 * time.Hour, "5h 0m"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
		{7 * 24 * time.Hour, "7d 0h"},
		{26 * time.Hour, "1d 2h"},
		{-time.Hour, "0h 0m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.in), tt.in.String())
	}
}
