// Package constants defines shared constants for the War Room service.
// This package MUST NOT import any other internal packages.
package constants

import "time"

// Document file names under the data directory. Each file holds one
// document family and is guarded by its own lock.
const (
	// TasksFile is the document holding all task records.
	TasksFile = "tasks.json"

	// ProjectsFile is the document holding all project records.
	ProjectsFile = "projects.json"

	// HeartbeatFile is the document holding the last-seen heartbeat.
	HeartbeatFile = "heartbeat.json"

	// OpenClawFile is the shared agent-gateway configuration document.
	// The War Room owns only the active-model field and the skill
	// enablement entries inside it.
	OpenClawFile = "openclaw.json"

	// ServerLockFile guards the data directory against a second
	// server process.
	ServerLockFile = "warroom.lock"

	// HistoryFileSuffix is appended to a workspace file name to form
	// its history document name (e.g. "SOUL.md-history.json").
	HistoryFileSuffix = "-history.json"
)

// HistoryCap is the maximum number of entries retained in a workspace
// file's history. Oldest entries are evicted beyond this bound.
const HistoryCap = 20

// Schedule sentinels accepted in a task's schedule field in addition to
// RFC 3339 timestamps.
const (
	// ScheduleASAP marks a task eligible for pickup immediately.
	ScheduleASAP = "asap"

	// ScheduleNextHeartbeat defers a task to the next agent heartbeat.
	// For queue extraction it is equivalent to ScheduleASAP.
	ScheduleNextHeartbeat = "next-heartbeat"
)

// Usage ledger windows and ceilings.
const (
	// SessionWindow is the rolling window for the session usage tier.
	SessionWindow = 5 * time.Hour

	// WeeklyWindow is the rolling window for the weekly usage tier.
	WeeklyWindow = 7 * 24 * time.Hour

	// SessionTokenCeiling defines 100% of the session tier.
	SessionTokenCeiling = 45_000_000

	// WeeklyTokenCeiling defines 100% of the weekly tier.
	WeeklyTokenCeiling = 180_000_000

	// UsageCacheTTL bounds the cost of repeated session-log scans.
	UsageCacheTTL = 60 * time.Second
)

// SkillFileName is the metadata file expected inside each skill directory.
const SkillFileName = "SKILL.md"

// SessionLogExt is the extension of per-session append-only log files.
const SessionLogExt = ".jsonl"

// File and directory permission constants.
const (
	// DirPerm is the permission for created directories.
	DirPerm = 0o750

	// FilePerm is the permission for created files.
	FilePerm = 0o600
)
