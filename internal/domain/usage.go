package domain

// UsageTier is one rolling-window quota expressed as a percentage of
// its configured ceiling.
type UsageTier struct {
	// Label names the tier (e.g. "Current session").
	Label string `json:"label"`

	// Percent is the consumed share of the ceiling, clamped to 0–100.
	Percent int `json:"percent"`

	// ResetsIn is a human-readable time until the window resets.
	ResetsIn string `json:"resetsIn"`
}

// UsageSnapshot is the derived, non-persisted usage aggregate.
type UsageSnapshot struct {
	// Model is the currently active model identifier.
	Model string `json:"model"`

	// Tiers holds the session and weekly tiers, in that order.
	Tiers []UsageTier `json:"tiers"`
}

// Heartbeat is the single last-seen timestamp document.
type Heartbeat struct {
	// LastHeartbeat is epoch milliseconds, nil when never recorded.
	LastHeartbeat *int64 `json:"lastHeartbeat"`
}

// Stats is the overview-widget aggregate. Its fields are snake_case on
// the wire; the dashboard's stats consumer predates the camelCase
// convention the other payloads follow.
type Stats struct {
	InProgressCount int    `json:"in_progress_count"`
	TodoCount       int    `json:"todo_count"`
	LastHeartbeat   *int64 `json:"last_heartbeat"`
	ActiveModel     string `json:"active_model"`
}

// CalendarDay summarizes one day for the calendar view.
type CalendarDay struct {
	// Memory reports whether a daily memory note exists for the day.
	Memory bool `json:"memory"`

	// Tasks lists the titles of tasks completed on the day.
	Tasks []string `json:"tasks"`
}
