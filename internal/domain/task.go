// Package domain provides shared domain types for the War Room
// orchestration core. These types are used across all internal packages
// to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/patch, standard library, validation helpers
//   - MUST NOT import: any of the store packages
//
// All JSON field names use camelCase to match the dashboard wire format.
// Timestamps are persisted as RFC 3339 strings; an empty string means
// unset. Keeping timestamps as strings preserves the lexicographic
// ordering contract of scheduledAt and tolerates legacy documents with
// missing or malformed values.
package domain

import (
	"github.com/mrz1836/warroom/internal/patch"
)

// TaskStatus represents the lifecycle state of a task.
//
//	backlog → todo → in-progress → done
//
// in-progress is reachable either via an explicit run-now action or via
// pickup from the queue.
type TaskStatus string

// Task status constants define the valid states a task can be in.
const (
	// TaskStatusBacklog indicates a task captured but not yet scheduled.
	TaskStatusBacklog TaskStatus = "backlog"

	// TaskStatusTodo indicates a task ready for scheduling and pickup.
	TaskStatusTodo TaskStatus = "todo"

	// TaskStatusInProgress indicates a task currently being worked.
	TaskStatusInProgress TaskStatus = "in-progress"

	// TaskStatusDone indicates a finished task.
	TaskStatusDone TaskStatus = "done"
)

// IsValid checks if the status is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusBacklog, TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

// Task priority constants, most urgent first in queue ordering.
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// IsValid checks if the priority is a valid value.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	default:
		return false
	}
}

// Rank returns the queue sort rank of the priority (urgent=0 … low=3).
// Unknown values rank as medium, matching the store's tolerance for
// legacy documents.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityUrgent:
		return 0
	case TaskPriorityHigh:
		return 1
	case TaskPriorityMedium:
		return 2
	case TaskPriorityLow:
		return 3
	default:
		return 2
	}
}

// Task represents a single unit of work in the War Room queue.
//
// Invariants maintained by the task store:
//   - CompletedAt is non-empty if and only if Status == done.
//   - PickedUp is only ever set true by the pickup operation and stays
//     true for the lifetime of the task.
//   - ID is unique within the store.
type Task struct {
	// ID is the opaque short identifier, assigned at creation.
	ID string `json:"id"`

	// Title is a human-readable summary. Defaults to "Untitled".
	Title string `json:"title"`

	// Description carries free-form detail.
	Description string `json:"description"`

	// Status is the current lifecycle state.
	Status TaskStatus `json:"status"`

	// Priority drives the primary queue ordering key.
	Priority TaskPriority `json:"priority"`

	// Project optionally references a Project.ID. Empty means untagged.
	Project string `json:"project,omitempty"`

	// Tags is the free-form tag set used for filtering.
	Tags []string `json:"tags"`

	// Skill optionally names the skill an agent should apply.
	Skill string `json:"skill,omitempty"`

	// Schedule is "asap", "next-heartbeat", an RFC 3339 timestamp, or
	// empty. It gates queue eligibility for todo tasks.
	Schedule string `json:"schedule,omitempty"`

	// ScheduledAt is the intended execution time, used as the secondary
	// queue ordering key (lexicographic, empty first).
	ScheduledAt string `json:"scheduledAt,omitempty"`

	// References are the links and documents attached to this task.
	References ReferenceList `json:"references"`

	// StartedAt is stamped by run or first pickup.
	StartedAt string `json:"startedAt,omitempty"`

	// CompletedAt is stamped when the task enters done and cleared when
	// it leaves done.
	CompletedAt string `json:"completedAt,omitempty"`

	// Result holds the worker's output text, possibly partial.
	Result string `json:"result,omitempty"`

	// Error holds the worker's error text. Result and Error may coexist.
	Error string `json:"error,omitempty"`

	// PickedUp records that a worker has claimed this task.
	PickedUp bool `json:"pickedUp"`

	// CreatedAt is when the task was created.
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt string `json:"updatedAt"`

	// EstimatedHours is the estimated effort, if any.
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`

	// ActualHours is the recorded effort, if any.
	ActualHours *float64 `json:"actualHours,omitempty"`
}

// TaskCreate is the payload for creating a task.
type TaskCreate struct {
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Priority       TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status         TaskStatus   `json:"status" validate:"omitempty,oneof=backlog todo"`
	Project        string       `json:"project"`
	Tags           []string     `json:"tags"`
	Skill          string       `json:"skill"`
	Schedule       string       `json:"schedule"`
	ScheduledAt    string       `json:"scheduledAt"`
	EstimatedHours *float64     `json:"estimatedHours" validate:"omitempty,gte=0"`
}

// TaskPatch is the payload for partial task updates. Each field is
// tri-state: absent leaves the stored value unchanged, explicit null
// clears it, and a value replaces it.
type TaskPatch struct {
	Title          patch.Field[string]       `json:"title"`
	Description    patch.Field[string]       `json:"description"`
	Priority       patch.Field[TaskPriority] `json:"priority"`
	Status         patch.Field[TaskStatus]   `json:"status"`
	Project        patch.Field[string]       `json:"project"`
	Tags           patch.Field[[]string]     `json:"tags"`
	Skill          patch.Field[string]       `json:"skill"`
	Schedule       patch.Field[string]       `json:"schedule"`
	ScheduledAt    patch.Field[string]       `json:"scheduledAt"`
	Result         patch.Field[string]       `json:"result"`
	Error          patch.Field[string]       `json:"error"`
	StartedAt      patch.Field[string]       `json:"startedAt"`
	CompletedAt    patch.Field[string]       `json:"completedAt"`
	EstimatedHours patch.Field[float64]      `json:"estimatedHours"`
	ActualHours    patch.Field[float64]      `json:"actualHours"`
}

// TaskComplete is the payload for the complete operation.
type TaskComplete struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}
