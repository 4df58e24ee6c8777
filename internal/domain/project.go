package domain

import "github.com/mrz1836/warroom/internal/patch"

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

// Project status constants.
const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusPaused   ProjectStatus = "paused"
	ProjectStatusArchived ProjectStatus = "archived"
)

// IsValid checks if the project status is a valid value.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusPaused, ProjectStatusArchived:
		return true
	default:
		return false
	}
}

// Project is a named grouping of tasks. The ID is caller-supplied and
// acts as the foreign key in Task.Project.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`

	// Order controls display sorting only.
	Order int `json:"order"`
}

// ProjectWithCount decorates a project with its referencing-task count.
// The count field is snake_case on the wire; the dashboard reads
// task_count, unlike the otherwise camelCase payloads.
type ProjectWithCount struct {
	Project
	TaskCount int `json:"task_count"`
}

// ProjectCreate is the payload for creating a project.
type ProjectCreate struct {
	ID          string        `json:"id" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status" validate:"omitempty,oneof=active paused archived"`
	Order       int           `json:"order"`
}

// ProjectPatch is the payload for partial project updates.
type ProjectPatch struct {
	Name        patch.Field[string]        `json:"name"`
	Icon        patch.Field[string]        `json:"icon"`
	Color       patch.Field[string]        `json:"color"`
	Description patch.Field[string]        `json:"description"`
	Status      patch.Field[ProjectStatus] `json:"status"`
	Order       patch.Field[int]           `json:"order"`
}
