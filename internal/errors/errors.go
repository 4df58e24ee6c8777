// Package errors provides centralized error handling for the War Room service.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrTaskNotFound indicates the requested task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrProjectNotFound indicates the requested project does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectExists indicates an attempt to create a project with an
	// ID that is already in use.
	ErrProjectExists = errors.New("project already exists")

	// ErrProjectHasTasks indicates a project cannot be deleted because
	// one or more tasks still reference it.
	ErrProjectHasTasks = errors.New("project has referencing tasks")

	// ErrReferenceNotFound indicates the requested task reference does
	// not exist on its parent task.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrSkillNotFound indicates the requested skill does not exist in
	// any skill directory.
	ErrSkillNotFound = errors.New("skill not found")

	// ErrSkillProtected indicates an attempt to delete a bundled or
	// managed skill. Only workspace skills may be deleted.
	ErrSkillProtected = errors.New("only workspace skills can be deleted")

	// ErrFileNotAllowed indicates a workspace file name outside the
	// fixed allow-list.
	ErrFileNotAllowed = errors.New("workspace file not allowed")

	// ErrInvalidHistoryIndex indicates a revert index outside the
	// current history bounds.
	ErrInvalidHistoryIndex = errors.New("invalid history index")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidStatus indicates a task or project status outside the
	// allowed enumeration.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority indicates a task priority outside the allowed
	// enumeration.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrLockHeld indicates the data directory is already locked by
	// another server process.
	ErrLockHeld = errors.New("data directory locked by another process")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")
)
