package task

import (
	"github.com/mrz1836/warroom/internal/clock"
	"github.com/mrz1836/warroom/internal/domain"
)

// Run forces a task into in-progress and stamps startedAt. It does not
// set pickedUp: run-now is a manual trigger distinct from queue-driven
// pickup, and the task stays visible in the queue until a worker claims
// it.
func (s *Store) Run(id string) (domain.Task, error) {
	return s.mutate(id, func(t *domain.Task) error {
		t.Status = domain.TaskStatusInProgress
		t.StartedAt = clock.NowRFC3339(s.clk)
		return nil
	})
}

// Pickup is the idempotent claim a worker makes before executing a
// task: pickedUp becomes true, status moves to in-progress, and
// startedAt keeps its first-seen value so a worker can re-request
// pickup after a crash without losing the original start time.
func (s *Store) Pickup(id string) (domain.Task, error) {
	return s.mutate(id, func(t *domain.Task) error {
		t.PickedUp = true
		t.Status = domain.TaskStatusInProgress
		if t.StartedAt == "" {
			t.StartedAt = clock.NowRFC3339(s.clk)
		}
		return nil
	})
}

// Complete finishes a task: status done, completedAt stamped, result
// stored. An error string does not suppress the result; both may carry
// partial output.
func (s *Store) Complete(id string, payload domain.TaskComplete) (domain.Task, error) {
	return s.mutate(id, func(t *domain.Task) error {
		t.Status = domain.TaskStatusDone
		t.CompletedAt = clock.NowRFC3339(s.clk)
		t.Result = payload.Result
		if payload.Error != "" {
			t.Error = payload.Error
		}
		return nil
	})
}
