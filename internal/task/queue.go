package task

import (
	"sort"
	"time"

	"github.com/mrz1836/warroom/internal/constants"
	"github.com/mrz1836/warroom/internal/domain"
)

// Queue returns the ordered set of tasks eligible for worker pickup at
// the current instant. The computation is purely derived from stored
// state: repeated calls with unchanged data return the same result and
// nothing is consumed.
func (s *Store) Queue() []domain.Task {
	return ExtractQueue(s.doc.Read(), s.clk.Now())
}

// ExtractQueue computes the pickup queue from a task snapshot.
//
// Candidates are in-progress tasks not yet picked up (started via
// run-now and awaiting a worker) plus todo tasks whose schedule permits
// immediate eligibility. Ordering is priority rank ascending (urgent
// first), then scheduledAt lexicographic ascending with empty first;
// remaining ties keep storage order via the stable sort.
func ExtractQueue(tasks []domain.Task, now time.Time) []domain.Task {
	queue := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == domain.TaskStatusInProgress && !t.PickedUp {
			queue = append(queue, t)
			continue
		}
		if t.Status != domain.TaskStatusTodo {
			continue
		}
		if scheduleEligible(t.Schedule, now) {
			queue = append(queue, t)
		}
	}

	sort.SliceStable(queue, func(i, j int) bool {
		ri, rj := queue[i].Priority.Rank(), queue[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return queue[i].ScheduledAt < queue[j].ScheduledAt
	})
	return queue
}

// scheduleEligible reports whether a todo task's schedule permits
// pickup at now. Absent schedules and the asap/next-heartbeat sentinels
// are always eligible; a timestamp is eligible once it has passed; a
// string that parses as neither is treated as eligible (fail-open).
func scheduleEligible(schedule string, now time.Time) bool {
	switch schedule {
	case "", constants.ScheduleASAP, constants.ScheduleNextHeartbeat:
		return true
	}
	at, err := parseScheduleTime(schedule)
	if err != nil {
		return true
	}
	return !at.After(now)
}

// scheduleLayouts are the accepted timestamp shapes for schedule
// strings. Layouts without an explicit offset are interpreted as UTC.
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseScheduleTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range scheduleLayouts {
		if layout == time.RFC3339 {
			if at, err := time.Parse(layout, s); err == nil {
				return at, nil
			} else {
				lastErr = err
			}
			continue
		}
		if at, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return at, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
