// Package task provides the task document family: CRUD with schema
// normalization, the pickup/completion protocol, reference management,
// and queue extraction for autonomous workers.
package task

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/mrz1836/warroom/internal/clock"
	"github.com/mrz1836/warroom/internal/constants"
	"github.com/mrz1836/warroom/internal/docstore"
	"github.com/mrz1836/warroom/internal/domain"
	warroomerrors "github.com/mrz1836/warroom/internal/errors"
	"github.com/mrz1836/warroom/internal/patch"
)

// FilterUntagged is the project filter value selecting tasks without a
// project reference.
const FilterUntagged = "untagged"

// Store provides access to the task document family. All mutations run
// inside the family lock held by the underlying document, so concurrent
// operations on tasks never lose updates.
type Store struct {
	doc *docstore.Document[[]domain.Task]
	clk clock.Clock
}

// NewStore creates a task store persisting under dataDir.
func NewStore(dataDir string, clk clock.Clock) *Store {
	return &Store{
		doc: docstore.New(filepath.Join(dataDir, constants.TasksFile), func() []domain.Task {
			return []domain.Task{}
		}),
		clk: clk,
	}
}

// ListFilter narrows List results. All set fields apply conjunctively;
// Tags matches tasks having at least one of the given tags.
type ListFilter struct {
	Project  string
	Priority string
	Status   string
	Tags     []string
}

// ParseTagFilter splits a comma-separated tag parameter into a filter
// slice, trimming whitespace and dropping empties.
func ParseTagFilter(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// List returns all tasks matching the filter, in storage order.
func (s *Store) List(filter ListFilter) []domain.Task {
	tasks := s.doc.Read()
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matches(t, filter) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matches(t domain.Task, f ListFilter) bool {
	if f.Status != "" && string(t.Status) != f.Status {
		return false
	}
	if f.Priority != "" && string(t.Priority) != f.Priority {
		return false
	}
	switch {
	case f.Project == FilterUntagged:
		if t.Project != "" {
			return false
		}
	case f.Project != "":
		if t.Project != f.Project {
			return false
		}
	}
	if len(f.Tags) > 0 && !hasAnyTag(t.Tags, f.Tags) {
		return false
	}
	return true
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// Get retrieves a task by ID.
func (s *Store) Get(id string) (domain.Task, error) {
	for _, t := range s.doc.Read() {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, warroomerrors.ErrTaskNotFound
}

// Create appends a new task. Unset optional fields take the model
// defaults; a blank title becomes "Untitled".
func (s *Store) Create(req domain.TaskCreate) (domain.Task, error) {
	now := clock.NowRFC3339(s.clk)

	t := domain.Task{
		ID:             domain.NewID(),
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		Project:        req.Project,
		Tags:           req.Tags,
		Skill:          req.Skill,
		Schedule:       req.Schedule,
		ScheduledAt:    req.ScheduledAt,
		References:     domain.ReferenceList{},
		CreatedAt:      now,
		UpdatedAt:      now,
		EstimatedHours: req.EstimatedHours,
	}
	if t.Title == "" {
		t.Title = "Untitled"
	}
	if t.Status == "" {
		t.Status = domain.TaskStatusBacklog
	}
	if t.Priority == "" {
		t.Priority = domain.TaskPriorityMedium
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	_, err := s.doc.Update(func(tasks []domain.Task) ([]domain.Task, error) {
		return append(tasks, t), nil
	})
	if err != nil {
		return domain.Task{}, warroomerrors.Wrap(err, "failed to create task")
	}
	return t, nil
}

// Update merges a partial patch into the task, refreshes updatedAt, and
// enforces the completedAt invariant: entering done stamps completedAt
// (unless already set), leaving done clears it.
//
// Status and priority only accept enum values; title, status, and
// priority are never clearable, so an explicit null on them reads as
// absent. The clearable fields (tags, hours, project, schedule, result)
// keep their null-clears semantics.
func (s *Store) Update(id string, p domain.TaskPatch) (domain.Task, error) {
	if status, ok := p.Status.Get(); ok && !status.IsValid() {
		return domain.Task{}, warroomerrors.Wrapf(warroomerrors.ErrInvalidStatus, "%q", status)
	}
	if priority, ok := p.Priority.Get(); ok && !priority.IsValid() {
		return domain.Task{}, warroomerrors.Wrapf(warroomerrors.ErrInvalidPriority, "%q", priority)
	}

	return s.mutate(id, func(t *domain.Task) error {
		wasDone := t.Status == domain.TaskStatusDone

		if title, ok := p.Title.Get(); ok {
			t.Title = title
		}
		p.Description.Apply(&t.Description)
		if priority, ok := p.Priority.Get(); ok {
			t.Priority = priority
		}
		if status, ok := p.Status.Get(); ok {
			t.Status = status
		}
		p.Project.Apply(&t.Project)
		if tags, ok := p.Tags.Get(); ok {
			t.Tags = tags
		} else if p.Tags.IsNull() {
			t.Tags = []string{}
		}
		p.Skill.Apply(&t.Skill)
		p.Schedule.Apply(&t.Schedule)
		p.ScheduledAt.Apply(&t.ScheduledAt)
		p.Result.Apply(&t.Result)
		p.Error.Apply(&t.Error)
		p.StartedAt.Apply(&t.StartedAt)
		p.CompletedAt.Apply(&t.CompletedAt)
		applyHours(p.EstimatedHours, &t.EstimatedHours)
		applyHours(p.ActualHours, &t.ActualHours)

		if !wasDone && t.Status == domain.TaskStatusDone && t.CompletedAt == "" {
			t.CompletedAt = clock.NowRFC3339(s.clk)
		}
		if t.Status != domain.TaskStatusDone {
			t.CompletedAt = ""
		}
		return nil
	})
}

// Delete removes a task. Returns ErrTaskNotFound when no task matched.
func (s *Store) Delete(id string) error {
	_, err := s.doc.Update(func(tasks []domain.Task) ([]domain.Task, error) {
		next := make([]domain.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ID != id {
				next = append(next, t)
			}
		}
		if len(next) == len(tasks) {
			return tasks, warroomerrors.ErrTaskNotFound
		}
		return next, nil
	})
	return err
}

// Tags returns the distinct sorted set of tags in use across all tasks.
func (s *Store) Tags() []string {
	seen := map[string]struct{}{}
	for _, t := range s.doc.Read() {
		for _, tag := range t.Tags {
			seen[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// CountByProject tallies tasks per project reference. Tasks without a
// project are not counted.
func (s *Store) CountByProject() map[string]int {
	counts := map[string]int{}
	for _, t := range s.doc.Read() {
		if t.Project != "" {
			counts[t.Project]++
		}
	}
	return counts
}

// HasProject reports whether any task references the given project.
func (s *Store) HasProject(projectID string) bool {
	for _, t := range s.doc.Read() {
		if t.Project == projectID {
			return true
		}
	}
	return false
}

// CompletionsByDay groups completed task titles by the YYYY-MM-DD day of
// their completedAt timestamp, for the calendar view.
func (s *Store) CompletionsByDay() map[string][]string {
	days := map[string][]string{}
	for _, t := range s.doc.Read() {
		if len(t.CompletedAt) < 10 {
			continue
		}
		day := t.CompletedAt[:10]
		days[day] = append(days[day], t.Title)
	}
	return days
}

// StatusCounts returns the number of in-progress and todo tasks, for
// the overview stats widget.
func (s *Store) StatusCounts() (inProgress, todo int) {
	for _, t := range s.doc.Read() {
		switch t.Status {
		case domain.TaskStatusInProgress:
			inProgress++
		case domain.TaskStatusTodo:
			todo++
		}
	}
	return inProgress, todo
}

// mutate applies fn to the task with the given ID inside the family
// lock and refreshes updatedAt. When the ID does not exist, or fn
// returns an error, nothing is written.
func (s *Store) mutate(id string, fn func(*domain.Task) error) (domain.Task, error) {
	var out domain.Task
	_, err := s.doc.Update(func(tasks []domain.Task) ([]domain.Task, error) {
		for i := range tasks {
			if tasks[i].ID != id {
				continue
			}
			if err := fn(&tasks[i]); err != nil {
				return tasks, err
			}
			tasks[i].UpdatedAt = clock.NowRFC3339(s.clk)
			out = tasks[i]
			return tasks, nil
		}
		return tasks, warroomerrors.ErrTaskNotFound
	})
	if err != nil {
		return domain.Task{}, err
	}
	return out, nil
}

// applyHours maps tri-state hour patches onto the pointer-typed fields:
// a value replaces, an explicit null unsets, absent leaves unchanged.
func applyHours(f patch.Field[float64], dst **float64) {
	if v, ok := f.Get(); ok {
		*dst = &v
		return
	}
	if f.IsNull() {
		*dst = nil
	}
}
