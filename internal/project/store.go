// Package project provides the project document family: named task
// groupings with display ordering and a referential-integrity guard on
// deletion.
package project

import (
	"path/filepath"
	"sort"

	"github.com/mrz1836/warroom/internal/constants"
	"github.com/mrz1836/warroom/internal/docstore"
	"github.com/mrz1836/warroom/internal/domain"
	warroomerrors "github.com/mrz1836/warroom/internal/errors"
)

// TaskCounter is the view of the task store the project store needs:
// per-project tallies for listing and a reference check for deletion.
type TaskCounter interface {
	CountByProject() map[string]int
	HasProject(projectID string) bool
}

// Store provides access to the project document family.
type Store struct {
	doc   *docstore.Document[[]domain.Project]
	tasks TaskCounter
}

// NewStore creates a project store persisting under dataDir. tasks
// supplies cross-family task counts.
func NewStore(dataDir string, tasks TaskCounter) *Store {
	return &Store{
		doc: docstore.New(filepath.Join(dataDir, constants.ProjectsFile), func() []domain.Project {
			return []domain.Project{}
		}),
		tasks: tasks,
	}
}

// List returns all projects sorted by display order, each decorated
// with its referencing-task count.
func (s *Store) List() []domain.ProjectWithCount {
	projects := s.doc.Read()
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Order < projects[j].Order
	})

	counts := s.tasks.CountByProject()
	out := make([]domain.ProjectWithCount, 0, len(projects))
	for _, p := range projects {
		out = append(out, domain.ProjectWithCount{Project: p, TaskCount: counts[p.ID]})
	}
	return out
}

// Get retrieves a project by ID.
func (s *Store) Get(id string) (domain.Project, error) {
	for _, p := range s.doc.Read() {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, warroomerrors.ErrProjectNotFound
}

// Create appends a new project. The ID is caller-supplied and must be
// unique; a duplicate returns ErrProjectExists.
func (s *Store) Create(req domain.ProjectCreate) (domain.Project, error) {
	p := domain.Project{
		ID:          req.ID,
		Name:        req.Name,
		Icon:        req.Icon,
		Color:       req.Color,
		Description: req.Description,
		Status:      req.Status,
		Order:       req.Order,
	}
	if p.Status == "" {
		p.Status = domain.ProjectStatusActive
	}

	_, err := s.doc.Update(func(projects []domain.Project) ([]domain.Project, error) {
		for _, existing := range projects {
			if existing.ID == p.ID {
				return projects, warroomerrors.ErrProjectExists
			}
		}
		return append(projects, p), nil
	})
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

// Update merges a partial patch into the project.
func (s *Store) Update(id string, patch domain.ProjectPatch) (domain.Project, error) {
	var out domain.Project
	_, err := s.doc.Update(func(projects []domain.Project) ([]domain.Project, error) {
		for i := range projects {
			if projects[i].ID != id {
				continue
			}
			p := &projects[i]
			patch.Name.Apply(&p.Name)
			patch.Icon.Apply(&p.Icon)
			patch.Color.Apply(&p.Color)
			patch.Description.Apply(&p.Description)
			if status, ok := patch.Status.Get(); ok {
				if !status.IsValid() {
					return projects, warroomerrors.ErrInvalidStatus
				}
				p.Status = status
			}
			patch.Order.Apply(&p.Order)
			out = *p
			return projects, nil
		}
		return projects, warroomerrors.ErrProjectNotFound
	})
	if err != nil {
		return domain.Project{}, err
	}
	return out, nil
}

// Delete removes a project. A project still referenced by any task is
// protected: callers must reassign or delete those tasks first.
//
// The task check runs outside the task family's lock, so a concurrent
// task creation can slip past it. Treated as acceptable: the dangling
// reference only affects filtering and counts, never task integrity.
func (s *Store) Delete(id string) error {
	if s.tasks.HasProject(id) {
		return warroomerrors.ErrProjectHasTasks
	}
	_, err := s.doc.Update(func(projects []domain.Project) ([]domain.Project, error) {
		next := make([]domain.Project, 0, len(projects))
		for _, p := range projects {
			if p.ID != id {
				next = append(next, p)
			}
		}
		if len(next) == len(projects) {
			return projects, warroomerrors.ErrProjectNotFound
		}
		return next, nil
	})
	return err
}
