package task

import (
	"github.com/mrz1836/warroom/internal/clock"
	"github.com/mrz1836/warroom/internal/domain"
	warroomerrors "github.com/mrz1836/warroom/internal/errors"
)

// References returns the reference list attached to a task.
func (s *Store) References(taskID string) (domain.ReferenceList, error) {
	t, err := s.Get(taskID)
	if err != nil {
		return nil, err
	}
	return t.References, nil
}

// AddReference appends a reference to a task. An empty type is
// inferred from the URL.
func (s *Store) AddReference(taskID string, payload domain.ReferenceCreate) (domain.Reference, error) {
	refType := payload.Type
	if refType == "" {
		refType = domain.DetectReferenceType(payload.URL)
	}
	ref := domain.Reference{
		ID:        domain.NewID(),
		Title:     payload.Title,
		URL:       payload.URL,
		Type:      refType,
		CreatedAt: clock.NowRFC3339(s.clk),
	}
	_, err := s.mutate(taskID, func(t *domain.Task) error {
		t.References = append(t.References, ref)
		return nil
	})
	if err != nil {
		return domain.Reference{}, err
	}
	return ref, nil
}

// DeleteReference removes a reference by id. A missing reference
// leaves the task untouched.
func (s *Store) DeleteReference(taskID, refID string) error {
	_, err := s.mutate(taskID, func(t *domain.Task) error {
		next := make(domain.ReferenceList, 0, len(t.References))
		found := false
		for _, r := range t.References {
			if r.ID == refID {
				found = true
				continue
			}
			next = append(next, r)
		}
		if !found {
			return warroomerrors.ErrReferenceNotFound
		}
		t.References = next
		return nil
	})
	return err
}
