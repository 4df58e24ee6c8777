package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/warroom/internal/domain"
	warroomerrors "github.com/mrz1836/warroom/internal/errors"
	"github.com/mrz1836/warroom/internal/patch"
)

// stubCounter fakes the task-store view with fixed per-project counts.
type stubCounter struct {
	counts map[string]int
}

func (s stubCounter) CountByProject() map[string]int { return s.counts }

func (s stubCounter) HasProject(id string) bool { return s.counts[id] > 0 }

func newTestStore(t *testing.T, counts map[string]int) *Store {
	t.Helper()
	return NewStore(t.TempDir(), stubCounter{counts: counts})
}

func TestStore_Create(t *testing.T) {
	t.Run("defaults status to active", func(t *testing.T) {
		store := newTestStore(t, nil)

		created, err := store.Create(domain.ProjectCreate{ID: "infra", Name: "Infrastructure"})
		require.NoError(t, err)

		assert.Equal(t, "infra", created.ID)
		assert.Equal(t, domain.ProjectStatusActive, created.Status)
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		store := newTestStore(t, nil)

		_, err := store.Create(domain.ProjectCreate{ID: "infra", Name: "Infrastructure"})
		require.NoError(t, err)

		_, err = store.Create(domain.ProjectCreate{ID: "infra", Name: "Other"})
		assert.ErrorIs(t, err, warroomerrors.ErrProjectExists)

		// The duplicate attempt must not have touched the original.
		got, err := store.Get("infra")
		require.NoError(t, err)
		assert.Equal(t, "Infrastructure", got.Name)
	})
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t, map[string]int{"writing": 3})

	_, err := store.Create(domain.ProjectCreate{ID: "writing", Name: "Writing", Order: 2})
	require.NoError(t, err)
	_, err = store.Create(domain.ProjectCreate{ID: "infra", Name: "Infrastructure", Order: 1})
	require.NoError(t, err)

	got := store.List()
	require.Len(t, got, 2)

	assert.Equal(t, "infra", got[0].ID, "lower order sorts first")
	assert.Equal(t, 0, got[0].TaskCount)
	assert.Equal(t, "writing", got[1].ID)
	assert.Equal(t, 3, got[1].TaskCount)
}

func TestStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t, nil)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, warroomerrors.ErrProjectNotFound)
}

func TestStore_Update(t *testing.T) {
	t.Run("applies set fields only", func(t *testing.T) {
		store := newTestStore(t, nil)
		_, err := store.Create(domain.ProjectCreate{ID: "infra", Name: "Infrastructure", Icon: "🔧"})
		require.NoError(t, err)

		got, err := store.Update("infra", domain.ProjectPatch{
			Name:   patch.Of("Platform"),
			Status: patch.Of(domain.ProjectStatusPaused),
		})
		require.NoError(t, err)

		assert.Equal(t, "Platform", got.Name)
		assert.Equal(t, domain.ProjectStatusPaused, got.Status)
		assert.Equal(t, "🔧", got.Icon)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		store := newTestStore(t, nil)
		_, err := store.Create(domain.ProjectCreate{ID: "infra", Name: "Infrastructure"})
		require.NoError(t, err)

		_, err = store.Update("infra", domain.ProjectPatch{Status: patch.Of(domain.ProjectStatus("zombie"))})
		assert.ErrorIs(t, err, warroomerrors.ErrInvalidStatus)
	})

	t.Run("unknown id", func(t *testing.T) {
		store := newTestStore(t, nil)
		_, err := store.Update("missing", domain.ProjectPatch{Name: patch.Of("x")})
		assert.ErrorIs(t, err, warroomerrors.ErrProjectNotFound)
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("removes unreferenced project", func(t *testing.T) {
		store := newTestStore(t, nil)
		_, err := store.Create(domain.ProjectCreate{ID: "infra", Name: "Infrastructure"})
		require.NoError(t, err)

		require.NoError(t, store.Delete("infra"))

		_, err = store.Get("infra")
		assert.ErrorIs(t, err, warroomerrors.ErrProjectNotFound)
	})

	t.Run("protects referenced project", func(t *testing.T) {
		store := newTestStore(t, map[string]int{"infra": 1})
		_, err := store.Create(domain.ProjectCreate{ID: "infra", Name: "Infrastructure"})
		require.NoError(t, err)

		err = store.Delete("infra")
		assert.ErrorIs(t, err, warroomerrors.ErrProjectHasTasks)

		_, err = store.Get("infra")
		assert.NoError(t, err, "project must survive the rejected delete")
	})

	t.Run("unknown id", func(t *testing.T) {
		store := newTestStore(t, nil)
		assert.ErrorIs(t, store.Delete("missing"), warroomerrors.ErrProjectNotFound)
	})
}
