package task

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/warroom/internal/domain"
	warroomerrors "github.com/mrz1836/warroom/internal/errors"
	"github.com/mrz1836/warroom/internal/patch"
)

// fixedClock returns a controllable instant for deterministic timestamps.
type fixedClock struct {
	at time.Time
}

func (c *fixedClock) Now() time.Time { return c.at }

func (c *fixedClock) advance(d time.Duration) { c.at = c.at.Add(d) }

func newTestStore(t *testing.T) (*Store, *fixedClock) {
	t.Helper()
	clk := &fixedClock{at: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewStore(t.TempDir(), clk), clk
}

func TestStore_Create(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		store, _ := newTestStore(t)

		created, err := store.Create(domain.TaskCreate{})
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Untitled", created.Title)
		assert.Equal(t, domain.TaskStatusBacklog, created.Status)
		assert.Equal(t, domain.TaskPriorityMedium, created.Priority)
		assert.Equal(t, []string{}, created.Tags)
		assert.Equal(t, domain.ReferenceList{}, created.References)
		assert.Equal(t, "2025-06-01T12:00:00Z", created.CreatedAt)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
		assert.False(t, created.PickedUp)
	})

	t.Run("keeps provided fields", func(t *testing.T) {
		store, _ := newTestStore(t)

		hours := 2.5
		created, err := store.Create(domain.TaskCreate{
			Title:          "ship release",
			Description:    "cut the tag",
			Priority:       domain.TaskPriorityUrgent,
			Status:         domain.TaskStatusTodo,
			Project:        "infra",
			Tags:           []string{"release"},
			Skill:          "git",
			Schedule:       "asap",
			EstimatedHours: &hours,
		})
		require.NoError(t, err)

		assert.Equal(t, "ship release", created.Title)
		assert.Equal(t, domain.TaskStatusTodo, created.Status)
		assert.Equal(t, domain.TaskPriorityUrgent, created.Priority)
		assert.Equal(t, "infra", created.Project)
		assert.Equal(t, []string{"release"}, created.Tags)
		require.NotNil(t, created.EstimatedHours)
		assert.InDelta(t, 2.5, *created.EstimatedHours, 0.0001)
	})

	t.Run("persists across store instances", func(t *testing.T) {
		dir := t.TempDir()
		clk := &fixedClock{at: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

		created, err := NewStore(dir, clk).Create(domain.TaskCreate{Title: "survives"})
		require.NoError(t, err)

		reopened := NewStore(dir, clk)
		got, err := reopened.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "survives", got.Title)
	})
}

func TestStore_Get_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, warroomerrors.ErrTaskNotFound)
}

func TestStore_List(t *testing.T) {
	store, _ := newTestStore(t)

	mustCreate := func(req domain.TaskCreate) domain.Task {
		t.Helper()
		created, err := store.Create(req)
		require.NoError(t, err)
		return created
	}

	a := mustCreate(domain.TaskCreate{Title: "a", Project: "alpha", Status: domain.TaskStatusTodo, Tags: []string{"ops"}})
	b := mustCreate(domain.TaskCreate{Title: "b", Priority: domain.TaskPriorityHigh})
	c := mustCreate(domain.TaskCreate{Title: "c", Project: "alpha", Tags: []string{"docs", "ops"}})

	t.Run("no filter returns everything in storage order", func(t *testing.T) {
		got := store.List(ListFilter{})
		require.Len(t, got, 3)
		assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("by project", func(t *testing.T) {
		got := store.List(ListFilter{Project: "alpha"})
		assert.Len(t, got, 2)
	})

	t.Run("untagged selects tasks without a project", func(t *testing.T) {
		got := store.List(ListFilter{Project: FilterUntagged})
		require.Len(t, got, 1)
		assert.Equal(t, b.ID, got[0].ID)
	})

	t.Run("by status and priority", func(t *testing.T) {
		got := store.List(ListFilter{Status: "todo"})
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)

		got = store.List(ListFilter{Priority: "high"})
		require.Len(t, got, 1)
		assert.Equal(t, b.ID, got[0].ID)
	})

	t.Run("tags match any", func(t *testing.T) {
		got := store.List(ListFilter{Tags: []string{"docs", "nope"}})
		require.Len(t, got, 1)
		assert.Equal(t, c.ID, got[0].ID)
	})
}

func TestParseTagFilter(t *testing.T) {
	assert.Nil(t, ParseTagFilter(""))
	assert.Equal(t, []string{"a", "b"}, ParseTagFilter("a, b"))
	assert.Equal(t, []string{"a"}, ParseTagFilter("a,,  "))
}

func TestStore_Update(t *testing.T) {
	t.Run("applies set fields and refreshes updatedAt", func(t *testing.T) {
		store, clk := newTestStore(t)
		created, err := store.Create(domain.TaskCreate{Title: "before"})
		require.NoError(t, err)

		clk.advance(time.Minute)
		got, err := store.Update(created.ID, domain.TaskPatch{
			Title:    patch.Of("after"),
			Priority: patch.Of(domain.TaskPriorityUrgent),
		})
		require.NoError(t, err)

		assert.Equal(t, "after", got.Title)
		assert.Equal(t, domain.TaskPriorityUrgent, got.Priority)
		assert.Equal(t, "2025-06-01T12:01:00Z", got.UpdatedAt)
		assert.Equal(t, "2025-06-01T12:00:00Z", got.CreatedAt)
	})

	t.Run("absent fields stay untouched", func(t *testing.T) {
		store, _ := newTestStore(t)
		created, err := store.Create(domain.TaskCreate{Title: "keep", Project: "alpha"})
		require.NoError(t, err)

		got, err := store.Update(created.ID, domain.TaskPatch{Description: patch.Of("added")})
		require.NoError(t, err)

		assert.Equal(t, "keep", got.Title)
		assert.Equal(t, "alpha", got.Project)
	})

	t.Run("rejects status outside the enum", func(t *testing.T) {
		store, _ := newTestStore(t)
		created, err := store.Create(domain.TaskCreate{Title: "keep", Status: domain.TaskStatusTodo})
		require.NoError(t, err)

		_, err = store.Update(created.ID, domain.TaskPatch{Status: patch.Of(domain.TaskStatus("bogus"))})
		require.ErrorIs(t, err, warroomerrors.ErrInvalidStatus)

		got, err := store.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusTodo, got.Status, "rejected patch must not persist")
	})

	t.Run("rejects priority outside the enum", func(t *testing.T) {
		store, _ := newTestStore(t)
		created, err := store.Create(domain.TaskCreate{Priority: domain.TaskPriorityHigh})
		require.NoError(t, err)

		_, err = store.Update(created.ID, domain.TaskPatch{Priority: patch.Of(domain.TaskPriority("extreme"))})
		require.ErrorIs(t, err, warroomerrors.ErrInvalidPriority)

		got, err := store.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskPriorityHigh, got.Priority)
	})

	t.Run("null on title status and priority reads as absent", func(t *testing.T) {
		store, _ := newTestStore(t)
		created, err := store.Create(domain.TaskCreate{
			Title:    "keep",
			Status:   domain.TaskStatusTodo,
			Priority: domain.TaskPriorityHigh,
		})
		require.NoError(t, err)

		got, err := store.Update(created.ID, domain.TaskPatch{
			Title:    patch.Null[string](),
			Status:   patch.Null[domain.TaskStatus](),
			Priority: patch.Null[domain.TaskPriority](),
		})
		require.NoError(t, err)

		assert.Equal(t, "keep", got.Title)
		assert.Equal(t, domain.TaskStatusTodo, got.Status)
		assert.Equal(t, domain.TaskPriorityHigh, got.Priority)
	})

	t.Run("explicit null clears tags to empty slice", func(t *testing.T) {
		store, _ := newTestStore(t)
		created, err := store.Create(domain.TaskCreate{Tags: []string{"x"}})
		require.NoError(t, err)

		got, err := store.Update(created.ID, domain.TaskPatch{Tags: patch.Null[[]string]()})
		require.NoError(t, err)
		assert.Equal(t, []string{}, got.Tags)
	})

	t.Run("explicit null clears estimated hours", func(t *testing.T) {
		store, _ := newTestStore(t)
		hours := 4.0
		created, err := store.Create(domain.TaskCreate{EstimatedHours: &hours})
		require.NoError(t, err)

		got, err := store.Update(created.ID, domain.TaskPatch{EstimatedHours: patch.Null[float64]()})
		require.NoError(t, err)
		assert.Nil(t, got.EstimatedHours)
	})

	t.Run("entering done stamps completedAt", func(t *testing.T) {
		store, _ := newTestStore(t)
		created, err := store.Create(domain.TaskCreate{Status: domain.TaskStatusTodo})
		require.NoError(t, err)

		got, err := store.Update(created.ID, domain.TaskPatch{Status: patch.Of(domain.TaskStatusDone)})
		require.NoError(t, err)
		assert.Equal(t, "2025-06-01T12:00:00Z", got.CompletedAt)
	})

	t.Run("entering done keeps explicit completedAt", func(t *testing.T) {
		store, _ := newTestStore(t)
		created, err := store.Create(domain.TaskCreate{Status: domain.TaskStatusTodo})
		require.NoError(t, err)

		got, err := store.Update(created.ID, domain.TaskPatch{
			Status:      patch.Of(domain.TaskStatusDone),
			CompletedAt: patch.Of("2025-05-30T08:00:00Z"),
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-05-30T08:00:00Z", got.CompletedAt)
	})

	t.Run("leaving done clears completedAt", func(t *testing.T) {
		store, _ := newTestStore(t)
		created, err := store.Create(domain.TaskCreate{Status: domain.TaskStatusTodo})
		require.NoError(t, err)

		_, err = store.Update(created.ID, domain.TaskPatch{Status: patch.Of(domain.TaskStatusDone)})
		require.NoError(t, err)

		got, err := store.Update(created.ID, domain.TaskPatch{Status: patch.Of(domain.TaskStatusTodo)})
		require.NoError(t, err)
		assert.Empty(t, got.CompletedAt)
	})

	t.Run("unknown id", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.Update("missing", domain.TaskPatch{Title: patch.Of("x")})
		assert.ErrorIs(t, err, warroomerrors.ErrTaskNotFound)
	})
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	created, err := store.Create(domain.TaskCreate{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(created.ID))

	_, err = store.Get(created.ID)
	assert.True(t, errors.Is(err, warroomerrors.ErrTaskNotFound))

	assert.ErrorIs(t, store.Delete(created.ID), warroomerrors.ErrTaskNotFound)
}

func TestStore_Tags(t *testing.T) {
	store, _ := newTestStore(t)

	for _, tags := range [][]string{{"ops", "docs"}, {"ops"}, nil} {
		_, err := store.Create(domain.TaskCreate{Tags: tags})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"docs", "ops"}, store.Tags())
}

func TestStore_ProjectAccounting(t *testing.T) {
	store, _ := newTestStore(t)

	for _, project := range []string{"alpha", "alpha", "beta", ""} {
		_, err := store.Create(domain.TaskCreate{Project: project})
		require.NoError(t, err)
	}

	counts := store.CountByProject()
	assert.Equal(t, map[string]int{"alpha": 2, "beta": 1}, counts)

	assert.True(t, store.HasProject("alpha"))
	assert.False(t, store.HasProject("gamma"))
}

func TestStore_CompletionsByDay(t *testing.T) {
	store, clk := newTestStore(t)

	first, err := store.Create(domain.TaskCreate{Title: "one", Status: domain.TaskStatusTodo})
	require.NoError(t, err)
	second, err := store.Create(domain.TaskCreate{Title: "two", Status: domain.TaskStatusTodo})
	require.NoError(t, err)
	_, err = store.Create(domain.TaskCreate{Title: "open", Status: domain.TaskStatusTodo})
	require.NoError(t, err)

	_, err = store.Complete(first.ID, domain.TaskComplete{})
	require.NoError(t, err)

	clk.advance(24 * time.Hour)
	_, err = store.Complete(second.ID, domain.TaskComplete{})
	require.NoError(t, err)

	days := store.CompletionsByDay()
	assert.Equal(t, map[string][]string{
		"2025-06-01": {"one"},
		"2025-06-02": {"two"},
	}, days)
}

func TestStore_StatusCounts(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Create(domain.TaskCreate{Status: domain.TaskStatusTodo})
	require.NoError(t, err)
	_, err = store.Create(domain.TaskCreate{Status: domain.TaskStatusTodo})
	require.NoError(t, err)
	_, err = store.Create(domain.TaskCreate{Status: domain.TaskStatusBacklog})
	require.NoError(t, err)

	running, err := store.Create(domain.TaskCreate{Status: domain.TaskStatusTodo})
	require.NoError(t, err)
	_, err = store.Run(running.ID)
	require.NoError(t, err)

	inProgress, todo := store.StatusCounts()
	assert.Equal(t, 1, inProgress)
	assert.Equal(t, 2, todo)
}
