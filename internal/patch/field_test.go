package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title   Field[string]  `json:"title"`
	Hours   Field[float64] `json:"hours"`
	Tags    Field[[]string] `json:"tags"`
	Project Field[string]  `json:"project"`
}

func TestField_UnmarshalStates(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Ship report","project":null}`), &p))

	// Present with value.
	v, ok := p.Title.Get()
	assert.True(t, ok)
	assert.Equal(t, "Ship report", v)

	// Present with explicit null.
	assert.True(t, p.Project.IsSet())
	assert.True(t, p.Project.IsNull())
	_, ok = p.Project.Get()
	assert.False(t, ok)

	// Absent.
	assert.False(t, p.Hours.IsSet())
	assert.False(t, p.Tags.IsSet())
}

func TestField_Apply(t *testing.T) {
	t.Run("value replaces destination", func(t *testing.T) {
		dst := "old"
		Of("new").Apply(&dst)
		assert.Equal(t, "new", dst)
	})

	t.Run("null clears destination", func(t *testing.T) {
		dst := "old"
		Null[string]().Apply(&dst)
		assert.Empty(t, dst)
	})

	t.Run("absent leaves destination unchanged", func(t *testing.T) {
		dst := "old"
		var f Field[string]
		f.Apply(&dst)
		assert.Equal(t, "old", dst)
	})
}

func TestField_UnmarshalTypeMismatch(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"hours":"not-a-number"}`), &p)
	require.Error(t, err)
}

func TestField_SliceValue(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"tags":["ops","infra"]}`), &p))

	v, ok := p.Tags.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"ops", "infra"}, v)
}
