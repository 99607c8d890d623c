package share

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibevox/pkg/db"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	d, err := db.Init(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return NewStore(d, 1000, 1000)
}

func TestSaveAndLoad(t *testing.T) {
	s := testStore(t)

	id, err := s.Save("hello world", "like a pirate", "alloy")
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err, "share id should be a valid uuid")

	e, err := s.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "hello world", e.Input)
	assert.Equal(t, "like a pirate", e.Prompt)
	assert.Equal(t, "alloy", e.Voice)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestLoadUnknownID(t *testing.T) {
	s := testStore(t)

	_, err := s.Load(uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveClipsOversizedInput(t *testing.T) {
	s := testStore(t)

	id, err := s.Save(strings.Repeat("a", 3000), strings.Repeat("b", 3000), "alloy")
	require.NoError(t, err)

	e, err := s.Load(id)
	require.NoError(t, err)
	assert.Len(t, e.Input, 1000)
	assert.Len(t, e.Prompt, 1000)
}
