package selstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stripkit/internal/strip"
)

var _ strip.Binding = (*Binding)(nil)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.sqlite")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStore_LoadMissing(t *testing.T) {
	s, _ := openTemp(t)

	idx, ok, err := s.Load("sections")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, idx)
}

func TestStore_SaveOverwrites(t *testing.T) {
	s, _ := openTemp(t)

	require.NoError(t, s.Save("sections", 2))
	require.NoError(t, s.Save("sections", 4))
	require.NoError(t, s.Save("other", 1))

	idx, ok, err := s.Load("sections")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, idx)
}

func TestStore_EmptyKey(t *testing.T) {
	s, _ := openTemp(t)

	_, _, err := s.Load("")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, s.Save("", 1), ErrEmptyKey)
}

func TestBinding_WritesThroughAndSurvivesReopen(t *testing.T) {
	s, path := openTemp(t)

	b, err := s.Binding("sections", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Get(), "fallback when nothing saved")

	b.Set(3)
	assert.Equal(t, 3, b.Get())
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	b2, err := reopened.Binding("sections", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, b2.Get())
}

func TestBinding_DrivesStrip(t *testing.T) {
	s, _ := openTemp(t)
	b, err := s.Binding("tabs", 0)
	require.NoError(t, err)

	m := strip.New([]string{"A", "B", "C"}, b, func(item string, _ int) string { return item }, strip.DefaultConfig[string]())
	m.Tap(2)

	idx, ok, err := s.Load("tabs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}
