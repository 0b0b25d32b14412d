package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_GetSet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	s, err := New(path)
	require.NoError(t, err)
	defer s.Close()

	_, found, err := s.Get(ctx, "Notes")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "Notes", []byte(`[{"title":"first"}]`)))
	require.NoError(t, s.Set(ctx, "Notes", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "Todos", nil))

	value, found, err := s.Get(ctx, "Notes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[]`), value)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Notes", "Todos"}, keys)
}

func TestStorage_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")
	payload := []byte{0x00, 0x01, 0xfe, 0xff}

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "Whiteboards", payload))
	require.NoError(t, s.Close())

	s, err = New(path)
	require.NoError(t, err)
	defer s.Close()

	value, found, err := s.Get(ctx, "Whiteboards")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, value)
}
