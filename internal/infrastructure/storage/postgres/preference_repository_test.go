package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// Runs against a real database only when PROJECTX_TEST_DATABASE_URI is set.
func TestPreferenceRepository_GetSet(t *testing.T) {
	uri := os.Getenv("PROJECTX_TEST_DATABASE_URI")
	if uri == "" {
		t.Skip("PROJECTX_TEST_DATABASE_URI not set")
	}
	ctx := context.Background()

	s, err := New(ctx, uri, "../../../../migrations/postgres", slog.Default())
	require.NoError(t, err)
	defer s.Close()

	key := "test:" + t.Name()
	_, err = s.Pool().Exec(ctx, `DELETE FROM preferences WHERE key = $1`, key)
	require.NoError(t, err)

	_, found, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, key, []byte(`[{"title":"a"}]`)))
	require.NoError(t, s.Set(ctx, key, []byte(`[]`)))

	value, found, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[]`), value)
}
