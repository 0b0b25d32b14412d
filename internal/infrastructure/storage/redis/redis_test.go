package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidURL(t *testing.T) {
	_, err := New(context.Background(), "http://localhost:6379", "")
	assert.Error(t, err)
}

func TestStorage_Prefix(t *testing.T) {
	s := NewWithClient(nil, "")
	assert.Equal(t, "projectx:Notes", s.key("Notes"))

	s = NewWithClient(nil, "ws1/")
	assert.Equal(t, "ws1/Notes", s.key("Notes"))
}

// Runs against a real server only when PROJECTX_TEST_REDIS_URL is set.
func TestStorage_GetSet(t *testing.T) {
	url := os.Getenv("PROJECTX_TEST_REDIS_URL")
	if url == "" {
		t.Skip("PROJECTX_TEST_REDIS_URL not set")
	}
	ctx := context.Background()

	s, err := New(ctx, url, "projectx-test:")
	require.NoError(t, err)
	defer s.Close()

	key := t.Name()
	require.NoError(t, s.rdb.Del(ctx, s.key(key)).Err())

	_, found, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, key, []byte(`[1]`)))
	value, found, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[1]`), value)
}
