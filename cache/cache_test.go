package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmgrid/cache"
)

func TestStore_InMemory(t *testing.T) {
	s, err := cache.Open(cache.Options{InMemory: true})
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(2)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Put(2, 5.0/7.0))
	r, ok, err := s.Get(2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5.0/7.0, r, "stored bit-exact")

	require.NoError(t, s.Put(2, 1))
	r, _, err = s.Get(2)
	require.NoError(t, err)
	require.Equal(t, 1.0, r)
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	s, err := cache.Open(cache.Options{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Put(3, 331.0/495.0))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	s, err = cache.Open(cache.Options{Dir: dir})
	require.NoError(t, err)
	defer s.Close()
	r, ok, err := s.Get(3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 331.0/495.0, r)
}
