package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBoltStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put("favorites", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Close())

	s, err = NewBoltStore(dir)
	require.NoError(t, err)
	defer s.Close()

	got, ok := s.Get("favorites")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(got))
}

func TestBoltStore_MissingKey(t *testing.T) {
	s, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestBoltStore_PutOverwrites(t *testing.T) {
	s, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("k", []byte("one")))
	_, _ = s.Get("k") // promote to cache
	require.NoError(t, s.Put("k", []byte("two")))

	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "two", string(got))
}

func TestBoltStore_Delete(t *testing.T) {
	s, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("k", []byte("v")))
	require.NoError(t, s.Delete("k"))
	require.NoError(t, s.Delete("k"))

	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestBoltStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Put("k", []byte("abc")))

	got, _ := s.Get("k")
	got[0] = 'X'

	again, _ := s.Get("k")
	assert.Equal(t, "abc", string(again))
}

func TestMemoryStore_EmptyDirIsMemoryOnly(t *testing.T) {
	s, err := NewBoltStore("")
	require.NoError(t, err)
	assert.Nil(t, s.db)

	require.NoError(t, s.Put("a", []byte("1")))
	require.NoError(t, s.Put("b", []byte("2")))
	for key, want := range map[string]string{"a": "1", "b": "2"} {
		got, ok := s.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, string(got))
	}
	assert.NoError(t, s.Close())
}
