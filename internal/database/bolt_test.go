package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BoltKVStore {
	t.Helper()

	s, err := NewBoltKVStore(filepath.Join(t.TempDir(), "test.db"), "snapshots")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, s.Close())
	})

	return s
}

func TestBoltKVStoreReadUpdateDelete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	data, err := s.ReadKey([]byte("missing"))
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, s.UpdateKey([]byte("hi"), []byte(`{"Created":1}`)))
	data, err = s.ReadKey([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"Created":1}`), data)

	require.NoError(t, s.UpdateKey([]byte("hi"), []byte(`{"Created":2}`)))
	data, err = s.ReadKey([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"Created":2}`), data)

	require.NoError(t, s.DeleteKey([]byte("hi")))
	require.NoError(t, s.DeleteKey([]byte("hi")))
	data, err = s.ReadKey([]byte("hi"))
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestBoltKVStoreForEach(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.UpdateKey([]byte("co/b"), []byte("2")))
	require.NoError(t, s.UpdateKey([]byte("co/a"), []byte("1")))
	require.NoError(t, s.UpdateKey([]byte("hi"), []byte("3")))

	var keys, values []string
	require.NoError(t, s.ForEach(func(key []byte, data []byte) error {
		keys = append(keys, string(key))
		values = append(values, string(data))
		return nil
	}))
	assert.Equal(t, []string{"co/a", "co/b", "hi"}, keys)
	assert.Equal(t, []string{"1", "2", "3"}, values)

	stop := errors.New("stop")
	var visited int
	err := s.ForEach(func(key []byte, data []byte) error {
		visited++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, visited)
}

func TestBoltKVStoreReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.db")
	s, err := NewBoltKVStore(path, "snapshots")
	require.NoError(t, err)
	require.NoError(t, s.UpdateKey([]byte("hi"), []byte("persisted")))
	require.NoError(t, s.Close())

	s, err = NewBoltKVStore(path, "snapshots")
	require.NoError(t, err)
	defer s.Close()

	data, err := s.ReadKey([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), data)
}
