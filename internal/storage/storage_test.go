package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	_, ok, err := s.Get("profile:x")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put("profile:x", []byte(`{"name":"Amina"}`)))
	got, ok, err := s.Get("profile:x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Amina"}`, string(got))

	require.NoError(t, s.Delete("profile:x"))
	_, ok, err = s.Get("profile:x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	value := []byte("original")
	require.NoError(t, s.Put("k", value))

	value[0] = 'X'
	got, _, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := "profile:install-" + strconv.Itoa(n%2)
				assert.NoError(t, s.Put(key, []byte(strconv.Itoa(j))))
				_, _, err := s.Get(key)
				assert.NoError(t, err)
				if j%10 == 0 {
					assert.NoError(t, s.Delete(key))
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, ok, err := s.Get("appointments:install-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put("appointments:install-1", []byte(`[]`)))
	got, ok, err := s.Get("appointments:install-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(got))

	// Keys with separators map to safe file names.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "appointments_install-1.json", entries[0].Name())

	require.NoError(t, s.Delete("appointments:install-1"))
	_, ok, err = s.Get("appointments:install-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreDeleteMissingKeyIsNoError(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, s.Delete("never-written"))
}

func TestFileStoreOverwriteReplacesBlob(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Put("k", []byte("one")))
	require.NoError(t, s.Put("k", []byte("two")))

	got, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", string(got))

	// No temp files left behind after the rename.
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
