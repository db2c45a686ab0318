package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint([]byte("division: {amount: 4}"))
	require.NoError(t, err)
	b, err := Fingerprint([]byte("division: {amount: 4}"))
	require.NoError(t, err)
	c, err := Fingerprint([]byte("division: {amount: 5}"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestWatchDeliversChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketchy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("division: {amount: 4}\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	// An invalid file is skipped; the next valid one is delivered.
	require.NoError(t, os.WriteFile(path, []byte("division: {amount: 0}\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("division: {amount: 7}\n"), 0o644))

	select {
	case f, ok := <-w.Changes():
		require.True(t, ok, "changes closed early")
		assert.Equal(t, 7.0, f.Division.Amount)
	case <-time.After(5 * time.Second):
		t.Fatal("no configuration delivered")
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketchy.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	w, err := Watch(ctx, path, 0)
	require.NoError(t, err)
	defer w.Close()

	cancel()
	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchMissingFile(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), 0)
	assert.Error(t, err)
}
