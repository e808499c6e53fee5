package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	const debounce = 200 * time.Millisecond
	w, err := NewWatcher(path, debounce)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() error {
			changes <- struct{}{}
			return nil
		})
	}()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	for _, content := range []string{"b", "c", "d"} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	select {
	case <-changes:
	case <-ctx.Done():
		t.Fatal("no change reported")
	}

	// The three writes fall inside one debounce window.
	select {
	case <-changes:
		t.Fatal("burst of writes reported more than once")
	case <-time.After(3 * debounce):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_Run_StopsOnCallbackError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	w, err := NewWatcher(path, time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	boom := errors.New("boom")
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() error { return boom })
	}()

	require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))
	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-ctx.Done():
		t.Fatal("watcher did not stop")
	}
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "s.yaml"), time.Millisecond)
	assert.Error(t, err)
}
