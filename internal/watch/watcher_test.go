package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) onChange(_ context.Context, changed []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, changed)
	return nil
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func startWatcher(t *testing.T, dir string, rec *recorder) {
	t.Helper()
	w, err := New(Config{Dir: dir, Debounce: 50 * time.Millisecond, OnChange: rec.onChange})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
}

func TestWatcher_CoalescesChanges(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	startWatcher(t, dir, rec)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.adoc"), []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.adoc"), []byte("b"), 0o600))

	require.Eventually(t, func() bool { return len(rec.snapshot()) > 0 }, 3*time.Second, 20*time.Millisecond)
	first := rec.snapshot()[0]
	assert.Contains(t, first, "a.adoc")
	assert.Contains(t, first, "b.adoc")
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	startWatcher(t, dir, rec)

	sub := filepath.Join(dir, "json")
	require.NoError(t, os.Mkdir(sub, 0o750))
	require.Eventually(t, func() bool { return len(rec.snapshot()) > 0 }, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.adoc"), []byte("c"), 0o600))
	require.Eventually(t, func() bool {
		for _, call := range rec.snapshot() {
			for _, p := range call {
				if p == "json/c.adoc" {
					return true
				}
			}
		}
		return false
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatcher_IgnoresHiddenFiles(t *testing.T) {
	assert.True(t, ignored("/x/.git"))
	assert.True(t, ignored("/x/a.adoc~"))
	assert.True(t, ignored("/x/.a.adoc.swp"))
	assert.False(t, ignored("/x/a.adoc"))
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(Config{Dir: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}
