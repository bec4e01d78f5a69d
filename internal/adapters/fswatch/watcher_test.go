package fswatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/bowltrack/pkg/log"
)

func TestTargetMatches(t *testing.T) {
	dir := t.TempDir()
	file := FileTarget(filepath.Join(dir, "bowltrack.db"))

	assert.True(t, file.matches(filepath.Join(dir, "bowltrack.db")))
	assert.True(t, file.matches(filepath.Join(dir, "bowltrack.db-wal")))
	assert.False(t, file.matches(filepath.Join(dir, "other.db")))
	assert.False(t, file.matches(filepath.Join(dir, "sub", "bowltrack.db")))

	all := DirTarget(dir)
	assert.True(t, all.matches(filepath.Join(dir, "2024-01-02.json")))
	assert.False(t, all.matches(filepath.Join(dir, "2024-01-02.json.tmp")))
}

func TestWatcherReportsDebouncedChange(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(log.NewNoopLogger(), 20*time.Millisecond, DirTarget(dir))
	changes, err := w.Changes(ctx)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-01-02.json"), []byte("{}"), 0o644))
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case _, ok := <-changes:
		for ok {
			_, ok = <-changes
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	w := New(log.NewNoopLogger(), 0, DirTarget(filepath.Join(t.TempDir(), "missing")))
	_, err := w.Changes(context.Background())
	assert.Error(t, err)
}
