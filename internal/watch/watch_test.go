package watch_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LISSConsulting/LISSTech.Tabset/internal/watch"
)

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabs.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \"a\""), 0644))

	w, err := watch.New(watch.Config{Paths: []string{path}, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Rapid writes should coalesce into a single notification.
	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("title = \"%d\"", i)), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_IgnoresIrrelevantFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabs.toml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))
	require.NoError(t, os.WriteFile(other, []byte("initial"), 0644))

	w, err := watch.New(watch.Config{Paths: []string{path}, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(other, []byte("changed"), 0644))

	select {
	case <-onChange:
		t.Fatal("should not notify for unrelated files")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_PanelFile(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "tabs.toml")
	panel := filepath.Join(dir, "intro.md")
	require.NoError(t, os.WriteFile(doc, []byte(""), 0644))
	require.NoError(t, os.WriteFile(panel, []byte("# a"), 0644))

	w, err := watch.New(watch.Config{Paths: []string{doc, panel}, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(panel, []byte("# b"), 0644))

	select {
	case <-onChange:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("panel file change should notify")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := watch.DefaultConfig("tabs.toml", "intro.md")
	require.Equal(t, []string{"tabs.toml", "intro.md"}, cfg.Paths)
	require.Equal(t, 300*time.Millisecond, cfg.DebounceDur)
}
