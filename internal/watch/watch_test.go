package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "de.yaml")

	w, err := New([]string{path}, zerolog.Nop())
	require.NoError(t, err)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "write", event: fsnotify.Event{Name: path, Op: fsnotify.Write}, want: true},
		{name: "create", event: fsnotify.Event{Name: path, Op: fsnotify.Create}, want: true},
		{name: "rename into place", event: fsnotify.Event{Name: "de.yaml", Op: fsnotify.Rename}, want: true},
		{name: "chmod", event: fsnotify.Event{Name: path, Op: fsnotify.Chmod}, want: false},
		{name: "remove", event: fsnotify.Event{Name: path, Op: fsnotify.Remove}, want: false},
		{name: "other file", event: fsnotify.Event{Name: filepath.Join(dir, "fr.yaml"), Op: fsnotify.Write}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.shouldReload(tt.event))
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codepoints.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: A\n"), 0o644))

	w, err := New([]string{path}, zerolog.Nop())
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx, func(context.Context) ([]string, error) {
			calls <- struct{}{}
			return nil, nil
		})
	}()

	// Keep touching the file until the watcher is up and reacts.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

loop:
	for {
		select {
		case <-calls:
			break loop
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte("a: A\nb: B\n"), 0o644))
		case <-deadline:
			t.Fatal("onChange was not called")
		}
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ReplacesWatchedFiles(t *testing.T) {
	first := filepath.Join(t.TempDir(), "keys.yaml")
	second := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(first, []byte("keys: {}\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("keys: {}\n"), 0o644))

	w, err := New([]string{first}, zerolog.Nop())
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	done := make(chan error, 1)

	go func() {
		// After the first change only the second file is an input.
		done <- w.Run(ctx, func(context.Context) ([]string, error) {
			calls <- struct{}{}
			return []string{second}, nil
		})
	}()

	touchUntilCalled := func(path string) {
		deadline := time.After(5 * time.Second)
		tick := time.NewTicker(50 * time.Millisecond)
		defer tick.Stop()

		for {
			select {
			case <-calls:
				return
			case <-tick.C:
				require.NoError(t, os.WriteFile(path, []byte("keys: {A: {page: 7, id: 4}}\n"), 0o644))
			case <-deadline:
				t.Fatalf("onChange was not called after writing %s", path)
			}
		}
	}

	touchUntilCalled(first)
	touchUntilCalled(second)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSetFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := New([]string{filepath.Join(dir, "de.yaml")}, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, w.setFiles([]string{filepath.Join(dir, "fr.yaml")}))

	assert.False(t, w.shouldReload(fsnotify.Event{Name: filepath.Join(dir, "de.yaml"), Op: fsnotify.Write}))
	assert.True(t, w.shouldReload(fsnotify.Event{Name: filepath.Join(dir, "fr.yaml"), Op: fsnotify.Write}))
}
