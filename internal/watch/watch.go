// Package watch re-runs generation when one of its input files changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce absorbs the burst of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a function whenever a watched file is written, created or
// renamed into place.
type Watcher struct {
	log      zerolog.Logger
	debounce time.Duration
	files    map[string]bool
	bases    map[string]bool
}

// New creates a Watcher for the given files.
func New(files []string, log zerolog.Logger) (*Watcher, error) {
	w := &Watcher{
		log:      log,
		debounce: DefaultDebounce,
	}

	if err := w.setFiles(files); err != nil {
		return nil, err
	}

	return w, nil
}

// setFiles replaces the set of watched files.
func (w *Watcher) setFiles(files []string) error {
	abs := make(map[string]bool, len(files))
	bases := make(map[string]bool, len(files))

	for _, f := range files {
		p, err := filepath.Abs(f)
		if err != nil {
			return err
		}

		abs[p] = true
		bases[filepath.Base(p)] = true
	}

	w.files, w.bases = abs, bases

	return nil
}

// watchDirs adds the directories of the watched files that are not in dirs
// yet. Watching directories is more reliable than single files across
// editors.
func (w *Watcher) watchDirs(fsw *fsnotify.Watcher, dirs map[string]bool) error {
	for f := range w.files {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}

		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}

		dirs[dir] = true
	}

	return nil
}

// shouldReload reports whether an fsnotify event concerns a watched file.
func (w *Watcher) shouldReload(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}

	name := filepath.Clean(event.Name)
	if abs, err := filepath.Abs(name); err == nil && w.files[abs] {
		return true
	}

	// Some editors write via temp + rename, resulting in partial paths.
	return w.bases[filepath.Base(name)]
}

// ChangeFunc is called after a burst of changes. It returns the files to
// watch from now on, or nil to keep the current set.
type ChangeFunc func(ctx context.Context) (files []string, err error)

// Run watches the directories of the watched files and calls onChange after
// each burst of changes. It returns when ctx is canceled. Errors from
// onChange are logged and do not stop watching.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close() //nolint:errcheck

	dirs := make(map[string]bool)
	if err := w.watchDirs(fsw, dirs); err != nil {
		return err
	}

	w.log.Info().Int("files", len(w.files)).Int("dirs", len(dirs)).Msg("watching for changes")

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if !w.shouldReload(event) {
				continue
			}

			w.log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer, timerC = nil, nil

			files, err := onChange(ctx)
			if err != nil {
				w.log.Error().Err(err).Msg("regeneration failed")
			}

			if files == nil {
				continue
			}

			if err := w.setFiles(files); err != nil {
				w.log.Warn().Err(err).Msg("keeping previous watch list")
				continue
			}

			if err := w.watchDirs(fsw, dirs); err != nil {
				w.log.Warn().Err(err).Msg("watching new input directory")
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}
