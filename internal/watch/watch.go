// Package watch reports changes to a single file.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/eglconfig"
)

// DefaultDebounce is how long Run waits for a burst of events to settle.
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher calls a function whenever one file is written or replaced.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onChange func()
	debounce time.Duration
}

// NewFileWatcher creates a watcher for path. onChange runs on the goroutine
// calling Run, once per settled burst of events.
func NewFileWatcher(path string, onChange func()) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory containing the file; editors often replace the
	// file instead of writing it in place.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &FileWatcher{
		watcher:  watcher,
		filePath: path,
		onChange: onChange,
		debounce: DefaultDebounce,
	}, nil
}

// SetDebounce changes the settle delay. Zero reports every event.
func (fw *FileWatcher) SetDebounce(d time.Duration) {
	fw.debounce = d
}

// Run delivers change notifications until ctx is done or the watcher is
// closed. It returns ctx.Err() on cancellation.
func (fw *FileWatcher) Run(ctx context.Context) error {
	log := eglconfig.Logger()
	filename := filepath.Base(fw.filePath)

	var (
		timer   *time.Timer
		settled <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}

			// Only care about our file
			if filepath.Base(event.Name) != filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			log.Debug("watch: file changed", "file", fw.filePath, "op", event.Op.String())
			if fw.debounce <= 0 {
				fw.onChange()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			settled = timer.C

		case <-settled:
			settled = nil
			fw.onChange()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch: watcher error", "error", err)
		}
	}
}

// Close stops the watcher. A running Run returns.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
