package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/minio/highwayhash"

	"github.com/milcktoast/sketchy"
)

var fingerprintKey = []byte("sketchy-structures-config-digest")

// Fingerprint returns a content hash of a configuration file's bytes.
func Fingerprint(data []byte) (uint64, error) {
	h, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	_, err = h.Write(data)
	return h.Sum64(), err
}

// DefaultDebounce is how long Watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a local configuration file whenever it changes on disk.
//
// Events are debounced, files whose content hash is unchanged are ignored
// and files that fail to parse are logged and skipped, so Changes only
// delivers valid, new configurations.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce time.Duration
	last     uint64
	changes  chan *File
	done     chan struct{}
}

// Watch starts watching the local file at path. The initial content is
// fingerprinted but not delivered. The watcher stops when ctx is done or
// Close is called.
func Watch(ctx context.Context, path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	last, err := Fingerprint(data)
	if err != nil {
		return nil, fmt.Errorf("config: fingerprint %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create file watcher: %w", err)
	}
	// Watch the directory so atomic saves (rename over) are seen.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     path,
		fs:       fw,
		debounce: debounce,
		last:     last,
		changes:  make(chan *File),
		done:     make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

// Changes delivers each new valid configuration. It is closed when the
// watcher stops.
func (w *Watcher) Changes() <-chan *File {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	return w.fs.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.changes)

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				settle = time.After(w.debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			sketchy.Logger().Warn("config: file watcher error", "err", err)

		case <-settle:
			settle = nil
			f := w.reload()
			if f == nil {
				continue
			}
			select {
			case w.changes <- f:
			case <-ctx.Done():
				return
			case <-w.done:
				return
			}
		}
	}
}

// reload reads the file and returns it when its content changed and is
// valid; otherwise it returns nil.
func (w *Watcher) reload() *File {
	log := sketchy.Logger()

	data, err := os.ReadFile(w.path)
	if err != nil {
		log.Warn("config: reload failed", "path", w.path, "err", err)
		return nil
	}
	sum, err := Fingerprint(data)
	if err != nil {
		log.Warn("config: fingerprint failed", "path", w.path, "err", err)
		return nil
	}
	if sum == w.last {
		log.Debug("config: content unchanged", "path", w.path)
		return nil
	}

	f, err := Parse(data)
	if err != nil {
		log.Warn("config: invalid configuration, keeping current", "path", w.path, "err", err)
		return nil
	}
	w.last = sum
	log.Info("config: reloaded", "path", w.path)
	return f
}
