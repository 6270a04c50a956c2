// Package watcher provides live reload for the jumpline configuration file.
//
// The watcher monitors the directory containing the config file (editors
// typically replace files on save, which would drop a direct file watch) and
// invokes a handler after changes, debounced to coalesce rapid writes.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed indicates an operation on a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// DefaultDebounce is the default settle time after a change.
const DefaultDebounce = 200 * time.Millisecond

// Handler is called with the config file path after a debounced change.
type Handler func(path string)

// Watcher monitors one configuration file for changes.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	path     string
	handler  Handler
	debounce time.Duration

	timer  *time.Timer
	closed bool
	done   chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the settle time after a change.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// New starts watching path and calls handler after each debounced change.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     absPath,
		handler:  handler,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)
	return w.fsw.Close()
}

// loop consumes fsnotify events until the watcher is closed.
func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.schedule()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next successful event
			// still triggers a reload.
		}
	}
}

// relevant reports whether the event concerns the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(ev.Name) == w.path
}

// schedule arms the debounce timer, replacing any pending one.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()
		if !closed && w.handler != nil {
			w.handler(w.path)
		}
	})
}
