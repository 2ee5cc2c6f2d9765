// Package ftwatch notifies when the content of the shown directory changes.
package ftwatch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a single directory at a time. The callback is invoked from
// the watcher goroutine; callers must hop to their own goroutine before
// touching state.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func(dir string)
	debounce time.Duration
	logger   zerolog.Logger

	mu      sync.Mutex
	current string
	timer   *time.Timer

	done chan struct{}
	wg   sync.WaitGroup
}

type Option func(w *Watcher)

func WithLogger(logger zerolog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

var newFsnotifyWatcher = fsnotify.NewWatcher

func New(onChange func(dir string), options ...Option) (*Watcher, error) {
	fsw, err := newFsnotifyWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   zerolog.Nop(),
		done:     make(chan struct{}),
	}
	for _, option := range options {
		option(w)
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch switches the watched directory to dir.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir == w.current {
		return nil
	}
	if w.current != "" {
		if err := w.fsw.Remove(w.current); err != nil {
			w.logger.Debug().Err(err).Str("path", w.current).Msg("failed to stop watching")
		}
		w.current = ""
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	w.current = dir
	return nil
}

func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.logger.Debug().Str("op", event.Op.String()).Str("name", event.Name).Msg("fs event")
			w.schedule()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	dir := w.current
	if dir == "" {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		stillCurrent := w.current == dir
		w.mu.Unlock()
		if stillCurrent {
			w.onChange(dir)
		}
	})
}
