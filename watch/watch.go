// Package watch reports changes to lesson files below a path.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("tutor.watch")

type Config struct {
	// Path is a file or a directory watched recursively.
	Path          string
	Debounce      time.Duration
	Extensions    []string
	IncludeHidden bool
}

// Event is delivered once the events for a file have settled.
type Event struct {
	Path    string
	Removed bool
}

type Watcher struct {
	watcher  *fsnotify.Watcher
	config   Config
	debounce *Debouncer

	mu      sync.Mutex
	running bool
}

func New(config Config) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	return &Watcher{
		watcher:  watcher,
		config:   config,
		debounce: NewDebouncer(config.Debounce),
	}, nil
}

// Watch blocks until ctx is done, calling onEvent for every settled change
// to a matching file. onEvent runs on the debouncer's goroutine, one call at
// a time.
func (w *Watcher) Watch(ctx context.Context, onEvent func(Event)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addPath(w.config.Path); err != nil {
		return fmt.Errorf("watch %s: %w", w.config.Path, err)
	}
	log.Infof("watching %s", w.config.Path)

	var serial sync.Mutex
	for {
		select {
		case <-ctx.Done():
			w.debounce.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if event.Has(fsnotify.Create) && w.isWatchableDir(event.Name) {
				if err := w.addPath(event.Name); err != nil {
					log.Warningf("watch new directory %s: %s", event.Name, err)
				}
				continue
			}
			if !w.Matches(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			log.Debugf("%s %s", event.Op, event.Name)

			path := event.Name
			w.debounce.Trigger(path, func() {
				_, err := os.Stat(path)
				serial.Lock()
				defer serial.Unlock()
				onEvent(Event{Path: path, Removed: errors.Is(err, fs.ErrNotExist)})
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			log.Errorf("watcher: %s", err)
		}
	}
}

func (w *Watcher) Close() error {
	w.debounce.Stop()
	return w.watcher.Close()
}

// Matches reports whether path names a file the watcher reports on.
func (w *Watcher) Matches(path string) bool {
	if !w.config.IncludeHidden && isHidden(path) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(w.config.Extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// Files lists the matching files below the watched path in lexical order.
func (w *Watcher) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(w.config.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != w.config.Path && !w.config.IncludeHidden && isHidden(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if w.Matches(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.watcher.Add(path)
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && !w.config.IncludeHidden && isHidden(p) {
			return filepath.SkipDir
		}
		log.Debugf("watching directory %s", p)
		return w.watcher.Add(p)
	})
}

func (w *Watcher) isWatchableDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	return w.config.IncludeHidden || !isHidden(path)
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
