// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements a fsnotify based watcher that reports changes to a
//              fixed set of files. Parent directories are watched so editors
//              that replace files on save are still seen.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial polling implementation
// - 2026-10-18 v0.2.0: Switched to fsnotify with debouncing

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	ierror "github.com/msto63/istring/core/error"
	"github.com/msto63/istring/core/log"
)

// DefaultDebounce is the quiet period before a change is reported
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports writes, creations and renames of watched files
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
	logger   *log.Logger
}

// NewWatcher creates a watcher for the given files
func NewWatcher(logger *log.Logger, paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ierror.New("no files to watch").
			WithCode(ierror.CodeInvalidArgument).
			WithOperation("config.NewWatcher")
	}
	if logger == nil {
		logger = log.Discard()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ierror.Wrap(err, "failed to create watcher").
			WithCode(ierror.CodeConfigError).
			WithOperation("config.NewWatcher")
	}

	w := &Watcher{
		watcher:  fsw,
		files:    make(map[string]struct{}, len(paths)),
		debounce: DefaultDebounce,
		logger:   logger.WithField("component", "watcher"),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, ierror.Wrap(err, "failed to resolve path").
				WithCode(ierror.CodeConfigError).
				WithOperation("config.NewWatcher").
				WithDetail("filePath", p)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, ierror.Wrap(err, "failed to watch directory").
				WithCode(ierror.CodeConfigError).
				WithOperation("config.NewWatcher").
				WithDetail("dir", dir)
		}
	}
	return w, nil
}

// SetDebounce changes the quiet period; it must be called before Run
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run blocks until ctx is done, calling onChange with the absolute path of
// each changed file once its events have settled. The watcher is closed
// when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	defer w.watcher.Close()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file event", log.Fields{"file": event.Name, "op": event.Op.String()})
			pending[filepath.Clean(event.Name)] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			for path := range pending {
				onChange(path)
			}
			clear(pending)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnWithErr("watcher error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if _, ok := w.files[filepath.Clean(event.Name)]; !ok {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Close stops the watcher without waiting for Run
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
