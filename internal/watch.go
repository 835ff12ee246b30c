package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnolang/daysin/internal/types"
)

// BatchExt is the extension of batch query files.
const BatchExt = ".days"

// debounce groups bursts of writes from editors into a single evaluation.
const debounce = 100 * time.Millisecond

var ErrAlreadyWatching = errors.New("already watching")

// StartWatching re-evaluates batch files under dirs whenever they are written.
// Results are passed to report, or logged when report is nil.
func (e *Engine) StartWatching(dirs []string, report func(filename string, results []tt.Result)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.isWatching {
		return ErrAlreadyWatching
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			watcher.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	if report == nil {
		report = e.reportResults
	}
	e.watcher = watcher
	e.onResults = report
	e.done = make(chan struct{})
	e.isWatching = true
	go e.watchLoop(watcher, e.done)
	return nil
}

// StopWatching closes the watcher and waits for the event loop to exit.
func (e *Engine) StopWatching() error {
	e.mu.Lock()
	if !e.isWatching {
		e.mu.Unlock()
		e.logger.Warn("not watching")
		return nil
	}
	e.isWatching = false
	watcher, done := e.watcher, e.done
	e.mu.Unlock()

	err := watcher.Close()
	<-done
	return err
}

func (e *Engine) watchLoop(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			e.logger.Error("watcher error", zap.Error(err))
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if filepath.Ext(event.Name) != BatchExt {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(debounce)
	results, err := e.Run(event.Name)
	if err != nil {
		e.logger.Error("error evaluating file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	e.onResults(event.Name, results)
}

func (e *Engine) reportResults(filename string, results []tt.Result) {
	failures := 0
	for _, r := range results {
		if r.Failed() {
			failures++
			e.logger.Info("invalid input",
				zap.String("file", filename),
				zap.Int("line", r.Line),
				zap.String("op", r.Op),
				zap.String("message", r.Message))
		}
	}
	e.logger.Info("evaluated file",
		zap.String("file", filename),
		zap.Int("queries", len(results)),
		zap.Int("failures", failures))
}
