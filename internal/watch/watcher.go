// Package watch re-runs a callback when source files change on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDelay is the debounce window used when Options.Delay is zero
const DefaultDelay = 100 * time.Millisecond

// Options configures a FileWatcher
type Options struct {
	// Dirs are watched non-recursively
	Dirs []string
	// Extension filters events, e.g. ".sig"; empty matches every file
	Extension string
	// Ignored holds base-name glob patterns, e.g. "*.swp"
	Ignored []string
	Delay   time.Duration
	Logger  *zap.Logger
}

// FileWatcher monitors file system changes and triggers callbacks
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	dirs      []string
	extension string
	ignored   []string
	logger    *zap.Logger
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewFileWatcher creates a file watcher. onChange receives the sorted set of
// paths changed within one debounce window.
func NewFileWatcher(opts Options, onChange func([]string) error) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	delay := opts.Delay
	if delay == 0 {
		delay = DefaultDelay
	}

	fw := &FileWatcher{
		watcher:   watcher,
		debouncer: NewDebouncer(delay),
		dirs:      opts.Dirs,
		extension: opts.Extension,
		ignored:   opts.Ignored,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}

	fw.debouncer.SetCallback(func(files []string) {
		if err := onChange(files); err != nil {
			fw.logger.Warn("error handling file changes", zap.Error(err))
		}
	})

	return fw, nil
}

// Start begins watching the configured directories
func (fw *FileWatcher) Start() error {
	for _, dir := range fw.dirs {
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		fw.logger.Info("watching directory", zap.String("dir", dir))
	}

	fw.wg.Add(1)
	go fw.watch()

	return nil
}

// Stop stops the file watcher. It is safe to call more than once.
func (fw *FileWatcher) Stop() error {
	var err error
	fw.stopOnce.Do(func() {
		close(fw.stopChan)
		fw.wg.Wait()
		fw.debouncer.Stop()
		err = fw.watcher.Close()
	})
	return err
}

// watch is the main event loop
func (fw *FileWatcher) watch() {
	defer fw.wg.Done()

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if fw.shouldIgnore(event.Name) || !fw.matches(event.Name) {
				continue
			}
			fw.logger.Debug("file changed", zap.String("file", event.Name))
			fw.debouncer.Add(event.Name)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("watch error", zap.Error(err))

		case <-fw.stopChan:
			return
		}
	}
}

// shouldIgnore reports hidden files and ignored patterns
func (fw *FileWatcher) shouldIgnore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	for _, pattern := range fw.ignored {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

func (fw *FileWatcher) matches(path string) bool {
	return fw.extension == "" || filepath.Ext(path) == fw.extension
}

// Debouncer collects file changes and triggers callbacks after a delay
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	files    map[string]struct{}
	mutex    sync.Mutex
	callback func([]string)
	// running serializes callbacks
	running sync.Mutex
	stopped bool
}

// NewDebouncer creates a new debouncer instance
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
		files:    make(map[string]struct{}),
	}
}

// Add records a changed file and restarts the delay
func (d *Debouncer) Add(file string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.stopped {
		return
	}

	d.files[file] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.flush)
}

// flush hands the accumulated files to the callback outside the lock
func (d *Debouncer) flush() {
	d.mutex.Lock()
	if len(d.files) == 0 || d.stopped {
		d.mutex.Unlock()
		return
	}
	files := make([]string, 0, len(d.files))
	for file := range d.files {
		files = append(files, file)
	}
	d.files = make(map[string]struct{})
	callback := d.callback
	d.mutex.Unlock()

	sort.Strings(files)

	if callback != nil {
		d.running.Lock()
		defer d.running.Unlock()
		callback(files)
	}
}

// SetCallback sets the callback function
func (d *Debouncer) SetCallback(callback func([]string)) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.callback = callback
}

// Stop cancels any pending flush
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
