// Package watch reports when something else writes to the ROM.
//
// It only reports. Edits in flight are not stopped or merged: the last
// program to write a record wins.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// A burst of writes closer together than this is one change.
const DEFAULT_SETTLE = 500 * time.Millisecond

type Change struct {
	Path string
	When time.Time
}

type Watcher interface {
	Start_watching(changes chan<- Change) error
	Stop_watching()
}

// New_watcher watches the directory holding path, since emulators and other
// editors often replace the file rather than write it in place.
func New_watcher(path string, logger hclog.Logger) Watcher {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &rom_watcher{path: abs, settle: DEFAULT_SETTLE, logger: logger}
}

type rom_watcher struct {
	path    string
	settle  time.Duration
	logger  hclog.Logger
	watcher *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

// Start_watching reports on changes until Stop_watching. changes should be
// buffered: while a change sits unread, later ones are dropped.
func (rw *rom_watcher) Start_watching(changes chan<- Change) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	rw.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					if rw.is_rom(event.Name) {
						rw.changed(changes)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				rw.logger.Warn("watch error", "error", err)
			}
		}
	}()

	err = rw.watcher.Add(filepath.Dir(rw.path))
	if err != nil {
		rw.watcher.Close()
		return err
	}
	rw.logger.Debug("watching", "rom", rw.path)
	return nil
}

func (rw *rom_watcher) Stop_watching() {
	rw.mu.Lock()
	if rw.timer != nil {
		rw.timer.Stop()
	}
	rw.mu.Unlock()
	if rw.watcher != nil {
		rw.watcher.Close()
	}
}

func (rw *rom_watcher) is_rom(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == rw.path
}

// changed (re)starts the settle timer; the change is reported once it runs out.
func (rw *rom_watcher) changed(changes chan<- Change) {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.timer != nil {
		rw.timer.Stop()
	}
	rw.timer = time.AfterFunc(rw.settle, func() {
		rw.logger.Info("rom changed on disk", "rom", rw.path)
		// A change nobody has read yet already says the same thing
		select {
		case changes <- Change{Path: rw.path, When: time.Now()}:
		default:
			rw.logger.Debug("change not delivered, one is already pending", "rom", rw.path)
		}
	})
}
