package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reparses a tuning file whenever it changes on disk.
// Valid documents arrive on Updates; parse and validation failures on Errors.
// Nothing is applied here: the consumer calls Apply between frames.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	base    Tuning
	Updates chan Tuning
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchTuning starts watching path. Overrides are decoded on top of the
// configuration live at the time of the call. The parent directory is watched so that
// editors which replace the file on save are still picked up.
func WatchTuning(path string) (*TuningWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		base:    CurrentTuning(),
		Updates: make(chan Tuning, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
		<-tw.done
	})
	return err
}

// reloadQuiet is how long the file must go without events before it is reparsed.
// Editors that truncate then write produce several events per save.
var reloadQuiet = 100 * time.Millisecond

func (tw *TuningWatcher) run() {
	defer close(tw.done)
	quiet := time.NewTimer(reloadQuiet)
	if !quiet.Stop() {
		<-quiet.C
	}
	defer quiet.Stop()

	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			quiet.Reset(reloadQuiet)
		case <-quiet.C:
			tw.reload()
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.sendErr(err)
		case <-tw.closeCh:
			return
		}
	}
}

func (tw *TuningWatcher) reload() {
	data, err := os.ReadFile(tw.path)
	if err != nil {
		tw.sendErr(err)
		return
	}
	t, err := parseTuningOnto(tw.base, data)
	if err != nil {
		tw.sendErr(err)
		return
	}
	// Keep only the newest document
	select {
	case <-tw.Updates:
	default:
	}
	select {
	case tw.Updates <- t:
	case <-tw.closeCh:
	}
}

func (tw *TuningWatcher) sendErr(err error) {
	select {
	case tw.Errors <- err:
	default:
	}
}
