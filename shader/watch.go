package shader

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/richinsley/pianino/sgl"
)

// Watcher reloads base.vert/base.frag from a directory whenever either
// file is written. The latest successfully read pair is delivered on
// Updates; a pair that was not consumed yet is replaced.
type Watcher struct {
	dir     string
	base    string
	fsw     *fsnotify.Watcher
	updates chan Sources
	done    chan struct{}
	wg      sync.WaitGroup
}

// Watch starts watching dir for changes to base.vert and base.frag.
func Watch(dir, base string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{
		dir:     dir,
		base:    base,
		fsw:     fsw,
		updates: make(chan Sources, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Updates delivers reloaded sources.
func (w *Watcher) Updates() <-chan Sources { return w.updates }

// Poll returns the pending update, if any, without blocking.
func (w *Watcher) Poll() (Sources, bool) {
	select {
	case src := <-w.updates:
		return src, true
	default:
		return Sources{}, false
	}
}

func (w *Watcher) relevant(name string) bool {
	file := filepath.Base(name)
	return strings.TrimSuffix(file, filepath.Ext(file)) == w.base &&
		(strings.HasSuffix(file, ".vert") || strings.HasSuffix(file, ".frag"))
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	log := sgl.Logger()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !w.relevant(ev.Name) {
				continue
			}
			src, err := LoadDir(w.dir, w.base)
			if err != nil {
				log.Warn("shader reload skipped", "file", ev.Name, "err", err)
				continue
			}
			log.Debug("shader changed", "file", ev.Name)
			w.publish(src)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("shader watcher error", "err", err)
		}
	}
}

func (w *Watcher) publish(src Sources) {
	for {
		select {
		case w.updates <- src:
			return
		default:
		}
		// Drop the stale pair so the newest one wins.
		select {
		case <-w.updates:
		default:
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
