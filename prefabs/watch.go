package prefabs

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is the quiet period after the last write to a file before the
// change is reported. Editors often save in several writes.
const watchDebounce = 100 * time.Millisecond

type ChangeKind int

const (
	ChangeScene ChangeKind = iota + 1
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeScene:
		return "scene"
	case ChangeScript:
		return "script"
	}
	return "unknown"
}

// Change is one settled edit of a scene or script file.
type Change struct {
	Path string
	Kind ChangeKind
}

// ClassifyPath reports which kind of prefab a file holds, by extension.
func ClassifyPath(p string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return ChangeScene, true
	case ".tengo":
		return ChangeScript, true
	}
	return 0, false
}

// Watcher reports edited scene and script files under a set of directories.
// Changes are delivered on Changes in path order once writes have settled.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan Change
	Errors  chan error

	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fsw,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and closes both channels. It is safe to call twice.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.quit)
		w.closeErr = w.fs.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return w.closeErr
}

func (w *Watcher) run() {
	defer close(w.done)

	pending := make(map[string]ChangeKind)
	settle := time.NewTimer(time.Hour)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			kind, ok := ClassifyPath(ev.Name)
			if !ok {
				continue
			}
			pending[ev.Name] = kind
			settle.Reset(watchDebounce)

		case <-settle.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			slices.Sort(paths)
			for _, p := range paths {
				select {
				case w.Changes <- Change{Path: p, Kind: pending[p]}:
				case <-w.quit:
					return
				}
			}
			clear(pending)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// Only the latest error matters to the frame loop.
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.quit:
			return
		}
	}
}
