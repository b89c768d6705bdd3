package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchQuiet is how long the watched files must stay untouched before a
// batch of edits is reported. Editors often write a file several times per
// save.
const watchQuiet = 150 * time.Millisecond

var ErrNothingToWatch = errors.New("prefabs: no watchable directories")

// ChangeKind says what a changed file feeds into.
type ChangeKind int

const (
	ChangeOther ChangeKind = iota
	ChangeLevel
	ChangePrefab
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeLevel:
		return "level"
	case ChangePrefab:
		return "prefab"
	case ChangeScript:
		return "script"
	default:
		return "other"
	}
}

// Classify maps a changed path to the data it holds. Level yaml lives in a
// directory named levels; any other yaml is tuning.
func Classify(p string) ChangeKind {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".tengo":
		return ChangeScript
	case ".yaml", ".yml":
		if filepath.Base(filepath.Dir(p)) == "levels" {
			return ChangeLevel
		}
		return ChangePrefab
	default:
		return ChangeOther
	}
}

// Change is one settled batch of edits, with each path listed once.
type Change struct {
	Paths []string
}

// Has reports whether any path in the batch is of kind k.
func (c Change) Has(k ChangeKind) bool {
	for _, p := range c.Paths {
		if Classify(p) == k {
			return true
		}
	}
	return false
}

// Watcher reports edits to level, tuning and script files. It sends at
// most one pending Change; batches that pile up while the reader is busy
// are merged.
type Watcher struct {
	fw      *fsnotify.Watcher
	Changes chan Change
	Errors  chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches every directory in dirs that exists. Missing
// directories are skipped, since a binary run outside the repo only has the
// embedded copies.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watched := 0
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
		watched++
	}
	if watched == 0 {
		_ = fw.Close()
		return nil, ErrNothingToWatch
	}

	w := &Watcher{
		fw:      fw,
		Changes: make(chan Change, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fw.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	pending := make(map[string]struct{})
	quiet := time.NewTimer(watchQuiet)
	quiet.Stop()
	defer quiet.Stop()

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || Classify(event.Name) == ChangeOther {
				continue
			}
			pending[event.Name] = struct{}{}
			quiet.Reset(watchQuiet)
		case <-quiet.C:
			w.flush(pending)
			pending = make(map[string]struct{})
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// flush hands pending paths to the reader, merging with a batch it has
// not collected yet.
func (w *Watcher) flush(pending map[string]struct{}) {
	if len(pending) == 0 {
		return
	}
	select {
	case prev := <-w.Changes:
		for _, p := range prev.Paths {
			pending[p] = struct{}{}
		}
	default:
	}

	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	w.Changes <- Change{Paths: paths}
}
