// Package reload keeps a parsed markup tree current while its source file
// changes on disk. The coordinator watches the source directory, reparses
// after edits settle and publishes each good tree as an immutable snapshot.
// Consumers only ever see complete snapshots - a failed reparse keeps the
// previous one in place.
package reload

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"uiml/markup"
)

// Coordinator state.
// ENUM(idle, watching, reparsing, failed)
type State int32

// DefaultSettle is how long the coordinator waits after a change before
// reparsing, so editors that write in several syscalls produce one reload.
const DefaultSettle = 50 * time.Millisecond

// Snapshot is one published parse result. Snapshots are immutable: the
// coordinator never touches a tree again after publishing it.
type Snapshot struct {
	ID       uuid.UUID
	Root     *markup.Node
	Path     string
	ParsedAt time.Time
}

// Coordinator owns the watch-reparse-publish loop for a single markup file.
type Coordinator struct {
	path   string
	settle time.Duration
	log    *zap.Logger

	current atomic.Pointer[Snapshot]
	state   atomic.Int32

	// Change notifications collapse into a single pending signal, mirroring
	// the capacity of events. A burst of writes causes one reparse.
	events chan struct{}

	mu      sync.Mutex
	subs    []chan struct{}
	lastErr error
}

// NewCoordinator creates a coordinator for the markup file at path. A
// non-positive settle falls back to DefaultSettle.
func NewCoordinator(path string, settle time.Duration, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Coordinator{
		path:   filepath.Clean(path),
		settle: settle,
		log:    log.Named("reload"),
		events: make(chan struct{}, 1),
	}
}

// Load parses the source and publishes the initial snapshot. Unlike reloads
// a failed initial parse is reported to the caller - there is no previous
// tree to fall back on.
func (c *Coordinator) Load() (*Snapshot, error) {
	root, err := markup.ParseFile(c.path, c.log)
	if err != nil {
		c.setLastError(err)
		c.state.Store(int32(StateFailed))
		return nil, fmt.Errorf("unable to load markup: %w", err)
	}
	return c.publish(root), nil
}

// Current returns the latest published snapshot, nil before the first Load.
func (c *Coordinator) Current() *Snapshot {
	return c.current.Load()
}

// State reports what the coordinator is doing right now.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// LastError returns the error of the most recent failed parse, nil once a
// snapshot has been published after it.
func (c *Coordinator) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Coordinator) setLastError(err error) {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
}

// Subscribe returns a channel that receives a signal after every published
// snapshot. The channel holds at most one pending signal, so a slow consumer
// sees coalesced updates and always reads the latest tree via Current.
func (c *Coordinator) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}

// Run watches the source directory tree and reparses on changes until ctx
// is cancelled.
func (c *Coordinator) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := c.watchTree(watcher, filepath.Dir(c.path)); err != nil {
		return err
	}
	c.state.Store(int32(StateWatching))
	c.log.Info("Watching markup source", zap.String("path", c.path))

	go c.forward(ctx, watcher)

	for {
		select {
		case <-ctx.Done():
			c.state.Store(int32(StateIdle))
			return nil
		case <-c.events:
			c.waitSettled(ctx)
			c.reparse()
		}
	}
}

// watchTree registers root and every directory below it. Watching whole
// directories survives the delete-and-rename dance most editors save with.
func (c *Coordinator) watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("unable to watch %s: %w", path, err)
		}
		return nil
	})
}

// forward filters raw notifications down to ones touching the markup file
// and collapses them into the pending-change signal.
func (c *Coordinator) forward(ctx context.Context, watcher *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.log.Warn("File watcher problem", zap.Error(err))
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						c.log.Warn("Unable to watch new directory",
							zap.String("path", event.Name), zap.Error(err))
					}
					continue
				}
			}
			if !c.relevant(event) {
				continue
			}
			select {
			case c.events <- struct{}{}:
			default:
				// A reparse is already pending, this change rides along.
			}
		}
	}
}

func (c *Coordinator) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != c.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// waitSettled gives the editor time to finish writing, draining any signal
// that arrives meanwhile so the burst ends in a single reparse.
func (c *Coordinator) waitSettled(ctx context.Context) {
	timer := time.NewTimer(c.settle)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.events:
		case <-timer.C:
			return
		}
	}
}

func (c *Coordinator) reparse() {
	c.state.Store(int32(StateReparsing))

	root, err := markup.ParseFile(c.path, c.log)
	if err != nil {
		// the failure is observable through logs and LastError, the loop
		// itself goes straight back to watching
		c.setLastError(err)
		c.state.Store(int32(StateWatching))
		c.log.Warn("Reparse failed, keeping previous tree", zap.String("path", c.path), zap.Error(err))
		return
	}
	snap := c.publish(root)
	c.log.Info("Published new tree",
		zap.String("snapshot", snap.ID.String()),
		zap.Int("nodes", root.Count()))
	if c.log.Core().Enabled(zap.DebugLevel) {
		c.log.Debug("Tree outline\n" + root.Outline())
	}
}

func (c *Coordinator) publish(root *markup.Node) *Snapshot {
	snap := &Snapshot{
		ID:       uuid.New(),
		Root:     root,
		Path:     c.path,
		ParsedAt: time.Now(),
	}
	c.current.Store(snap)
	c.state.Store(int32(StateWatching))
	c.setLastError(nil)
	c.notify()
	return snap
}

func (c *Coordinator) notify() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
