// Package logwatch polls configured log files and reports the lines
// appended since the previous scan.
//
// The first time a file is seen only its line count is recorded. A file
// that shrinks (rotation) resets the baseline without emitting, and a file
// that disappears resets its state entirely.
package logwatch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// DefaultInterval between scans
const DefaultInterval = time.Second

// Event carries the new lines of one watched file
type Event struct {
	ConfigID    string   `json:"configId" yaml:"configId"`
	DisplayName string   `json:"displayName" yaml:"displayName"`
	FilePath    string   `json:"filePath" yaml:"filePath"`
	Lines       []string `json:"lines" yaml:"lines"`
}

// Handler receives events. It is never called with the watcher lock held.
type Handler func(Event)

// Saver persists the watch list after SetConfigEnabled changes it
type Saver func([]types.LogWatchConfig) error

type runtimeState struct {
	lastLineCount int
	hasSeenFile   bool
}

// Watcher tracks per-file line counts across scans
type Watcher struct {
	mu       sync.Mutex
	fs       types.FS
	configs  []types.LogWatchConfig
	states   map[string]*runtimeState
	handler  Handler
	saver    Saver
	interval time.Duration
}

// Option configures a watcher
type Option func(*Watcher)

// WithFS replaces the OS filesystem
func WithFS(fsys types.FS) Option {
	return func(w *Watcher) { w.fs = fsys }
}

// WithSaver sets how SetConfigEnabled persists changes
func WithSaver(saver Saver) Option {
	return func(w *Watcher) { w.saver = saver }
}

// WithInterval sets the polling interval
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// New creates a watcher over configs
func New(configs []types.LogWatchConfig, handler Handler, opts ...Option) *Watcher {
	w := &Watcher{
		fs:       filesystem.NewOS(),
		handler:  handler,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Refresh(configs)
	return w
}

// Refresh replaces the watch list and resets every runtime state
func (w *Watcher) Refresh(configs []types.LogWatchConfig) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.configs = append([]types.LogWatchConfig(nil), configs...)
	w.states = make(map[string]*runtimeState, len(configs))
	for _, cfg := range w.configs {
		if cfg.ID == "" {
			continue
		}
		w.states[cfg.ID] = &runtimeState{}
	}
	logger := logging.GetLogger("logwatch")
	logger.Debug().Int("configs", len(w.configs)).Msg("Refreshed log watch configs")
}

// Configs returns a copy of the current watch list
func (w *Watcher) Configs() []types.LogWatchConfig {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]types.LogWatchConfig(nil), w.configs...)
}

// SetConfigEnabled toggles one entry. A real change is persisted through
// the saver and followed by a refresh.
func (w *Watcher) SetConfigEnabled(id string, enabled bool) error {
	if id == "" {
		return nil
	}

	w.mu.Lock()
	configs := append([]types.LogWatchConfig(nil), w.configs...)
	w.mu.Unlock()

	found, changed := false, false
	for i := range configs {
		if configs[i].ID != id {
			continue
		}
		found = true
		if configs[i].Enabled != enabled {
			configs[i].Enabled = enabled
			changed = true
		}
		break
	}
	if !found {
		return errors.Newf(errors.ErrNotFound, "log watch '%s' not found", id)
	}
	if !changed {
		return nil
	}

	if w.saver != nil {
		if err := w.saver(configs); err != nil {
			return err
		}
	}
	w.Refresh(configs)
	logger := logging.GetLogger("logwatch")
	logger.Info().Str("id", id).Bool("enabled", enabled).Msg("Updated log watch")
	return nil
}

// ScanOnce reads every enabled file once and dispatches the new lines
func (w *Watcher) ScanOnce() {
	events := w.scan()
	if w.handler == nil {
		return
	}
	for _, ev := range events {
		w.handler(ev)
	}
}

func (w *Watcher) scan() []Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	logger := logging.GetLogger("logwatch")
	var events []Event

	for _, cfg := range w.configs {
		if !cfg.Enabled || cfg.ID == "" || cfg.FilePath == "" {
			continue
		}

		state, ok := w.states[cfg.ID]
		if !ok {
			state = &runtimeState{}
			w.states[cfg.ID] = state
		}

		if !filesystem.FileExists(w.fs, cfg.FilePath) {
			if state.hasSeenFile {
				logger.Debug().Str("id", cfg.ID).Str("path", cfg.FilePath).Msg("Log file disappeared")
			}
			*state = runtimeState{}
			continue
		}

		data, err := w.fs.ReadFile(cfg.FilePath)
		if err != nil {
			logger.Debug().Err(err).Str("path", cfg.FilePath).Msg("Failed to read log file")
			continue
		}

		lines := splitLines(string(data))
		count := len(lines)

		if !state.hasSeenFile {
			state.hasSeenFile = true
			state.lastLineCount = count
			continue
		}

		if count <= state.lastLineCount {
			if count < state.lastLineCount {
				logger.Debug().Str("id", cfg.ID).Int("from", state.lastLineCount).Int("to", count).Msg("Log file shrank, resetting baseline")
				state.lastLineCount = count
			}
			continue
		}

		fresh := append([]string(nil), lines[state.lastLineCount:]...)
		state.lastLineCount = count
		events = append(events, Event{
			ConfigID:    cfg.ID,
			DisplayName: cfg.DisplayName,
			FilePath:    cfg.FilePath,
			Lines:       fresh,
		})
	}
	return events
}

// splitLines splits on any line terminator and drops empty lines
func splitLines(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

// Handle controls a running poll task
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the task and waits for it to exit. Safe to call twice.
func (h *Handle) Stop() {
	h.once.Do(func() {
		h.cancel()
		<-h.done
	})
}

// Start runs the poll loop on its own goroutine until Stop or ctx ends
func (w *Watcher) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		w.Run(ctx)
	}()
	return h
}

// Run polls until ctx is done. The first scan happens after one interval.
func (w *Watcher) Run(ctx context.Context) {
	logger := logging.GetLogger("logwatch")
	logger.Info().Dur("interval", w.interval).Msg("Log watcher started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Log watcher stopped")
			return
		case <-ticker.C:
			w.ScanOnce()
		}
	}
}
