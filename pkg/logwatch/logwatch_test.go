package logwatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) handle(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func numbered(from, to int) string {
	var b strings.Builder
	for i := from; i <= to; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func writeLog(t *testing.T, p, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func gameLog(p string) types.LogWatchConfig {
	return types.LogWatchConfig{ID: "game", DisplayName: "Game", FilePath: p, Enabled: true}
}

func TestScanEmitsOnlyAppendedLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "Whiskerwood.log")
	writeLog(t, logPath, numbered(1, 3))

	rec := &recorder{}
	w := New([]types.LogWatchConfig{gameLog(logPath)}, rec.handle)

	w.ScanOnce()
	assert.Empty(t, rec.all(), "first sighting only sets the baseline")

	writeLog(t, logPath, numbered(1, 7))
	w.ScanOnce()
	w.ScanOnce()

	events := rec.all()
	require.Len(t, events, 1)
	assert.Equal(t, "game", events[0].ConfigID)
	assert.Equal(t, "Game", events[0].DisplayName)
	assert.Equal(t, logPath, events[0].FilePath)
	assert.Equal(t, []string{"line 4", "line 5", "line 6", "line 7"}, events[0].Lines)
}

func TestScanShrinkResetsBaseline(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "Whiskerwood.log")
	writeLog(t, logPath, numbered(1, 5))

	rec := &recorder{}
	w := New([]types.LogWatchConfig{gameLog(logPath)}, rec.handle)
	w.ScanOnce()

	writeLog(t, logPath, numbered(1, 2))
	w.ScanOnce()
	assert.Empty(t, rec.all())

	writeLog(t, logPath, numbered(1, 4))
	w.ScanOnce()
	events := rec.all()
	require.Len(t, events, 1)
	assert.Equal(t, []string{"line 3", "line 4"}, events[0].Lines)
}

func TestScanMissingFileResetsState(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "Whiskerwood.log")
	writeLog(t, logPath, numbered(1, 3))

	rec := &recorder{}
	w := New([]types.LogWatchConfig{gameLog(logPath)}, rec.handle)
	w.ScanOnce()

	require.NoError(t, os.Remove(logPath))
	w.ScanOnce()

	// reappearing file is a first sighting again
	writeLog(t, logPath, numbered(1, 10))
	w.ScanOnce()
	assert.Empty(t, rec.all())

	writeLog(t, logPath, numbered(1, 11))
	w.ScanOnce()
	require.Len(t, rec.all(), 1)
	assert.Equal(t, []string{"line 11"}, rec.all()[0].Lines)
}

func TestScanSkipsDisabledAndBlankEntries(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "a.log")
	writeLog(t, logPath, "one\n")

	rec := &recorder{}
	w := New([]types.LogWatchConfig{
		{ID: "off", FilePath: logPath, Enabled: false},
		{ID: "", FilePath: logPath, Enabled: true},
		{ID: "nopath", Enabled: true},
	}, rec.handle)

	w.ScanOnce()
	writeLog(t, logPath, "one\ntwo\n")
	w.ScanOnce()
	assert.Empty(t, rec.all())
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitLines("a\r\nb\n\nc\r"))
	assert.Empty(t, splitLines(""))
}

func TestSetConfigEnabled(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "Whiskerwood.log")
	writeLog(t, logPath, numbered(1, 3))

	var saved [][]types.LogWatchConfig
	rec := &recorder{}
	cfg := gameLog(logPath)
	cfg.Enabled = false
	w := New([]types.LogWatchConfig{cfg}, rec.handle, WithSaver(func(c []types.LogWatchConfig) error {
		saved = append(saved, c)
		return nil
	}))

	require.NoError(t, w.SetConfigEnabled("game", true))
	require.Len(t, saved, 1)
	assert.True(t, saved[0][0].Enabled)
	assert.True(t, w.Configs()[0].Enabled)

	// unchanged value does not save again
	require.NoError(t, w.SetConfigEnabled("game", true))
	assert.Len(t, saved, 1)

	require.NoError(t, w.SetConfigEnabled("", false))
	err := w.SetConfigEnabled("missing", true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	w.ScanOnce()
	writeLog(t, logPath, numbered(1, 4))
	w.ScanOnce()
	require.Len(t, rec.all(), 1)
}

func TestSetConfigEnabledSaverFailure(t *testing.T) {
	w := New([]types.LogWatchConfig{{ID: "game", FilePath: "x"}}, nil,
		WithSaver(func([]types.LogWatchConfig) error {
			return errors.New(errors.ErrConfigSave, "disk full")
		}))

	err := w.SetConfigEnabled("game", true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigSave))
	assert.False(t, w.Configs()[0].Enabled)
}

func TestStartStop(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "Whiskerwood.log")
	writeLog(t, logPath, numbered(1, 1))

	rec := &recorder{}
	w := New([]types.LogWatchConfig{gameLog(logPath)}, rec.handle, WithInterval(5*time.Millisecond))
	h := w.Start(context.Background())

	// wait for the baseline scan, then append
	time.Sleep(50 * time.Millisecond)
	writeLog(t, logPath, numbered(1, 2))

	assert.Eventually(t, func() bool { return len(rec.all()) == 1 }, 2*time.Second, 5*time.Millisecond)
	h.Stop()
	h.Stop()

	assert.Equal(t, []string{"line 2"}, rec.all()[0].Lines)
}

func TestRunReturnsOnCancel(t *testing.T) {
	w := New(nil, nil, WithInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestDeltaProperty(t *testing.T) {
	dir := t.TempDir()
	properties := gopter.NewProperties(nil)

	properties.Property("growth from a to b emits exactly lines a+1..b", prop.ForAll(
		func(a, b int) bool {
			logPath := filepath.Join(dir, fmt.Sprintf("p-%d-%d.log", a, b))
			if err := os.WriteFile(logPath, []byte(numbered(1, a)), 0644); err != nil {
				return false
			}
			rec := &recorder{}
			w := New([]types.LogWatchConfig{gameLog(logPath)}, rec.handle)
			w.ScanOnce()

			if err := os.WriteFile(logPath, []byte(numbered(1, b)), 0644); err != nil {
				return false
			}
			w.ScanOnce()

			events := rec.all()
			if b <= a {
				return len(events) == 0
			}
			if len(events) != 1 || len(events[0].Lines) != b-a {
				return false
			}
			for i, line := range events[0].Lines {
				if line != fmt.Sprintf("line %d", a+1+i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 40),
		gen.IntRange(0, 40),
	))

	properties.TestingRun(t)
}
