package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/eternalcoin/eternalcoin/internal/bridge"
	"github.com/eternalcoin/eternalcoin/internal/i18n"
	"github.com/eternalcoin/eternalcoin/internal/node"
	"github.com/eternalcoin/eternalcoin/internal/updates"
)

type box struct {
	text    string
	caption string
	style   bridge.Style
}

type fakeNotifier struct {
	mu       sync.Mutex
	boxes    []box
	progress []string
	boxCh    chan box
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{boxCh: make(chan box, 16)}
}

func (f *fakeNotifier) MessageBox(_ context.Context, text, caption string, style bridge.Style) {
	f.mu.Lock()
	f.boxes = append(f.boxes, box{text, caption, style})
	f.mu.Unlock()
	f.boxCh <- box{text, caption, style}
}

func (f *fakeNotifier) InitMessage(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress = append(f.progress, text)
}

func (f *fakeNotifier) Translate(key string) string { return key }

func (f *fakeNotifier) boxCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.boxes)
}

type scriptedNode struct {
	mu      sync.Mutex
	results []error
	calls   int
}

func (s *scriptedNode) FetchInfo(context.Context) (*node.Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i < len(s.results) && s.results[i] != nil {
		return nil, s.results[i]
	}
	return &node.Info{Blocks: int64(i)}, nil
}

type fixedChecker struct {
	result updates.Result
	err    error
}

func (f fixedChecker) Check(context.Context) (updates.Result, int, error) {
	return f.result, 12, f.err
}

func newTestEngine(t *testing.T, dir string, n node.Fetcher, notifier Notifier) *Engine {
	t.Helper()
	e, err := New(Options{DataDir: dir, Node: n, Notifier: notifier, PollInterval: time.Hour})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return e
}

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second},
		{"many failures capped", 100, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateBackoff(tt.failures, baseInterval); got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	notifier := newFakeNotifier()
	n := &scriptedNode{}
	for name, opts := range map[string]Options{
		"datadir":  {Node: n, Notifier: notifier},
		"node":     {DataDir: "/tmp", Notifier: notifier},
		"notifier": {DataDir: "/tmp", Node: n},
	} {
		if _, err := New(opts); err == nil {
			t.Fatalf("New without %s returned nil error", name)
		}
	}
}

func TestStart_LocksDataDirectory(t *testing.T) {
	dir := t.TempDir()
	notifier := newFakeNotifier()

	first := newTestEngine(t, dir, &scriptedNode{}, notifier)
	if err := first.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	second := newTestEngine(t, dir, &scriptedNode{}, notifier)
	if err := second.Start(context.Background()); !errors.Is(err, ErrDataDirLocked) {
		t.Fatalf("second Start error = %v, want ErrDataDirLocked", err)
	}
	if err := second.Shutdown(); err != nil {
		t.Fatalf("Shutdown of unstarted engine returned error: %v", err)
	}

	if err := first.Shutdown(); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}
	if err := second.Start(context.Background()); err != nil {
		t.Fatalf("Start after release returned error: %v", err)
	}
	if err := second.Shutdown(); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}
}

func TestStart_ReportsProgressAndFirstPoll(t *testing.T) {
	notifier := newFakeNotifier()
	e := newTestEngine(t, t.TempDir(), &scriptedNode{}, notifier)
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer e.Shutdown()

	if err := e.Start(context.Background()); err == nil {
		t.Fatal("second Start on running engine returned nil error")
	}
	if snap := e.Store().Snapshot(); !snap.HasInfo {
		t.Fatal("store should hold the first poll result after Start")
	}
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	want := []string{i18n.MsgLoading, i18n.MsgLoadingNode, i18n.MsgDone}
	if len(notifier.progress) != len(want) {
		t.Fatalf("progress = %v, want %v", notifier.progress, want)
	}
	for i := range want {
		if notifier.progress[i] != want[i] {
			t.Fatalf("progress = %v, want %v", notifier.progress, want)
		}
	}
}

func TestRefresh_NotifiesOfflineAndBack(t *testing.T) {
	boom := errors.New("connection refused")
	notifier := newFakeNotifier()
	n := &scriptedNode{results: []error{boom, boom, boom, nil}}
	e := newTestEngine(t, t.TempDir(), n, notifier)
	ctx := context.Background()

	if got := e.refresh(ctx); got != 1 {
		t.Fatalf("failures after first refresh = %d, want 1", got)
	}
	if notifier.boxCount() != 0 {
		t.Fatal("single failure should not notify")
	}
	e.refresh(ctx)
	offline := <-notifier.boxCh
	if offline.text != i18n.MsgNodeOffline || offline.style != bridge.StyleWarning || offline.style.Modal() {
		t.Fatalf("offline box = %#v", offline)
	}
	e.refresh(ctx)
	if notifier.boxCount() != 1 {
		t.Fatal("repeated failures should notify once")
	}
	if got := e.refresh(ctx); got != 0 {
		t.Fatalf("failures after success = %d, want 0", got)
	}
	back := <-notifier.boxCh
	if back.text != i18n.MsgNodeBack {
		t.Fatalf("back box = %#v", back)
	}
}

func TestUpdateCheckReportsThroughNotifier(t *testing.T) {
	tests := []struct {
		checker fixedChecker
		want    string
	}{
		{fixedChecker{result: updates.Available}, i18n.MsgUpdate},
		{fixedChecker{result: updates.UpToDate}, i18n.MsgUpToDate},
		{fixedChecker{result: updates.Failed, err: errors.New("offline")}, i18n.MsgUpdateFailed},
	}
	for _, tt := range tests {
		notifier := newFakeNotifier()
		e, err := New(Options{
			DataDir:      t.TempDir(),
			Node:         &scriptedNode{},
			Notifier:     notifier,
			Updates:      tt.checker,
			PollInterval: time.Hour,
		})
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		if err := e.Start(context.Background()); err != nil {
			t.Fatalf("Start returned error: %v", err)
		}
		select {
		case got := <-notifier.boxCh:
			if got.text != tt.want || got.caption != i18n.CaptionUpdates || got.style.Modal() {
				t.Fatalf("update box = %#v, want text %q", got, tt.want)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("update check did not report")
		}
		if err := e.Shutdown(); err != nil {
			t.Fatalf("Shutdown returned error: %v", err)
		}
	}
}
