package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/eternalcoin/eternalcoin/internal/node"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var s Store

	before := time.Now()
	if change := s.Update(&node.Info{Version: 11, Blocks: 42}, nil); change != Unchanged {
		t.Fatalf("Update change = %v, want Unchanged", change)
	}

	snap := s.Snapshot()
	if !snap.HasInfo || snap.Info.Blocks != 42 {
		t.Fatalf("snapshot info = %#v, want blocks=42 HasInfo=true", snap.Info)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(&node.Info{Blocks: 7}, nil)
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if !snap.HasInfo || snap.Info.Blocks != 7 {
		t.Fatalf("info changed on error: got %#v", snap.Info)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("cloned error should still wrap the original")
	}
}

func TestStore_ConsecutiveFailuresAndTransitions(t *testing.T) {
	var s Store

	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	steps := []struct {
		err         error
		wantChange  Change
		wantFails   int
		wantOffline bool
	}{
		{errors.New("fail 1"), Unchanged, 1, false},
		{errors.New("fail 2"), WentOffline, 2, true},
		{errors.New("fail 3"), Unchanged, 3, true},
		{nil, CameBack, 0, false},
		{nil, Unchanged, 0, false},
		{errors.New("fail 4"), Unchanged, 1, false},
	}
	for i, step := range steps {
		var info *node.Info
		if step.err == nil {
			info = &node.Info{}
		}
		if got := s.Update(info, step.err); got != step.wantChange {
			t.Fatalf("step %d: change = %v, want %v", i, got, step.wantChange)
		}
		snap := s.Snapshot()
		if snap.ConsecutiveFailures != step.wantFails {
			t.Fatalf("step %d: ConsecutiveFailures = %d, want %d", i, snap.ConsecutiveFailures, step.wantFails)
		}
		if snap.IsOffline() != step.wantOffline {
			t.Fatalf("step %d: IsOffline = %v, want %v", i, snap.IsOffline(), step.wantOffline)
		}
	}
}
