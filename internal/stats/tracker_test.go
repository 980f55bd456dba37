package stats

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTracker_Record(t *testing.T) {
	tr := NewTracker()

	tr.Record("/a", "1")
	tr.Record("/a", "2")
	tr.Record("/b", "x")

	snap := tr.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Snapshot() has %d addresses, want 2", len(snap))
	}
	// Snapshot is sorted by address.
	if snap[0].Address != "/a" || snap[1].Address != "/b" {
		t.Errorf("Snapshot() order = %s, %s; want /a, /b", snap[0].Address, snap[1].Address)
	}
	if snap[0].MessageCount != 2 {
		t.Errorf("/a count = %d, want 2", snap[0].MessageCount)
	}
	if snap[0].LastArgs != "2" {
		t.Errorf("/a LastArgs = %q, want the most recent preview", snap[0].LastArgs)
	}
	if snap[0].LastSeen.IsZero() {
		t.Error("/a LastSeen is zero")
	}

	messages, dropped := tr.Totals()
	if messages != 3 || dropped != 0 {
		t.Errorf("Totals() = %d, %d; want 3, 0", messages, dropped)
	}
}

func TestTracker_RecordDropped(t *testing.T) {
	tr := NewTracker()
	tr.RecordDropped()
	tr.RecordDropped()

	if _, dropped := tr.Totals(); dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
}

func TestTracker_Rate(t *testing.T) {
	tr := NewTracker()

	if got := tr.Rate("/none"); got != 0 {
		t.Errorf("Rate() of unknown address = %g, want 0", got)
	}

	for i := 0; i < 5; i++ {
		tr.Record("/a", "")
	}
	// All five records happened just now, well inside the window.
	if got := tr.Rate("/a"); got != 5 {
		t.Errorf("Rate() = %g, want 5", got)
	}
}

func TestTracker_Recent(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 5; i++ {
		tr.Record("/a", fmt.Sprintf("%d", i))
	}

	recent := tr.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("Recent(3) returned %d entries", len(recent))
	}
	// Newest first.
	if recent[0].Args != "4" || recent[2].Args != "2" {
		t.Errorf("Recent(3) = %v, want newest first", recent)
	}

	if got := tr.Recent(100); len(got) != 5 {
		t.Errorf("Recent(100) returned %d entries, want all 5", len(got))
	}
}

func TestTracker_RecentIsBounded(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < recentCapacity+50; i++ {
		tr.Record("/a", "")
	}
	if got := tr.Recent(recentCapacity + 50); len(got) != recentCapacity {
		t.Errorf("recent log holds %d entries, want at most %d", len(got), recentCapacity)
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	tr.Record("/a", "")
	tr.RecordDropped()
	tr.Reset()

	if snap := tr.Snapshot(); len(snap) != 0 {
		t.Errorf("Snapshot() after Reset = %v, want empty", snap)
	}
	messages, dropped := tr.Totals()
	if messages != 0 || dropped != 0 {
		t.Errorf("Totals() after Reset = %d, %d; want 0, 0", messages, dropped)
	}
}

func TestTracker_ConcurrentAccess(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Record("/a", "")
				tr.Rate("/a")
				tr.Snapshot()
				tr.Recent(10)
			}
		}()
	}
	wg.Wait()

	if messages, _ := tr.Totals(); messages != 400 {
		t.Errorf("Totals() = %d, want 400", messages)
	}
}

func TestPruneWindow(t *testing.T) {
	now := time.Now()
	window := []time.Time{
		now.Add(-2 * time.Second), // expired
		now.Add(-500 * time.Millisecond),
		now,
	}
	if got := pruneWindow(window, now); len(got) != 2 {
		t.Errorf("pruneWindow() kept %d timestamps, want 2", len(got))
	}
}
