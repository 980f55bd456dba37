// Package stats tracks per-address message statistics for the monitor
// TUI.
package stats

import (
	"sort"
	"sync"
	"time"
)

const (
	// rateWindow is the sliding window used for message rate
	// calculation.
	rateWindow = time.Second
	// recentCapacity bounds the recent-message log.
	recentCapacity = 200
)

// AddressStats holds the counters for a single OSC address.
type AddressStats struct {
	Address      string
	MessageCount uint64
	LastSeen     time.Time
	LastArgs     string // rendered preview of the most recent argument list
}

// Entry is one line of the recent-message log.
type Entry struct {
	Time    time.Time
	Address string
	Args    string
}

// addressState is the mutable tracker state behind an AddressStats
// snapshot.
type addressState struct {
	AddressStats
	window []time.Time
}

// Tracker records decoded messages and answers the monitor's queries.
// All methods are safe for concurrent use; the receive loop records
// while the TUI reads.
type Tracker struct {
	mu        sync.RWMutex
	addresses map[string]*addressState
	recent    []Entry
	total     uint64
	dropped   uint64
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{addresses: make(map[string]*addressState)}
}

// Record notes one message for addr. args is a rendered preview of
// the argument list, kept as the address's most recent payload.
func (t *Tracker) Record(addr, args string) {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.addresses[addr]
	if !ok {
		state = &addressState{AddressStats: AddressStats{Address: addr}}
		t.addresses[addr] = state
	}

	state.MessageCount++
	state.LastSeen = now
	state.LastArgs = args
	state.window = pruneWindow(append(state.window, now), now)

	t.total++
	t.recent = append(t.recent, Entry{Time: now, Address: addr, Args: args})
	if len(t.recent) > recentCapacity {
		t.recent = t.recent[len(t.recent)-recentCapacity:]
	}
}

// RecordDropped notes one datagram that failed to decode.
func (t *Tracker) RecordDropped() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dropped++
}

// Rate returns addr's messages per second over the sliding window.
func (t *Tracker) Rate(addr string) float64 {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.addresses[addr]
	if !ok {
		return 0
	}
	state.window = pruneWindow(state.window, now)
	return float64(len(state.window)) / rateWindow.Seconds()
}

// Snapshot returns the per-address counters sorted by address.
func (t *Tracker) Snapshot() []AddressStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]AddressStats, 0, len(t.addresses))
	for _, state := range t.addresses {
		out = append(out, state.AddressStats)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Address < out[j].Address
	})
	return out
}

// Recent returns up to n of the most recent entries, newest first.
func (t *Tracker) Recent(n int) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.recent) {
		n = len(t.recent)
	}
	out := make([]Entry, n)
	for i := 0; i < n; i++ {
		out[i] = t.recent[len(t.recent)-1-i]
	}
	return out
}

// Totals returns the number of messages recorded and datagrams
// dropped since the last reset.
func (t *Tracker) Totals() (messages, dropped uint64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.total, t.dropped
}

// Reset clears all tracked data.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.addresses = make(map[string]*addressState)
	t.recent = nil
	t.total = 0
	t.dropped = 0
}

// pruneWindow drops timestamps that fell out of the rate window.
func pruneWindow(window []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-rateWindow)
	kept := window[:0]
	for _, ts := range window {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}
