// Package mib holds the management information base the agent serves:
// a keyed table of typed entries with per-entry write permission.
package mib

import (
	"time"

	"github.com/danmuck/snmpctl/internal/protocol"
)

// OIDSysUpTime is the entry AdvanceTime refreshes.
const OIDSysUpTime = "1.3.6.1.2.1.1.3.0"

// Entry is one stored value plus its write permission.
type Entry struct {
	Value    protocol.Value
	Writable bool
}

// Store is the value-store boundary the agent dispatches against.
// Implementations are not required to be safe for concurrent use; the agent
// serializes all access, including its multi-item validate-then-apply
// sequences, under a single lock. A store-internal lock could not widen to
// that sequence, so none is expected here.
type Store interface {
	// Lookup returns the entry bound to oid, if any.
	Lookup(oid string) (Entry, bool)
	// Put replaces the value of an existing entry, keeping its permission.
	// It reports false when no entry exists for oid.
	Put(oid string, v protocol.Value) bool
	// AdvanceTime refreshes the store's elapsed-time entry so consecutive
	// queries observe non-decreasing uptime.
	AdvanceTime()
}

// InmemoryStore is a map-backed Store seeded at construction.
type InmemoryStore struct {
	entries map[string]Entry
	started time.Time
}

var _ Store = (*InmemoryStore)(nil)

// NewInmemoryStore copies entries into a fresh store and starts its uptime
// clock.
func NewInmemoryStore(entries map[string]Entry) *InmemoryStore {
	owned := make(map[string]Entry, len(entries))
	for oid, entry := range entries {
		owned[oid] = entry
	}
	return &InmemoryStore{entries: owned, started: time.Now()}
}

func (s *InmemoryStore) Lookup(oid string) (Entry, bool) {
	entry, ok := s.entries[oid]
	return entry, ok
}

func (s *InmemoryStore) Put(oid string, v protocol.Value) bool {
	entry, ok := s.entries[oid]
	if !ok {
		return false
	}
	entry.Value = v
	s.entries[oid] = entry
	return true
}

// AdvanceTime rewrites sysUpTime from the monotonic clock, in hundredths of
// a second since construction.
func (s *InmemoryStore) AdvanceTime() {
	entry, ok := s.entries[OIDSysUpTime]
	if !ok {
		return
	}
	ticks := uint64(time.Since(s.started) / (10 * time.Millisecond))
	if ticks > uint64(^uint32(0)) {
		ticks = uint64(^uint32(0))
	}
	entry.Value = protocol.TimeTicksValue(uint32(ticks))
	s.entries[OIDSysUpTime] = entry
}

// Len reports the number of entries held.
func (s *InmemoryStore) Len() int {
	return len(s.entries)
}
