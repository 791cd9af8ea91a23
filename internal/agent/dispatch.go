package agent

import (
	"github.com/danmuck/snmpctl/internal/protocol"
)

// handleGet resolves every requested oid or none: a single missing oid
// yields NoSuchName with an empty binding list, never a partial result.
// Duplicated oids are answered once per occurrence, in request order.
func (a *Agent) handleGet(req *protocol.GetRequest) *protocol.GetResponse {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.store.AdvanceTime()
	bindings := make([]protocol.Binding, 0, len(req.OIDs))
	for _, oid := range req.OIDs {
		entry, ok := a.store.Lookup(oid)
		if !ok {
			return &protocol.GetResponse{RequestID: req.RequestID, Code: protocol.NoSuchName}
		}
		bindings = append(bindings, protocol.Binding{OID: oid, Value: entry.Value})
	}
	return &protocol.GetResponse{RequestID: req.RequestID, Code: protocol.NoError, Bindings: bindings}
}

// handleSet validates every item before applying any. The first failing
// item, in request order, selects the result code: NotWritable for an
// existing read-only oid, BadValue for an absent oid or a type mismatch.
// On failure nothing is written.
func (a *Agent) handleSet(req *protocol.SetRequest) *protocol.GetResponse {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, b := range req.Bindings {
		entry, ok := a.store.Lookup(b.OID)
		if !ok {
			return &protocol.GetResponse{RequestID: req.RequestID, Code: protocol.BadValue}
		}
		if !entry.Writable {
			return &protocol.GetResponse{RequestID: req.RequestID, Code: protocol.NotWritable}
		}
		if entry.Value.Type != b.Value.Type {
			return &protocol.GetResponse{RequestID: req.RequestID, Code: protocol.BadValue}
		}
	}

	applied := make([]protocol.Binding, 0, len(req.Bindings))
	for _, b := range req.Bindings {
		a.store.Put(b.OID, b.Value)
		entry, _ := a.store.Lookup(b.OID)
		applied = append(applied, protocol.Binding{OID: b.OID, Value: entry.Value})
	}
	return &protocol.GetResponse{RequestID: req.RequestID, Code: protocol.NoError, Bindings: applied}
}
