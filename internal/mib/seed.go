package mib

import (
	"fmt"

	"github.com/danmuck/snmpctl/internal/protocol"
)

// DefaultEntries seeds a simulated edge router. Administrative system-group
// strings and interface aliases are writable; statistics, counters and
// hardware facts are read-only.
func DefaultEntries() map[string]Entry {
	ro := func(v protocol.Value) Entry { return Entry{Value: v} }
	rw := func(v protocol.Value) Entry { return Entry{Value: v, Writable: true} }

	entries := map[string]Entry{
		// System group.
		"1.3.6.1.2.1.1.1.0": ro(protocol.StringValue("Router Model X2000 - High Performance Edge Router")),
		"1.3.6.1.2.1.1.3.0": ro(protocol.TimeTicksValue(0)),
		"1.3.6.1.2.1.1.4.0": rw(protocol.StringValue("admin@example.com")),
		"1.3.6.1.2.1.1.5.0": rw(protocol.StringValue("router-main")),
		"1.3.6.1.2.1.1.6.0": rw(protocol.StringValue("Server Room, Building A, Floor 2")),
		"1.3.6.1.2.1.1.7.0": ro(protocol.IntegerValue(72)),

		// Interfaces group: WAN, LAN and loopback rows.
		"1.3.6.1.2.1.2.1.0":      ro(protocol.IntegerValue(3)),
		"1.3.6.1.2.1.2.2.1.2.1":  ro(protocol.StringValue("eth0")),
		"1.3.6.1.2.1.2.2.1.4.1":  ro(protocol.IntegerValue(1500)),
		"1.3.6.1.2.1.2.2.1.5.1":  ro(protocol.CounterValue(1000000000)),
		"1.3.6.1.2.1.2.2.1.6.1":  ro(protocol.StringValue("00:1B:44:11:3A:B7")),
		"1.3.6.1.2.1.2.2.1.8.1":  ro(protocol.IntegerValue(1)),
		"1.3.6.1.2.1.2.2.1.10.1": ro(protocol.CounterValue(3456789012)),
		"1.3.6.1.2.1.2.2.1.16.1": ro(protocol.CounterValue(2345678901)),
		"1.3.6.1.2.1.2.2.1.18.1": rw(protocol.StringValue("WAN Interface - ISP Connection")),
		"1.3.6.1.2.1.2.2.1.2.2":  ro(protocol.StringValue("eth1")),
		"1.3.6.1.2.1.2.2.1.8.2":  ro(protocol.IntegerValue(1)),
		"1.3.6.1.2.1.2.2.1.10.2": ro(protocol.CounterValue(1876543210)),
		"1.3.6.1.2.1.2.2.1.16.2": ro(protocol.CounterValue(987654321)),
		"1.3.6.1.2.1.2.2.1.18.2": rw(protocol.StringValue("LAN Interface - Internal Network")),
		"1.3.6.1.2.1.2.2.1.2.3":  ro(protocol.StringValue("lo")),
		"1.3.6.1.2.1.2.2.1.8.3":  ro(protocol.IntegerValue(1)),
		"1.3.6.1.2.1.2.2.1.18.3": rw(protocol.StringValue("Loopback Interface")),

		// IP group.
		"1.3.6.1.2.1.4.1.0": ro(protocol.IntegerValue(1)),
		"1.3.6.1.2.1.4.2.0": ro(protocol.IntegerValue(64)),
		"1.3.6.1.2.1.4.3.0": ro(protocol.CounterValue(98765432)),
		"1.3.6.1.2.1.4.6.0": ro(protocol.CounterValue(87654321)),

		// TCP group.
		"1.3.6.1.2.1.6.9.0":  ro(protocol.IntegerValue(42)),
		"1.3.6.1.2.1.6.10.0": ro(protocol.CounterValue(12345678)),
		"1.3.6.1.2.1.6.11.0": ro(protocol.CounterValue(11234567)),

		// UDP group.
		"1.3.6.1.2.1.7.1.0": ro(protocol.CounterValue(3456789)),
		"1.3.6.1.2.1.7.4.0": ro(protocol.CounterValue(2345678)),

		// SNMP group.
		"1.3.6.1.2.1.11.1.0": ro(protocol.CounterValue(54321)),
		"1.3.6.1.2.1.11.2.0": ro(protocol.CounterValue(43210)),
		"1.3.6.1.2.1.11.6.0": ro(protocol.CounterValue(0)),
	}

	// Vendor block with long values to exercise multi-read reassembly.
	for i := 1; i <= 50; i++ {
		oid := fmt.Sprintf("1.3.6.1.4.1.99.1.%d.0", i)
		entries[oid] = ro(protocol.StringValue(fmt.Sprintf(
			"Test OID %d - This is a longer string to help test buffering of large SNMP messages", i)))
	}
	return entries
}
