package observability

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snmpctl",
			Subsystem: "agent",
			Name:      "requests_total",
			Help:      "Requests handled, by pdu kind and result code.",
		},
		[]string{"pdu", "code"},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snmpctl",
			Subsystem: "agent",
			Name:      "decode_failures_total",
			Help:      "Connections dropped before a response, by stage.",
		},
		[]string{"stage"},
	)
	activeConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snmpctl",
			Subsystem: "agent",
			Name:      "active_connections",
			Help:      "Connections currently being handled.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestsTotal, decodeFailures, activeConnections)
	})
}

// RecordRequest counts one dispatched request by pdu kind and result code.
func RecordRequest(pdu string, code byte) {
	RegisterMetrics()
	requestsTotal.WithLabelValues(pdu, fmt.Sprintf("%d", code)).Inc()
}

// RecordDecodeFailure counts one connection dropped during framing or
// message decode.
func RecordDecodeFailure(stage string) {
	RegisterMetrics()
	decodeFailures.WithLabelValues(stage).Inc()
}

// ConnectionOpened and ConnectionClosed track the active-connection gauge.
func ConnectionOpened() {
	RegisterMetrics()
	activeConnections.Inc()
}

func ConnectionClosed() {
	activeConnections.Dec()
}
