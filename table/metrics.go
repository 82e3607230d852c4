package table

import "github.com/prometheus/client_golang/prometheus"

var AllocAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "hugegraph",
	Subsystem: "counters",
	Name:      "alloc_attempts",
}, []string{"type"})

var AllocFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "hugegraph",
	Subsystem: "counters",
	Name:      "alloc_failures",
}, []string{"type"})

var IndexLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "hugegraph",
	Subsystem: "index",
	Name:      "lookups",
}, []string{"table", "kind"})
