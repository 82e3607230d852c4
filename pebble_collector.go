package hugegraph

import (
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

// StoreCollector exposes the health of the underlying pebble instance:
// compaction debt, memtable pressure, WAL volume. Register it with the
// process registry alongside the table-layer vectors.
type StoreCollector struct {
	db    *pebble.DB
	descs []storeMetric
}

type storeMetric struct {
	desc  *prometheus.Desc
	kind  prometheus.ValueType
	value func(m *pebble.Metrics) float64
}

func (s *Store) Collector() *StoreCollector {
	gauge := prometheus.GaugeValue
	counter := prometheus.CounterValue
	d := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc("hugegraph_store_"+name, help, nil, nil)
	}
	return &StoreCollector{
		db: s.db,
		descs: []storeMetric{
			{d("compaction_count_total", "Compactions performed"), counter,
				func(m *pebble.Metrics) float64 { return float64(m.Compact.Count) }},
			{d("compaction_estimated_debt_bytes", "Bytes to compact to reach a stable state"), gauge,
				func(m *pebble.Metrics) float64 { return float64(m.Compact.EstimatedDebt) }},
			{d("compaction_in_progress_bytes", "Bytes being compacted currently"), gauge,
				func(m *pebble.Metrics) float64 { return float64(m.Compact.InProgressBytes) }},
			{d("memtable_size_bytes", "Current memtable size"), gauge,
				func(m *pebble.Metrics) float64 { return float64(m.MemTable.Size) }},
			{d("memtable_count", "Current memtable count"), gauge,
				func(m *pebble.Metrics) float64 { return float64(m.MemTable.Count) }},
			{d("wal_files", "Live WAL files"), gauge,
				func(m *pebble.Metrics) float64 { return float64(m.WAL.Files) }},
			{d("wal_size_bytes", "Live WAL data size"), gauge,
				func(m *pebble.Metrics) float64 { return float64(m.WAL.Size) }},
			{d("wal_bytes_written_total", "Physical bytes written to the WAL"), counter,
				func(m *pebble.Metrics) float64 { return float64(m.WAL.BytesWritten) }},
		},
	}
}

func (pc *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range pc.descs {
		ch <- m.desc
	}
}

func (pc *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	metrics := pc.db.Metrics()
	for _, m := range pc.descs {
		ch <- prometheus.MustNewConstMetric(m.desc, m.kind, m.value(metrics))
	}
}
