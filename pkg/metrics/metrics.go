// Package metrics exports colframe table activity and benchmark timings as
// Prometheus metrics.
//
// # Basic Usage
//
//	collector := metrics.NewCollector()
//	table, err := columnar.NewTable(schema,
//	    columnar.WithName("numeric"),
//	    columnar.WithObserver(collector))
//
//	timer := metrics.NewTimer("copy_insert")
//	insertRows(table)
//	metrics.RecordPhase("copy_insert", timer.Stop())
//
// Metrics are registered with the default Prometheus registry and served by
// Handler.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ajitpratap0/colframe/pkg/columnar"
)

var (
	// RowsAppended counts rows added to tables.
	// Labels: table, mode (copy/consume)
	RowsAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colframe_rows_appended_total",
			Help: "Total number of rows appended to tables",
		},
		[]string{"table", "mode"},
	)

	// Reallocations counts storage reallocations.
	// Labels: table
	Reallocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colframe_reallocations_total",
			Help: "Total number of table storage reallocations",
		},
		[]string{"table"},
	)

	// CapacityRows tracks the current capacity of each table in rows
	CapacityRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "colframe_capacity_rows",
			Help: "Current table capacity in rows",
		},
		[]string{"table"},
	)

	// PhaseLatency tracks how long each benchmark phase took, in seconds.
	// Labels: phase
	PhaseLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "colframe_phase_latency_seconds",
			Help: "Benchmark phase duration in seconds",
			Buckets: []float64{
				0.001, // 1ms
				0.01,  // 10ms
				0.1,   // 100ms
				0.5,
				1,
				5,
				10,
				30,
			},
		},
		[]string{"phase"},
	)

	// Throughput tracks rows per second of the last completed phase.
	// Labels: phase
	Throughput = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "colframe_throughput_rows_per_second",
			Help: "Rows per second of the last completed phase",
		},
		[]string{"phase"},
	)

	// ResidentMemory tracks process RSS sampled after each phase
	ResidentMemory = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "colframe_process_resident_memory_bytes",
			Help: "Resident set size of the process sampled after each phase",
		},
	)
)

// Collector records table activity into the package metrics. It implements
// columnar.Observer and is safe for concurrent use. A nil *Collector records
// nothing.
type Collector struct {
	mu      sync.Mutex
	grows   map[string]int
	started time.Time
}

var _ columnar.Observer = (*Collector)(nil)

// NewCollector creates a collector
func NewCollector() *Collector {
	return &Collector{
		grows:   make(map[string]int),
		started: time.Now(),
	}
}

// OnGrow records a reallocation and the new capacity
func (c *Collector) OnGrow(table string, from, to int) {
	if c == nil {
		return
	}
	Reallocations.WithLabelValues(table).Inc()
	CapacityRows.WithLabelValues(table).Set(float64(to))

	c.mu.Lock()
	c.grows[table]++
	c.mu.Unlock()
}

// OnAppend records appended rows
func (c *Collector) OnAppend(table string, mode columnar.Mode, rows int) {
	if c == nil || rows <= 0 {
		return
	}
	RowsAppended.WithLabelValues(table, mode.String()).Add(float64(rows))
}

// Reallocations returns how many reallocations this collector has seen for
// table
func (c *Collector) Reallocations(table string) int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grows[table]
}

// Uptime returns the time since the collector was created
func (c *Collector) Uptime() time.Duration {
	if c == nil {
		return 0
	}
	return time.Since(c.started)
}

// RecordPhase observes the duration of a benchmark phase
func RecordPhase(phase string, d time.Duration) {
	PhaseLatency.WithLabelValues(phase).Observe(d.Seconds())
}

// Timer provides a simple timing mechanism for measuring operation durations.
type Timer struct {
	start time.Time
	name  string
}

// NewTimer creates a new timer and starts timing immediately.
func NewTimer(name string) *Timer {
	return &Timer{
		start: time.Now(),
		name:  name,
	}
}

// Name returns the timer's name
func (t *Timer) Name() string { return t.name }

// Stop returns the elapsed duration since creation. It can be called more
// than once.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}

// ThroughputTracker counts rows for one phase and reports rows per second.
// Safe for concurrent use.
type ThroughputTracker struct {
	mu        sync.Mutex
	count     int64
	lastReset time.Time
	phase     string
}

// NewThroughputTracker creates a tracker for phase
func NewThroughputTracker(phase string) *ThroughputTracker {
	return &ThroughputTracker{
		lastReset: time.Now(),
		phase:     phase,
	}
}

// Increment adds n to the row count
func (t *ThroughputTracker) Increment(n int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count += n
}

// GetAndReset calculates rows per second since the last reset, updates the
// Throughput gauge, and resets the counter.
func (t *ThroughputTracker) GetAndReset() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := time.Since(t.lastReset).Seconds()
	if elapsed == 0 {
		return 0
	}

	throughput := float64(t.count) / elapsed

	t.count = 0
	t.lastReset = time.Now()

	Throughput.WithLabelValues(t.phase).Set(throughput)

	return throughput
}
