package obs

import "github.com/prometheus/client_golang/prometheus"

// ArenaMetrics tracks the gauges and counters for one arena-shaped
// component (a generic arena, a typed façade, or a buffer pool).
// Construction registers against the default Prometheus registry under
// a name supplied by the caller, one gauge set per named component.
type ArenaMetrics struct {
	capacity prometheus.Gauge
	used     prometheus.Gauge
	count    prometheus.Gauge
	resets   prometheus.Counter
	aborts   prometheus.Counter
}

// NewArenaMetrics registers a metrics set for an arena identified by
// name (e.g. "audio_buffer_pool", "f64_arena"). Registration failures
// (duplicate name) are swallowed and the existing collectors reused,
// since metrics are diagnostic and must never be able to break
// construction of the arena itself.
func NewArenaMetrics(name string) *ArenaMetrics {
	m := &ArenaMetrics{
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arenakit",
			Subsystem: name,
			Name:      "capacity_bytes",
			Help:      "Total byte capacity of the bump region backing this arena.",
		}),
		used: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arenakit",
			Subsystem: name,
			Name:      "used_bytes",
			Help:      "Bytes currently bumped out of the backing region.",
		}),
		count: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arenakit",
			Subsystem: name,
			Name:      "slot_count",
			Help:      "Slots allocated since the last reset.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arenakit",
			Subsystem: name,
			Name:      "resets_total",
			Help:      "Number of Reset calls observed.",
		}),
		aborts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arenakit",
			Subsystem: name,
			Name:      "aborts_total",
			Help:      "Number of fatal contract violations observed.",
		}),
	}

	m.capacity = registerGauge(m.capacity)
	m.used = registerGauge(m.used)
	m.count = registerGauge(m.count)
	m.resets = registerCounter(m.resets)
	m.aborts = registerCounter(m.aborts)

	return m
}

// registerGauge registers g and returns it, or returns the
// already-registered gauge from an earlier NewArenaMetrics("name") call
// for the same subsystem so two arenas sharing a name share one set of
// exported series instead of one silently going dark.
func registerGauge(g prometheus.Gauge) prometheus.Gauge {
	if err := prometheus.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Gauge)
		}
	}
	return g
}

func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
	}
	return c
}

// Observe records a capacity/used/count snapshot.
func (m *ArenaMetrics) Observe(capacity, used, count int32) {
	if m == nil {
		return
	}
	m.capacity.Set(float64(capacity))
	m.used.Set(float64(used))
	m.count.Set(float64(count))
}

// ResetOccurred increments the reset counter.
func (m *ArenaMetrics) ResetOccurred() {
	if m == nil {
		return
	}
	m.resets.Inc()
}

// AbortOccurred increments the abort counter.
func (m *ArenaMetrics) AbortOccurred() {
	if m == nil {
		return
	}
	m.aborts.Inc()
}
