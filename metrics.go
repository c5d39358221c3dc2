package altdeque

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Stats counts the expensive, amortized events in a Deque's life. Stats are
// always collected.
type Stats struct {
	// Grows and Shrinks count buffer reallocations. Giving the buffer up,
	// with Release or IntoSlice, counts as a shrink.
	Grows   int
	Shrinks int
	// StackFlips counts pops that had to move one stack over to the other
	// side first.
	StackFlips int
	// Rearrangements counts MakeContiguous calls that moved elements.
	Rearrangements int
}

// Stats returns a snapshot of the Deque's counters.
func (d *Deque[T]) Stats() Stats { return d.stats }

// ResetStats sets every counter back to zero.
func (d *Deque[T]) ResetStats() { d.stats = Stats{} }

// Metrics exports Stats to Prometheus. One Metrics can be shared by any
// number of deques through WithMetrics; its counters then add up the events
// of all of them, and the capacity gauge their combined capacity.
type Metrics struct {
	reallocations  *prometheus.CounterVec
	stackFlips     prometheus.Counter
	rearrangements prometheus.Counter
	capacity       prometheus.Gauge
}

// NewMetrics creates the deque metrics and registers them with reg. name
// becomes the value of the "deque" label of every metric.
func NewMetrics(reg prometheus.Registerer, name string) (*Metrics, error) {
	labels := prometheus.Labels{"deque": name}
	m := &Metrics{
		reallocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "altdeque",
			Name:        "reallocations_total",
			ConstLabels: labels,
			Help:        "Total number of buffer reallocations, by direction",
		}, []string{"direction"}),
		stackFlips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "altdeque",
			Name:        "stack_flips_total",
			ConstLabels: labels,
			Help:        "Total number of pops that moved a whole stack to the other side",
		}),
		rearrangements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "altdeque",
			Name:        "rearrangements_total",
			ConstLabels: labels,
			Help:        "Total number of in-place rearrangements into a contiguous run",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "altdeque",
			Name:        "capacity",
			ConstLabels: labels,
			Help:        "Combined buffer capacity in elements",
		}),
	}

	for _, c := range []prometheus.Collector{m.reallocations, m.stackFlips, m.rearrangements, m.capacity} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) recordRealloc(oldCap, newCap int, unbounded bool) {
	if m == nil {
		return
	}
	direction := "grow"
	if newCap < oldCap {
		direction = "shrink"
	}
	m.reallocations.WithLabelValues(direction).Inc()
	m.addCapacity(newCap-oldCap, unbounded)
}

// addCapacity adds delta to the capacity gauge. Unbounded capacities of
// zero-sized types would swamp the sum, so they are left out.
func (m *Metrics) addCapacity(delta int, unbounded bool) {
	if m != nil && !unbounded && delta != 0 {
		m.capacity.Add(float64(delta))
	}
}

func (m *Metrics) recordFlip() {
	if m != nil {
		m.stackFlips.Inc()
	}
}

func (m *Metrics) recordRearrange() {
	if m != nil {
		m.rearrangements.Inc()
	}
}

func (d *Deque[T]) recordRealloc(oldCap, newCap int) {
	if oldCap == newCap {
		return
	}
	if newCap > oldCap {
		d.stats.Grows++
	} else {
		d.stats.Shrinks++
	}
	d.opts.metrics.recordRealloc(oldCap, newCap, d.buf.Unbounded())
	if l := d.opts.logger; l != nil && l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("deque buffer reallocated",
			"old_capacity", oldCap,
			"new_capacity", newCap,
			"len", d.Len())
	}
}

func (d *Deque[T]) recordFlip() {
	d.stats.StackFlips++
	d.opts.metrics.recordFlip()
}

func (d *Deque[T]) recordRearrange() {
	d.stats.Rearrangements++
	d.opts.metrics.recordRearrange()
}
