package idset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    acquireCounter   prometheus.Counter
//	    acquireHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordAcquire(duration time.Duration, ok bool) {
//	    p.acquireCounter.Inc()
//	    // ... record exhaustion state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordAcquire is called after each Acquire operation.
	// duration is the time the scan took, ok is false when the set was
	// exhausted.
	RecordAcquire(duration time.Duration, ok bool)

	// RecordReserve is called after each Reserve operation.
	// err is nil if successful.
	RecordReserve(err error)

	// RecordRelease is called after each Release operation.
	// err is nil if successful.
	RecordRelease(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAcquire(time.Duration, bool) {}
func (NoopMetricsCollector) RecordReserve(error)               {}
func (NoopMetricsCollector) RecordRelease(error)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AcquireCount      atomic.Int64
	AcquireExhausted  atomic.Int64
	AcquireTotalNanos atomic.Int64
	ReserveCount      atomic.Int64
	ReserveErrors     atomic.Int64
	ReleaseCount      atomic.Int64
	ReleaseErrors     atomic.Int64
}

// RecordAcquire implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAcquire(duration time.Duration, ok bool) {
	b.AcquireCount.Add(1)
	b.AcquireTotalNanos.Add(duration.Nanoseconds())
	if !ok {
		b.AcquireExhausted.Add(1)
	}
}

// RecordReserve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReserve(err error) {
	b.ReserveCount.Add(1)
	if err != nil {
		b.ReserveErrors.Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(err error) {
	b.ReleaseCount.Add(1)
	if err != nil {
		b.ReleaseErrors.Add(1)
	}
}

// Stats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) Stats() BasicMetricsStats {
	return BasicMetricsStats{
		AcquireCount:     b.AcquireCount.Load(),
		AcquireExhausted: b.AcquireExhausted.Load(),
		AcquireAvgNanos:  b.avgAcquireNanos(),
		ReserveCount:     b.ReserveCount.Load(),
		ReserveErrors:    b.ReserveErrors.Load(),
		ReleaseCount:     b.ReleaseCount.Load(),
		ReleaseErrors:    b.ReleaseErrors.Load(),
	}
}

func (b *BasicMetricsCollector) avgAcquireNanos() int64 {
	count := b.AcquireCount.Load()
	if count == 0 {
		return 0
	}
	return b.AcquireTotalNanos.Load() / count
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	AcquireCount     int64
	AcquireExhausted int64
	AcquireAvgNanos  int64
	ReserveCount     int64
	ReserveErrors    int64
	ReleaseCount     int64
	ReleaseErrors    int64
}
