package segkit

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting container metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors may be shared by many containers, so implementations must be
// safe for concurrent use even though the containers themselves are not.
type MetricsCollector interface {
	// RecordBlockAllocated is called after a new block has been appended to a
	// container's directory. bytes is capacity * sizeof(element).
	RecordBlockAllocated(capacity int, bytes int64)

	// RecordRelease is called when a container releases its blocks on Close.
	RecordRelease(blocks int, bytes int64)

	// RecordKeyedInsert is called after each KeyedList.InsertOrGet.
	// created reports whether a new entry was appended.
	RecordKeyedInsert(created bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBlockAllocated(int, int64) {}
func (NoopMetricsCollector) RecordRelease(int, int64)        {}
func (NoopMetricsCollector) RecordKeyedInsert(bool)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BlocksAllocated atomic.Int64
	BytesAllocated  atomic.Int64
	BlocksReleased  atomic.Int64
	BytesReleased   atomic.Int64
	KeyedInserts    atomic.Int64
	KeyedCreated    atomic.Int64
}

// RecordBlockAllocated implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBlockAllocated(_ int, bytes int64) {
	b.BlocksAllocated.Add(1)
	b.BytesAllocated.Add(bytes)
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(blocks int, bytes int64) {
	b.BlocksReleased.Add(int64(blocks))
	b.BytesReleased.Add(bytes)
}

// RecordKeyedInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordKeyedInsert(created bool) {
	b.KeyedInserts.Add(1)
	if created {
		b.KeyedCreated.Add(1)
	}
}

// LiveBlocks returns allocated minus released blocks.
func (b *BasicMetricsCollector) LiveBlocks() int64 {
	return b.BlocksAllocated.Load() - b.BlocksReleased.Load()
}

// LiveBytes returns allocated minus released bytes.
func (b *BasicMetricsCollector) LiveBytes() int64 {
	return b.BytesAllocated.Load() - b.BytesReleased.Load()
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	BlocksAllocated int64
	BytesAllocated  int64
	BlocksReleased  int64
	BytesReleased   int64
	KeyedInserts    int64
	KeyedCreated    int64
	KeyedHitRatio   float64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BlocksAllocated: b.BlocksAllocated.Load(),
		BytesAllocated:  b.BytesAllocated.Load(),
		BlocksReleased:  b.BlocksReleased.Load(),
		BytesReleased:   b.BytesReleased.Load(),
		KeyedInserts:    b.KeyedInserts.Load(),
		KeyedCreated:    b.KeyedCreated.Load(),
		KeyedHitRatio:   b.keyedHitRatio(),
	}
}

// keyedHitRatio is the share of InsertOrGet calls that found an existing entry.
func (b *BasicMetricsCollector) keyedHitRatio() float64 {
	inserts := b.KeyedInserts.Load()
	if inserts == 0 {
		return 0
	}
	return float64(inserts-b.KeyedCreated.Load()) / float64(inserts)
}
