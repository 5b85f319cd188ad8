package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by application
	TotalAlloc  uint64 // cumulative bytes allocated
	Sys         uint64 // total bytes obtained from OS
	Mallocs     uint64 // cumulative heap objects allocated
	NumGC       uint32 // number of completed GC cycles
	HeapObjects uint64 // number of allocated heap objects
}

// AllocatedSince returns the bytes allocated between before and s.
func (s MemorySnapshot) AllocatedSince(before MemorySnapshot) uint64 {
	if s.TotalAlloc < before.TotalAlloc {
		return 0
	}
	return s.TotalAlloc - before.TotalAlloc
}

// ObjectsSince returns the heap objects allocated between before and s.
func (s MemorySnapshot) ObjectsSince(before MemorySnapshot) uint64 {
	if s.Mallocs < before.Mallocs {
		return 0
	}
	return s.Mallocs - before.Mallocs
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		TotalAlloc:  m.TotalAlloc,
		Sys:         m.Sys,
		Mallocs:     m.Mallocs,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}
