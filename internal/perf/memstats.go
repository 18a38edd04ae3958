package perf

import (
	"runtime"
	"runtime/debug"
	"time"
)

// MemStats is a heap snapshot taken between scenarios.
type MemStats struct {
	HeapInuse   uint64
	HeapObjects uint64
	NumGC       int64
	Pause       time.Duration
}

// MemRecorder reports GC pause time since its previous snapshot.
type MemRecorder struct {
	previousPause time.Duration
}

// Snapshot forces a GC and reads heap and GC statistics.
func (r *MemRecorder) Snapshot() MemStats {
	runtime.GC()

	var mem runtime.MemStats
	var stat debug.GCStats
	runtime.ReadMemStats(&mem)
	debug.ReadGCStats(&stat)

	pause := stat.PauseTotal - r.previousPause
	r.previousPause = stat.PauseTotal

	return MemStats{
		HeapInuse:   mem.HeapInuse,
		HeapObjects: mem.HeapObjects,
		NumGC:       stat.NumGC,
		Pause:       pause,
	}
}
