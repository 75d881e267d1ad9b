// Package profiler records named timing spans and samples runtime counters.
//
// Span recording is compiled in only with the "profile" build tag; without it
// Start returns a no-op and Dump reports ErrDisabled. Spans are written in the
// speedscope "evented" format.
package profiler

import (
	"errors"
	"runtime"
)

var ErrDisabled = errors.New("profiler: built without the profile tag")

// Runtime is a sample of the Go runtime counters.
type Runtime struct {
	HeapBytes  uint64
	Mallocs    uint64
	Goroutines int
	CPUs       int
}

// ReadRuntime samples the counters. It stops the world briefly; do not call
// it every frame.
func ReadRuntime() Runtime {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Runtime{
		HeapBytes:  m.HeapAlloc,
		Mallocs:    m.Mallocs,
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
	}
}

// HeapMB is HeapBytes in mebibytes.
func (r Runtime) HeapMB() float64 { return float64(r.HeapBytes) / (1 << 20) }
