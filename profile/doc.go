// Package profile provides optional runtime profiling for the oden compiler.
//
// This package integrates [github.com/pkg/profile] with conditional
// compilation. Profiling must be enabled at build time using the "pprof"
// build tag. Without it, every operation is a no-op.
//
// # Available Profiling Modes
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	defer p.Start().Stop()
//
// Profiling a large model build from the command line:
//
//	go build -tags pprof .
//	./oden build -s gear.oden --pprof-mode cpu
//	go tool pprof -http=: ~/.cache/oden/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
