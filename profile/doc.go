// Package profile provides optional runtime profiling for calltrace.
//
// It wraps [github.com/pkg/profile] behind the "pprof" build tag. Without
// the tag, [Profiler.Start] is a no-op and [Modes] is empty, so the
// profiling flags cost nothing in ordinary builds.
//
//	go build -tags pprof .
//	./calltrace demo --parallel 64 --pprof-mode cpu --pprof-dir /tmp/prof
//	go tool pprof -http=: /tmp/prof/cpu.pprof
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread and trace. Built with the tag, the package also registers
// the [net/http/pprof] handlers on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
