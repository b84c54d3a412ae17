// Package profile starts optional runtime profiling for dotenvgen.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//	dotenvgen --pprof-mode cpu build
//
// Without the tag [Modes] is empty and every [Config] starts a no-op
// profiler, so callers never need to check the build mode.
//
// Profiles are written by [github.com/pkg/profile] to the configured
// directory, one file per mode (cpu.pprof, mem.pprof, ...), and can be read
// with go tool pprof:
//
//	go tool pprof -http=: ~/.cache/dotenvgen/pprof/cpu.pprof
package profile
