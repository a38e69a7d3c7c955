// Package cli contains the command line interface for oden.
//
// # Commands
//
//   - build: compile a source file and export the final part as STL
//     (the default command)
//   - watch: build, then rebuild whenever the source file changes
//   - fmt: print the tokens or statements of a source file as text,
//     JSON or YAML
//   - repl: interactive session with completion and signature hints
//   - init: write the current global flags to the configuration file
//   - version: print the version, optionally checked against a constraint
//
// Sources that do not exist relative to the working directory are looked
// up in each --include directory and then in ODEN_PATH.
//
//	oden -s bracket.oden -D width='mm(12)'
//	oden watch -s bracket.oden --ascii
//	oden -I ~/parts fmt json gear
//
// # Configuration
//
// Global flags may be set in a YAML file in the user configuration
// directory ($XDG_CONFIG_HOME/oden/config on Linux). Keys are flag names,
// with hyphens or underscores:
//
//	version: 0.3.0
//	log-level: info
//	include:
//	  - ~/parts
//
// A config.json beside it is read as well. Flags on the command line take
// precedence. The init command writes the file from the current flags.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp layout (Go layout or time constant name)
//   - --log-caller: include caller information
//   - --log-pretty: colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o oden .
//
// The flags are then:
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory (default is the pprof
//     directory in the user cache)
package cli
