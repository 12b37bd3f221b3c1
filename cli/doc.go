// Package cli contains the command line interface for calltrace.
//
// # Usage
//
//	calltrace [flags] [demo] [--parallel N] [--color MODE] [--legacy-parens]
//	calltrace [flags] resolve SITE...
//	calltrace [flags] init [--force] [--output FILE]
//
// The demo command is the default. Every command resolves against the
// attachment documents given with --attach, or else the default document in
// the user configuration directory, or else the built-in attachments that
// init writes out.
//
// # Flag Defaults
//
// Flag defaults are read from config.yaml (or config.yml, config.json) in
// the user configuration directory:
//
//	log:
//	  level: debug
//	  pretty: false
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp layout (RFC3339, kitchen, ms, none, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorize text output
//
// Diagnostics are written to standard error; trace lines to standard output.
//
// # Profiling Options
//
//   - --pprof-mode: profiling mode (see [profile.Modes])
//   - --pprof-dir: profile output directory
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
package cli
