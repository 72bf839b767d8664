// Package commands implements the loadprofile command tree.
//
// NewRootCommand returns a fresh tree wired to an optional YAML config file
// (--config), a log level (--log-level) and an optional Prometheus text dump
// (--metrics-file). Every subcommand builds its own registry from the
// resolved configuration, logs through zerolog on stderr and writes results
// to the command's output stream.
package commands
