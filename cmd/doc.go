// Package cmd implements the sheetcal command-line interface.
//
// The CLI provides the following commands:
//   - sync: run a single synchronization pass and exit
//   - serve: run as a daemon, synchronizing on a schedule
//   - version: print version information
//
// Running sheetcal without a subcommand behaves like "sync".
package cmd
