// Package cmd implements the oden subcommands.
//
// Each command is a kong command struct whose Run method receives the
// context prepared by the cli package. Commands read sources with the
// search path from [WithSearchPath] and write to the writer from
// [WithOutput].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
