// Package config defines the configuration for a blocksim run.
//
// Regardless of how blocksim is started, directly from Go code or as a
// standalone process from the command line, it uses the Config object
// defined in this package to store and forward configuration options. The
// config carries the location measurement table: nodes can only be placed
// in locations that have measured transmission parameters, and population
// construction fails fast on an unmeasured location.
package config
