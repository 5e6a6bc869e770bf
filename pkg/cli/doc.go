// Package cli implements the cssrand command-line interface.
//
// Commands:
//   - generate: print random CSS value fragments with their decoded values
//   - corpus: write generated fragments as a fuzz seed corpus directory
//   - version: print build metadata
//
// Runs are reproducible when --seed (or a profile seed) is given; otherwise
// the generators draw from the process-global random source.
package cli
