// Package config loads generation run profiles for the cssrand CLI from
// YAML or JSON files. A profile names the value kind to generate, the
// sample count, an optional deterministic seed, and the output format.
package config
