// Package config loads and validates the wayfind application configuration
// from a YAML file.
//
// The configuration is optional: the CLI runs entirely from positional
// arguments and flags, and every field here only supplies defaults. A
// config file looks like:
//
//	map_file: maps/gondor.map
//	log_level: info
//	strategy: heap
//	workers: 4
//
// Validation uses go-playground/validator struct tags; an invalid value
// (unknown log level or strategy, negative worker count) fails the load.
package config
