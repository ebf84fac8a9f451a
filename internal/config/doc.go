// Package config loads and validates the host configuration.
//
// Configuration lives in a single algotest.yaml file. Load starts from
// Default and lets the file override fields it names, so a missing file
// is not an error and a partial file keeps the remaining defaults.
package config
