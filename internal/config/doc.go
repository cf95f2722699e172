// Package config loads application configuration from environment variables
// (DERIVA_ prefix) merged with an optional YAML config file, and resolves
// the data, reports, figures and logs directories.
package config
