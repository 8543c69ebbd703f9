// Package config loads detection rules and path exclusions from YAML files.
// It is internal; CLI code maps flags and files into engine configuration.
package config
