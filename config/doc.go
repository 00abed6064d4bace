// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the ambient application settings:
// runtime environment and logging level. Demo inputs are fixed literals and
// are deliberately not configurable.
package config
