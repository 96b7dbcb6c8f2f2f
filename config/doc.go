// Package config loads tool configuration from YAML files, environment
// variables and .env files, in that order of precedence.
package config
