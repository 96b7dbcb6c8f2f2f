// Package logger provides structured logging built on zerolog.
//
// Diagnostics default to stderr so they never mix with pipeline data
// written to stdout by the filter entry points.
package logger
