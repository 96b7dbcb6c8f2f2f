// Package observability provides OpenTelemetry tracing and metrics helpers
// for instrumenting pipeline stages and subprocess execution.
package observability
