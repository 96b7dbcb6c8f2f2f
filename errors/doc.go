// Package errors provides unified error handling for the kit.
// It implements a structured error type with machine-readable codes that
// separate caller mistakes (usage, spec mismatch) from reserved paths
// (unsupported) and internal contract violations.
package errors
