package errors

// Code is a machine-readable error code.
type Code string

// Pipeline-author mistakes. These indicate a programming error at the call
// site, never a runtime condition, and are not retryable.
const (
	// CodeUsage indicates a precondition violation by the pipeline author.
	CodeUsage Code = "USAGE"
	// CodeSpecMismatch indicates two filters were composed across
	// incompatible endpoint kinds. A usage-class code kept distinct so
	// callers can match on it.
	CodeSpecMismatch Code = "SPEC_MISMATCH"
)

// Reserved functionality
const (
	// CodeUnsupported indicates a path that is reserved but not delivered,
	// such as iterator-to-iterator piping.
	CodeUnsupported Code = "UNSUPPORTED"
)

// Internal errors
const (
	// CodeInternal indicates a contract violation inside the kit itself.
	CodeInternal Code = "INTERNAL"
)

// Collaborator failures
const (
	// CodeProcessFailed indicates a subprocess exited nonzero or could not run.
	CodeProcessFailed Code = "PROCESS_FAILED"
	// CodeTimeout indicates an operation exceeded its deadline.
	CodeTimeout Code = "TIMEOUT"
)

var retryableCodes = map[Code]bool{
	CodeTimeout: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code Code) bool {
	return retryableCodes[code]
}
