package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_New_Success(t *testing.T) {
	err := New(CodeUsage, "bad call")
	if err.Code != CodeUsage {
		t.Errorf("expected code %s, got %s", CodeUsage, err.Code)
	}
	if err.Message != "bad call" {
		t.Errorf("expected message 'bad call', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("USAGE should not be retryable")
	}
}

func TestError_New_Retryable(t *testing.T) {
	err := New(CodeTimeout, "timed out")
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestError_ErrorString(t *testing.T) {
	err := Usage("wrong shape")
	s := err.Error()
	if !strings.Contains(s, "USAGE") || !strings.Contains(s, "wrong shape") {
		t.Errorf("unexpected error string: %q", s)
	}
}

func TestError_ErrorString_WithCause(t *testing.T) {
	cause := stderrors.New("broken pipe")
	err := Internal("stage returned a bad value").WithCause(cause)
	s := err.Error()
	if !strings.Contains(s, "cause: broken pipe") {
		t.Errorf("expected cause in error string, got %q", s)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("exec: not found")
	err := ProcessFailed("nosuch", -1, cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestError_SpecMismatch(t *testing.T) {
	err := SpecMismatch("stream", "iterator")
	if err.Code != CodeSpecMismatch {
		t.Errorf("expected SPEC_MISMATCH, got %s", err.Code)
	}
	if err.Details["output_kind"] != "stream" {
		t.Errorf("expected output_kind=stream, got %v", err.Details["output_kind"])
	}
	if err.Details["input_kind"] != "iterator" {
		t.Errorf("expected input_kind=iterator, got %v", err.Details["input_kind"])
	}
}

func TestError_Unsupported(t *testing.T) {
	err := Unsupported("iterator-to-iterator piping")
	if err.Code != CodeUnsupported {
		t.Errorf("expected UNSUPPORTED, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "not supported yet") {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestError_ProcessFailed(t *testing.T) {
	err := ProcessFailed("git", 128, stderrors.New("exit status 128"))
	if err.Details["binary"] != "git" {
		t.Errorf("expected binary=git, got %v", err.Details["binary"])
	}
	if err.Details["exit_code"] != 128 {
		t.Errorf("expected exit_code=128, got %v", err.Details["exit_code"])
	}
}

func TestError_WithDetail(t *testing.T) {
	err := Usage("bad call").WithDetail("arg", 3)
	if err.Details["arg"] != 3 {
		t.Errorf("expected arg=3, got %v", err.Details["arg"])
	}
}

func TestError_WithDetails_Merge(t *testing.T) {
	err := Usage("bad call").WithDetail("a", 1).WithDetails(map[string]any{"b": 2})
	if err.Details["a"] != 1 || err.Details["b"] != 2 {
		t.Errorf("expected merged details, got %v", err.Details)
	}
}

func TestIsUsage(t *testing.T) {
	if !IsUsage(Usage("x")) {
		t.Error("Usage should satisfy IsUsage")
	}
	if !IsUsage(SpecMismatch("stream", "none")) {
		t.Error("SpecMismatch should satisfy IsUsage")
	}
	if IsUsage(Unsupported("x")) {
		t.Error("Unsupported should not satisfy IsUsage")
	}
	if IsUsage(stderrors.New("plain")) {
		t.Error("plain errors should not satisfy IsUsage")
	}
}

func TestIsUsage_Wrapped(t *testing.T) {
	err := fmt.Errorf("running pipeline: %w", Usage("filter needs input"))
	if !IsUsage(err) {
		t.Error("IsUsage should see through wrapping")
	}
}

func TestIsUnsupported_DistinctFromUsage(t *testing.T) {
	err := Unsupported("standalone stream-producing invocation")
	if !IsUnsupported(err) {
		t.Error("expected IsUnsupported")
	}
	if IsUsage(err) {
		t.Error("unsupported must be distinguishable from usage errors")
	}
}

func TestIsInternal(t *testing.T) {
	if !IsInternal(Internal("unreachable")) {
		t.Error("expected IsInternal")
	}
	if IsInternal(Usage("x")) {
		t.Error("usage errors are not internal")
	}
}
