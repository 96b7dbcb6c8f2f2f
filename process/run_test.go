package process_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	kiterrors "github.com/kbukum/shkit/errors"
	"github.com/kbukum/shkit/process"
)

func TestRunEcho(t *testing.T) {
	result, err := process.Run(context.Background(), process.Command{
		Binary: "echo",
		Args:   []string{"hello", "world"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", result.ExitCode)
	}
	out := strings.TrimSpace(string(result.Stdout))
	if out != "hello world" {
		t.Fatalf("expected 'hello world', got %q", out)
	}
}

func TestRunStdin(t *testing.T) {
	result, err := process.Run(context.Background(), process.Command{
		Binary: "cat",
		Stdin:  strings.NewReader("from stdin"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(result.Stdout)
	if out != "from stdin" {
		t.Fatalf("expected 'from stdin', got %q", out)
	}
}

func TestRunStdoutWriter(t *testing.T) {
	var sb strings.Builder
	result, err := process.Run(context.Background(), process.Command{
		Binary: "echo",
		Args:   []string{"streamed"},
		Stdout: &sb,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(sb.String()) != "streamed" {
		t.Fatalf("expected output in writer, got %q", sb.String())
	}
	if len(result.Stdout) != 0 {
		t.Fatalf("expected no captured stdout when streaming, got %q", result.Stdout)
	}
}

func TestRunExitCode(t *testing.T) {
	result, err := process.Run(context.Background(), process.Command{
		Binary: "sh",
		Args:   []string{"-c", "exit 42"},
	})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if result.ExitCode != 42 {
		t.Fatalf("expected exit code 42, got %d", result.ExitCode)
	}
	if !kiterrors.IsCode(err, kiterrors.CodeProcessFailed) {
		t.Fatalf("expected PROCESS_FAILED, got %v", err)
	}
}

func TestRunStderrDetail(t *testing.T) {
	_, err := process.Run(context.Background(), process.Command{
		Binary: "sh",
		Args:   []string{"-c", "echo oops >&2; exit 1"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var kerr *kiterrors.Error
	if !errors.As(err, &kerr) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if kerr.Details["stderr"] != "oops" {
		t.Fatalf("expected stderr detail 'oops', got %v", kerr.Details["stderr"])
	}
}

func TestRunMissingBinary(t *testing.T) {
	_, err := process.Run(context.Background(), process.Command{})
	if !kiterrors.IsUsage(err) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestRunContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := process.Run(ctx, process.Command{
		Binary:      "sleep",
		Args:        []string{"10"},
		GracePeriod: 200 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected error for canceled process")
	}
	if !kiterrors.IsCode(err, kiterrors.CodeTimeout) {
		t.Fatalf("expected TIMEOUT, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("process was not killed promptly, took %v", elapsed)
	}
}
