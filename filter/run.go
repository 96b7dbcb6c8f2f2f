package filter

import (
	"bytes"
	"context"
	"io"
	"os"

	kiterrors "github.com/kbukum/shkit/errors"
)

// slurpStage is the fixed terminal stage Slurp pipes into: read the whole
// upstream stream, strip every trailing newline. Same behavior as $(...)
// command substitution in the shell.
var slurpStage = New(Spec(KindStream), Spec(KindBuffer),
	func(_ context.Context, src any, _ io.Writer) (any, error) {
		data, err := io.ReadAll(src.(io.Reader))
		if err != nil {
			return nil, err
		}
		return bytes.TrimRight(data, "\n"), nil
	})

// Slurp runs a stream-producing pipeline and captures its output as a byte
// buffer with all trailing newlines stripped.
func Slurp(ctx context.Context, f *Filter) ([]byte, error) {
	if f.Output().Kind != KindStream {
		return nil, kiterrors.Usage("slurp needs a stream-producing filter").
			WithDetail("output_kind", string(f.Output().Kind))
	}
	composed, err := f.Pipe(slurpStage)
	if err != nil {
		return nil, err
	}
	result, err := composed.Invoke(ctx)
	if err != nil {
		return nil, err
	}
	out, ok := result.([]byte)
	if !ok {
		return nil, kiterrors.Internal("slurp stage returned a non-buffer value")
	}
	return out, nil
}

// Run executes a self-contained stream-producing pipeline, writing its
// output to w. The sink is an explicit parameter so callers and tests can
// substitute any writer for the process's stdout.
func Run(ctx context.Context, f *Filter, w io.Writer) error {
	if f.Input().Required() {
		return kiterrors.Usage("filter still requires external input and cannot run standalone")
	}
	if f.Output().Kind != KindStream {
		return kiterrors.Usage("filter does not produce a stream").
			WithDetail("output_kind", string(f.Output().Kind))
	}
	_, err := f.action(ctx, nil, w)
	return err
}

// ToStdout runs the pipeline with output directed to the process's stdout.
func ToStdout(ctx context.Context, f *Filter) error {
	return Run(ctx, f, os.Stdout)
}
