package process

import (
	"context"
	"io"

	"github.com/kbukum/shkit/filter"
)

// ExecFilter builds a stream-to-stream pipeline stage from a words
// template. Each invocation runs the command fresh: the stage's source
// becomes the process stdin and its stdout streams into the stage's sink.
// The input is optional, so an exec stage can also open a pipeline with the
// command reading an empty stdin.
func ExecFilter(format string, args ...any) (*filter.Filter, error) {
	cmd, err := FromTemplate(format, args...)
	if err != nil {
		return nil, err
	}
	action := func(ctx context.Context, src any, dst io.Writer) (any, error) {
		invocation := cmd
		if src != nil {
			invocation.Stdin = src.(io.Reader)
		}
		invocation.Stdout = dst
		_, err := Run(ctx, invocation)
		return nil, err
	}
	return filter.New(filter.Optional(filter.KindStream), filter.Spec(filter.KindStream), action), nil
}
