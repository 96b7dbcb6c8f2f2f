package filter

import (
	"bytes"
	"context"
	"io"

	kiterrors "github.com/kbukum/shkit/errors"
)

// Action is the underlying operation of a Filter.
//
// src carries the input: an io.Reader for stream input, an Iterator for
// iterator input, a []byte for buffer input, and nil when the input kind
// is none. dst is non-nil only for stream output. Iterator and buffer
// outputs are returned as the result value rather than written to dst;
// composition depends on this asymmetry.
type Action func(ctx context.Context, src any, dst io.Writer) (any, error)

// Filter is one pipeline stage: typed input and output endpoints plus the
// action connecting them. Filters are immutable; Pipe builds new ones and
// never touches its operands. A Filter owns no resources across calls;
// sources and sinks are supplied fresh at each invocation, so the same
// Filter is safe to invoke concurrently.
type Filter struct {
	input  IoSpec
	output IoSpec
	action Action
}

// New constructs a Filter from its endpoint specs and action. The action
// must tolerate a nil src when the input kind is none and must write
// nothing when dst is nil.
func New(input, output IoSpec, action Action) *Filter {
	return &Filter{input: input.normalize(), output: output.normalize(), action: action}
}

// Input returns the input endpoint spec.
func (f *Filter) Input() IoSpec { return f.input }

// Output returns the output endpoint spec.
func (f *Filter) Output() IoSpec { return f.output }

// Invoke runs a self-contained filter, one whose input endpoint does not
// require external data, with no source and no sink. For iterator and
// buffer outputs the payload comes back as the result value. For a
// required stream output Invoke would have to hand back a live stream,
// which needs concurrent stage execution; that path is reserved and fails
// with an unsupported error.
func (f *Filter) Invoke(ctx context.Context) (any, error) {
	if f.input.Required() {
		return nil, kiterrors.Usage("filter still requires external input and cannot run standalone")
	}
	switch {
	case f.output.Kind == KindIterator || f.output.Kind == KindBuffer || !f.output.Required():
		return f.action(ctx, nil, nil)
	case f.output.Kind == KindStream:
		return nil, kiterrors.Unsupported("standalone stream-producing invocation")
	default:
		return nil, kiterrors.Internal("no invocation strategy for output kind " + string(f.output.Kind))
	}
}

// Iterate invokes the filter and returns its lazy sequence of values.
// Only valid for iterator-kind output.
func (f *Filter) Iterate(ctx context.Context) (Iterator, error) {
	if f.output.Kind != KindIterator {
		return nil, kiterrors.Usage("filter output is not an iterator").
			WithDetail("output_kind", string(f.output.Kind))
	}
	result, err := f.Invoke(ctx)
	if err != nil {
		return nil, err
	}
	iter, ok := result.(Iterator)
	if !ok {
		return nil, kiterrors.Internal("iterator-kind filter returned a non-iterator value")
	}
	return iter, nil
}

// Pipe joins f to next, producing a new Filter that feeds f's output into
// next's input. The adjoining endpoint kinds must match exactly; nothing
// is coerced. Joining through a none-kind endpoint is meaningless and
// rejected. The result keeps f's input spec and next's output spec.
func (f *Filter) Pipe(next *Filter) (*Filter, error) {
	if f.output.Kind != next.input.Kind {
		return nil, kiterrors.SpecMismatch(string(f.output.Kind), string(next.input.Kind))
	}
	switch f.output.Kind {
	case KindNone:
		return nil, kiterrors.Usage("cannot pipe through a none-kind endpoint")
	case KindStream:
		return New(f.input, next.output, pipeByStream(f.action, next.action)), nil
	case KindIterator:
		// Reserved for a lazy iterator bridge, which needs concurrent
		// stage execution.
		return nil, kiterrors.Unsupported("iterator-to-iterator piping")
	default:
		return nil, kiterrors.Internal("no composition strategy for kind " + string(f.output.Kind))
	}
}

// pipeByStream connects two stream actions through an in-memory buffer.
// TODO this exhausts the left stage, then starts the right one; replacing
// the buffer with concurrent stages joined by a bounded channel would give
// real streaming. Until then the whole left output sits in memory before
// the right stage reads a byte. The buffer is allocated per invocation, so
// the composed Filter stays safe for concurrent use.
func pipeByStream(left, right Action) Action {
	return func(ctx context.Context, src any, dst io.Writer) (any, error) {
		var buf bytes.Buffer
		if _, err := left(ctx, src, &buf); err != nil {
			return nil, err
		}
		return right(ctx, bytes.NewReader(buf.Bytes()), dst)
	}
}
