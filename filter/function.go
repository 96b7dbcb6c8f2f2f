package filter

import (
	"context"
	"io"

	kiterrors "github.com/kbukum/shkit/errors"
)

// ArgSpec describes one declared positional argument of a wrapped function.
// It is metadata only; nothing enforces it at call time.
type ArgSpec struct {
	// Type is a free-form type tag, such as "string" or "path".
	Type string
	// N is the declared arity.
	N int
}

// FuncSpec declares the endpoints and argument metadata of a function
// being adapted into a Filter. The zero value means no input, no output
// and no declared arguments.
type FuncSpec struct {
	Input  IoSpec
	Output IoSpec
	Args   []ArgSpec
}

// The four calling shapes a wrapped function can have. Which one applies
// follows from the declared specs: the source is passed whenever the input
// kind is not none; the sink is passed only for stream output, because
// iterator and buffer outputs are returned by the function rather than
// written through a sink.
type (
	// SourceSinkFunc receives both a source and a sink.
	SourceSinkFunc = func(ctx context.Context, src any, dst io.Writer, args ...any) (any, error)
	// SourceFunc receives only a source.
	SourceFunc = func(ctx context.Context, src any, args ...any) (any, error)
	// SinkFunc receives only a sink.
	SinkFunc = func(ctx context.Context, dst io.Writer, args ...any) (any, error)
	// NullaryFunc receives neither handle.
	NullaryFunc = func(ctx context.Context, args ...any) (any, error)
)

// Func adapts caller-supplied logic into Filters. Build one with Wrap,
// then Call it with bound arguments to obtain a Filter stage.
type Func struct {
	spec   FuncSpec
	invoke SourceSinkFunc
}

// Wrap checks that fn has the calling shape its declared specs imply and
// returns the adapter. fn must be one of SourceSinkFunc, SourceFunc,
// SinkFunc or NullaryFunc; anything else is a usage error, as is a shape
// that disagrees with the specs.
func Wrap(fn any, spec FuncSpec) (*Func, error) {
	spec.Input = spec.Input.normalize()
	spec.Output = spec.Output.normalize()

	wantSrc := passSource(spec.Input)
	wantDst := passSink(spec.Output)

	var invoke SourceSinkFunc
	switch f := fn.(type) {
	case SourceSinkFunc:
		if !wantSrc || !wantDst {
			return nil, shapeMismatch(spec, "a source-and-sink function")
		}
		invoke = f
	case SourceFunc:
		if !wantSrc || wantDst {
			return nil, shapeMismatch(spec, "a source-only function")
		}
		invoke = func(ctx context.Context, src any, _ io.Writer, args ...any) (any, error) {
			return f(ctx, src, args...)
		}
	case SinkFunc:
		if wantSrc || !wantDst {
			return nil, shapeMismatch(spec, "a sink-only function")
		}
		invoke = func(ctx context.Context, _ any, dst io.Writer, args ...any) (any, error) {
			return f(ctx, dst, args...)
		}
	case NullaryFunc:
		if wantSrc || wantDst {
			return nil, shapeMismatch(spec, "a function taking neither handle")
		}
		invoke = func(ctx context.Context, _ any, _ io.Writer, args ...any) (any, error) {
			return f(ctx, args...)
		}
	default:
		return nil, kiterrors.Usage("function does not match any known calling shape")
	}

	return &Func{spec: spec, invoke: invoke}, nil
}

// MustWrap is Wrap for statically-known functions; it panics on error.
func MustWrap(fn any, spec FuncSpec) *Func {
	fc, err := Wrap(fn, spec)
	if err != nil {
		panic(err)
	}
	return fc
}

// Spec returns the declared FuncSpec.
func (fc *Func) Spec() FuncSpec { return fc.spec }

// Call binds arguments and returns the resulting Filter. Each invocation
// of the Filter calls the wrapped function with exactly the handles its
// specs call for, followed by the bound arguments.
func (fc *Func) Call(args ...any) *Filter {
	bound := append([]any(nil), args...)
	invoke := fc.invoke
	return New(fc.spec.Input, fc.spec.Output,
		func(ctx context.Context, src any, dst io.Writer) (any, error) {
			return invoke(ctx, src, dst, bound...)
		})
}

// passSource reports whether the source is handed to the function.
func passSource(input IoSpec) bool {
	return input.Kind != KindNone
}

// passSink reports whether the sink is handed to the function. Only stream
// output is pushed through a sink; iterator and buffer outputs are pulled
// via the return value.
func passSink(output IoSpec) bool {
	return output.Kind == KindStream
}

func shapeMismatch(spec FuncSpec, got string) *kiterrors.Error {
	return kiterrors.Usage("function shape does not match its declared specs").
		WithDetail("input_kind", string(spec.Input.Kind)).
		WithDetail("output_kind", string(spec.Output.Kind)).
		WithDetail("got", got)
}
