// Package filter composes shell-like data transformations into pipelines,
// the in-process equivalent of connecting commands with | in a shell.
//
// Every Filter declares the shape of data at its two endpoints with an
// IoSpec: none, stream, iterator or buffer. Two filters compose only when
// the left output kind exactly matches the right input kind; the checks
// happen at composition and invocation time, and violations come back as
// usage errors from the errors package.
//
// Composition through a stream endpoint is materializing: the left stage
// runs to completion into an in-memory buffer before the right stage
// starts. Iterator-to-iterator piping and handing back a live stream from
// a standalone invocation are reserved paths that fail with a distinct
// unsupported error rather than degrading silently.
//
// Plain functions become filters through Wrap/Call. A function's calling
// shape follows from its declared specs: the source is passed for any
// non-none input, but only stream outputs receive a sink; iterator and
// buffer outputs are returned by the function. Downstream composition
// relies on this asymmetry, so the wrapper keeps it explicit.
//
//	emit := filter.MustWrap(func(_ context.Context, dst io.Writer, args ...any) (any, error) {
//	    _, err := io.WriteString(dst, "hello\n")
//	    return nil, err
//	}, filter.FuncSpec{Output: filter.Spec(filter.KindStream)})
//
//	out, err := filter.Slurp(ctx, emit.Call()) // []byte("hello")
package filter
