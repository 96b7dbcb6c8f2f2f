package filter

import "context"

// Iterator provides pull-based sequential access to the values produced by
// an iterator-kind filter.
type Iterator interface {
	// Next returns the next value. Returns (nil, false, nil) when exhausted.
	Next(ctx context.Context) (any, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// FromSlice returns an Iterator over items.
func FromSlice(items []any) Iterator {
	return &sliceIter{items: items}
}

// Collect drains iter, closes it, and returns every value.
func Collect(ctx context.Context, iter Iterator) ([]any, error) {
	defer iter.Close()
	var result []any
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

type sliceIter struct {
	items []any
	index int
}

func (it *sliceIter) Next(_ context.Context) (any, bool, error) {
	if it.index >= len(it.items) {
		return nil, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter) Close() error { return nil }
