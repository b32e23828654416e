package future

import (
	"context"
)

// All waits for every future in order and returns their values. It stops at
// the first transport error (including ctx cancellation) and returns it.
func All[T any](ctx context.Context, fs []*Future[T]) ([]T, error) {
	values := make([]T, 0, len(fs))

	for _, f := range fs {
		v, err := f.Get(ctx)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}
