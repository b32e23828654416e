package await

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakubrpawlowski/rop-starter-pack/pkg/rop"
	"github.com/jakubrpawlowski/rop-starter-pack/pkg/rop/future"
)

type pipeErr struct {
	Code string
}

func (e pipeErr) Error() string {
	return e.Code
}

func (pipeErr) FromFault(cause error) pipeErr {
	return pipeErr{Code: "fault: " + cause.Error()}
}

func toPipeErr(cause error) pipeErr {
	return pipeErr{Code: cause.Error()}
}

func okFuture[T any](v T) *future.Future[rop.Result[T, pipeErr]] {
	return future.Of(rop.Ok[T, pipeErr](v))
}

func errFuture[T any](code string) *future.Future[rop.Result[T, pipeErr]] {
	return future.Of(rop.Err[T](pipeErr{Code: code}))
}

func TestGoSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := Go(ctx, func(ctx context.Context) (int, error) { return 3, nil }, toPipeErr)

	r, err := d.Get(ctx)
	require.NoError(t, err)
	require.True(t, r.IsOk())
	assert.Equal(t, 3, r.Value())
}

func TestGoReturnedError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := Go(ctx, func(ctx context.Context) (int, error) {
		return 0, errors.New("backend down")
	}, toPipeErr)

	r, err := d.Get(ctx)
	require.NoError(t, err)
	require.True(t, r.IsErr())
	assert.Equal(t, "backend down", r.Err().Code)
}

func TestGoPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := Go(ctx, func(ctx context.Context) (int, error) {
		panic("nil map write")
	}, toPipeErr)

	r, err := d.Get(ctx)
	require.NoError(t, err)
	require.True(t, r.IsErr())
	assert.Contains(t, r.Err().Code, "nil map write")
}

func TestGoCancellationPropagates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := Go(ctx, func(ctx context.Context) (int, error) {
		return 0, context.Canceled
	}, toPipeErr)

	_, err := d.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGoResultPassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := GoResult(ctx, func(ctx context.Context) (rop.Result[int, pipeErr], error) {
		return rop.Err[int](pipeErr{Code: "domain"}), nil
	}, toPipeErr)

	r, err := d.Get(ctx)
	require.NoError(t, err)
	require.True(t, r.IsErr())
	assert.Equal(t, "domain", r.Err().Code)
}

func TestGoResultPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := GoResult(ctx, func(ctx context.Context) (rop.Result[int, pipeErr], error) {
		panic(errors.New("corrupt state"))
	}, toPipeErr)

	r, err := d.Get(ctx)
	require.NoError(t, err)
	require.True(t, r.IsErr())
	assert.Equal(t, "corrupt state", r.Err().Code)
}

func TestMapTransforms(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := Map(ctx, okFuture(21), func(_ context.Context, n int) int { return n * 2 })

	r, err := d.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, rop.Ok[int, pipeErr](42), r)
}

func TestMapSkippedOnErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls int32
	d := Map(ctx, errFuture[int]("upstream"), func(_ context.Context, n int) int {
		atomic.AddInt32(&calls, 1)
		return n
	})

	r, err := d.Get(ctx)
	require.NoError(t, err)
	require.True(t, r.IsErr())
	assert.Equal(t, "upstream", r.Err().Code)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestMapPanicIntercepted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := Map(ctx, okFuture(1), func(_ context.Context, n int) int {
		panic("divide by zero")
	})

	r, err := d.Get(ctx)
	require.NoError(t, err)
	require.True(t, r.IsErr())
	assert.Contains(t, r.Err().Code, "fault: ")
	assert.Contains(t, r.Err().Code, "divide by zero")
}

func TestMapAwait(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := MapAwait(ctx, okFuture("a"), func(ctx context.Context, s string) *future.Future[string] {
		return future.FromFunc(ctx, func(context.Context) (string, error) {
			return s + "b", nil
		})
	})

	r, err := d.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, rop.Ok[string, pipeErr]("ab"), r)
}

func TestMapAwaitInnerFaultConverted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := MapAwait(ctx, okFuture(1), func(ctx context.Context, n int) *future.Future[int] {
		f := future.New[int]()
		f.Fail(errors.New("inner transport"))
		return f
	})

	r, err := d.Get(ctx)
	require.NoError(t, err)
	require.True(t, r.IsErr())
	assert.Equal(t, "fault: inner transport", r.Err().Code)
}

func TestAndThenBinds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := AndThen(ctx, okFuture(7), func(_ context.Context, n int) rop.Result[string, pipeErr] {
		return rop.Ok[string, pipeErr](strconv.Itoa(n))
	})

	r, err := d.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, rop.Ok[string, pipeErr]("7"), r)
}

func TestAndThenAwait(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := AndThenAwait(ctx, okFuture(7), func(ctx context.Context, n int) *future.Future[rop.Result[int, pipeErr]] {
		return Go(ctx, func(context.Context) (int, error) { return n + 1, nil }, toPipeErr)
	})

	r, err := d.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, rop.Ok[int, pipeErr](8), r)
}

func TestChainShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var after int32

	step := func(name string, fail bool) func(context.Context, int) rop.Result[int, pipeErr] {
		return func(_ context.Context, n int) rop.Result[int, pipeErr] {
			if fail {
				return rop.Err[int](pipeErr{Code: name + " failed"})
			}
			atomic.AddInt32(&after, 1)
			return rop.Ok[int, pipeErr](n + 1)
		}
	}

	d := okFuture(0)
	d = AndThen(ctx, d, step("one", false))
	d = AndThen(ctx, d, step("two", true))

	var mapCalls, bindCalls int32
	d2 := Map(ctx, d, func(_ context.Context, n int) int {
		atomic.AddInt32(&mapCalls, 1)
		return n
	})
	d3 := AndThen(ctx, d2, func(_ context.Context, n int) rop.Result[int, pipeErr] {
		atomic.AddInt32(&bindCalls, 1)
		return rop.Ok[int, pipeErr](n)
	})

	r, err := d3.Get(ctx)
	require.NoError(t, err)
	require.True(t, r.IsErr())
	assert.Equal(t, "two failed", r.Err().Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&after))
	assert.Equal(t, int32(0), atomic.LoadInt32(&mapCalls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&bindCalls))
}

func TestMidChainPanicBecomesErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := AndThen(ctx, okFuture(1), func(_ context.Context, n int) rop.Result[int, pipeErr] {
		return rop.Ok[int, pipeErr](n + 1)
	})
	d = AndThen(ctx, d, func(_ context.Context, n int) rop.Result[int, pipeErr] {
		panic("continuation bug")
	})
	d = AndThen(ctx, d, func(_ context.Context, n int) rop.Result[int, pipeErr] {
		return rop.Ok[int, pipeErr](n + 1)
	})

	r, err := d.Get(ctx)
	require.NoError(t, err)
	require.True(t, r.IsErr())
	assert.Contains(t, r.Err().Code, "continuation bug")
}

func TestMatchOk(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Match(ctx, okFuture(5),
		func(_ context.Context, n int) string { return "ok:" + strconv.Itoa(n) },
		func(_ context.Context, e pipeErr) string { return "err:" + e.Code })

	assert.Equal(t, "ok:5", got)
}

func TestMatchErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Match(ctx, errFuture[int]("denied"),
		func(_ context.Context, n int) string { return "ok" },
		func(_ context.Context, e pipeErr) string { return "err:" + e.Code })

	assert.Equal(t, "err:denied", got)
}

func TestMatchAwaitingFaultConverted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// never settles; the await itself faults with the deadline
	d := future.New[rop.Result[int, pipeErr]]()

	got := Match(ctx, d,
		func(_ context.Context, n int) string { return "ok" },
		func(_ context.Context, e pipeErr) string { return e.Code })

	assert.Contains(t, got, "fault: ")
	assert.Contains(t, got, context.DeadlineExceeded.Error())
}

func TestMatchHandlerPanicConverted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Match(ctx, okFuture(1),
		func(_ context.Context, n int) string { panic("formatter bug") },
		func(_ context.Context, e pipeErr) string { return e.Code })

	assert.Contains(t, got, "formatter bug")
}

func TestCanceledFuturePropagatesThroughChain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	upstream := future.New[rop.Result[int, pipeErr]]()
	upstream.Cancel()

	var calls int32
	d := Map(ctx, upstream, func(_ context.Context, n int) int {
		atomic.AddInt32(&calls, 1)
		return n
	})

	// cancellation stays a transport failure, never a domain Err
	_, err := d.Get(ctx)
	require.ErrorIs(t, err, future.ErrCanceled)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestCanceledFuturePropagatesThroughAndThen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	upstream := future.New[rop.Result[int, pipeErr]]()
	upstream.Cancel()

	d := AndThen(ctx, upstream, func(_ context.Context, n int) rop.Result[int, pipeErr] {
		return rop.Ok[int, pipeErr](n)
	})

	_, err := d.Get(ctx)
	require.ErrorIs(t, err, future.ErrCanceled)
}

func TestGoCanceledErrorPropagates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := Go(ctx, func(ctx context.Context) (int, error) {
		return 0, future.ErrCanceled
	}, toPipeErr)

	_, err := d.Get(ctx)
	require.ErrorIs(t, err, future.ErrCanceled)
}

func TestCancellationPropagatesThroughChain(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := Map(ctx, future.New[rop.Result[int, pipeErr]](),
		func(_ context.Context, n int) int { return n })

	_, err := d.Get(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}
