package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pair and Triple hold the joined results of an independent gather in their
// declaration order.
type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Gather2 runs two independent fallible operations concurrently and joins
// their results. Both always run to completion. errgroup's own first-error
// result only answers "did anything fail"; which error completed first is
// scheduler-dependent, so the reported failure is chosen from the per-slot
// captures in declaration order to keep the outcome deterministic.
func Gather2[A, B any](ctx context.Context, rn *Runner, tag string, fa func(context.Context) (A, error), fb func(context.Context) (B, error)) Result[Pair[A, B]] {
	ctx, span := rn.tracer.Start(ctx, tag)
	defer span.End()

	var (
		g    errgroup.Group
		a    A
		b    B
		errA error
		errB error
	)
	g.Go(func() error { a, errA = fa(ctx); return errA })
	g.Go(func() error { b, errB = fb(ctx); return errB })
	if g.Wait() == nil {
		return Ok(Pair[A, B]{First: a, Second: b})
	}

	for _, err := range []error{errA, errB} {
		if err != nil {
			span.RecordError(err)
			rn.log.WarnContext(ctx, "pipeline gather failed", "step", tag, "error", err.Error())
			return Fail[Pair[A, B]](err)
		}
	}
	return Ok(Pair[A, B]{First: a, Second: b})
}

// Gather3 is Gather2 for three independent operations.
func Gather3[A, B, C any](ctx context.Context, rn *Runner, tag string, fa func(context.Context) (A, error), fb func(context.Context) (B, error), fc func(context.Context) (C, error)) Result[Triple[A, B, C]] {
	ctx, span := rn.tracer.Start(ctx, tag)
	defer span.End()

	var (
		g    errgroup.Group
		a    A
		b    B
		c    C
		errA error
		errB error
		errC error
	)
	g.Go(func() error { a, errA = fa(ctx); return errA })
	g.Go(func() error { b, errB = fb(ctx); return errB })
	g.Go(func() error { c, errC = fc(ctx); return errC })
	if g.Wait() == nil {
		return Ok(Triple[A, B, C]{First: a, Second: b, Third: c})
	}

	for _, err := range []error{errA, errB, errC} {
		if err != nil {
			span.RecordError(err)
			rn.log.WarnContext(ctx, "pipeline gather failed", "step", tag, "error", err.Error())
			return Fail[Triple[A, B, C]](err)
		}
	}
	return Ok(Triple[A, B, C]{First: a, Second: b, Third: c})
}
