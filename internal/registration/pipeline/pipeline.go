// Package pipeline provides the short-circuiting step combinator used by the
// registration use case: an ordered chain of fallible steps over a Result
// type, where the first failure ends the run and flows unchanged to the
// caller. The combinator logs and traces each step by its human-readable tag
// without knowing what the step means.
package pipeline

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Result carries either the value produced by the last successful step or
// the terminal failure that ended the run.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a success value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a terminal failure.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Err returns the terminal failure, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value and the terminal failure. The value is only
// meaningful when the error is nil.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Runner owns the observability sinks shared by every step in a chain. It is
// passed explicitly at construction so pipelines stay free of ambient state.
type Runner struct {
	log    *slog.Logger
	tracer trace.Tracer
}

func NewRunner(log *slog.Logger) *Runner {
	return &Runner{
		log:    log,
		tracer: otel.Tracer("registrar/pipeline"),
	}
}

// Bind runs fn when in holds a success value, producing the next Result in
// the chain. A failed input short-circuits: fn is not invoked and the failure
// propagates opaquely, without the combinator inspecting its kind. Step
// failures are logged once, here, with the step's tag.
func Bind[A, B any](ctx context.Context, rn *Runner, in Result[A], tag string, fn func(context.Context, A) (B, error)) Result[B] {
	if in.err != nil {
		return Fail[B](in.err)
	}

	ctx, span := rn.tracer.Start(ctx, tag)
	defer span.End()

	rn.log.DebugContext(ctx, "pipeline step", "step", tag)
	out, err := fn(ctx, in.value)
	if err != nil {
		span.RecordError(err)
		rn.log.ErrorContext(ctx, "pipeline step failed", "step", tag, "error", err.Error())
		return Fail[B](err)
	}
	return Ok(out)
}

// Then is Bind specialized to steps that keep the accumulated state type.
func Then[T any](ctx context.Context, rn *Runner, in Result[T], tag string, fn func(context.Context, T) (T, error)) Result[T] {
	return Bind(ctx, rn, in, tag, fn)
}
