// Package countz provides counting-sequence sources for channel-based
// data pipelines. A sequence is configured through one of two immutable
// specification values and then attached to a pipeline origin, producing
// a collection of consecutive int64 values.
//
// A bounded sequence produces exactly the integers 0..numElements-1:
//
//	p := countz.NewPipeline()
//	seq, err := countz.UpTo(1000)
//	if err != nil {
//		return err
//	}
//	bounded, err := seq.Materialize(p.Begin())
//
// An unbounded sequence counts up from 0 toward math.MaxInt64 and, in
// practice, never stops on its own. Optional limits convert it into a
// bounded collection:
//
//	seq, err := countz.Unbounded().WithMaxNumRecords(100)
//	if err != nil {
//		return err
//	}
//	capped, err := seq.Materialize(p.Begin())
//
// Specification values are plain values: every With* mutator returns a
// new specification and leaves its receiver untouched, so specs can be
// shared freely across goroutines. All argument validation happens at
// the factory or mutator call, never at Materialize time.
//
// Elements flow as timestamped values over ordinary channels. Unbounded
// sequences stamp each element through a pluggable TimestampFn; by
// default that is the processing time at generation.
package countz

import (
	"context"
	"time"
)

// Element is a single generated value together with its event time.
// Bounded range sources leave Timestamp at its zero value; event times
// only carry meaning for unbounded counting reads feeding time-based
// processing downstream.
type Element struct {
	Timestamp time.Time
	Value     int64
}

// TimestampFn assigns an event time to a generated index. Implementations
// must be monotone: called with increasing indices, the returned times may
// not decrease. This is a contract on the caller, not checked here.
type TimestampFn func(index int64) time.Time

// Source produces a stream of elements into a channel. Sources should:
//   - Close the emitted channel when the sequence is exhausted
//   - Respect context cancellation
//   - Be safe to Emit from any goroutine
type Source interface {
	// Emit starts the read and returns the element channel.
	Emit(ctx context.Context) <-chan Element

	// Name returns a descriptive name for the source, useful for debugging.
	Name() string

	// Bounded reports whether the source is known to be finite in advance.
	Bounded() bool
}

// RangeSource constructs the underlying counting sources. The default
// implementation emits over channels; alternative implementations may
// supply splittable or checkpointable readers with the same contract.
type RangeSource interface {
	// Bounded returns a source over the half-open interval [start, end).
	Bounded(start, end int64) (Source, error)

	// Unbounded returns a source counting up from 0, stamping each
	// element through fn.
	Unbounded(fn TimestampFn) (Source, error)
}

// BoundSource converts unbounded sources into bounded ones by wrapping
// them with a stop condition.
type BoundSource interface {
	// WithMaxRecords wraps src so the read stops after n elements.
	WithMaxRecords(src Source, n int64) (Source, error)

	// WithMaxReadTime wraps src so the read stops once d has elapsed
	// since the read started.
	WithMaxReadTime(src Source, d time.Duration) (Source, error)
}

// Origin is a pipeline-construction root. Applying a source to an origin
// yields the collection the rest of the pipeline consumes.
type Origin interface {
	Apply(src Source) (*Collection, error)
}
