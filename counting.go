package countz

import (
	"time"
)

// NowTimestampFn stamps every element with the processing time at the
// moment it is generated. It is the default timestamp function for
// unbounded sequences.
func NowTimestampFn(index int64) time.Time {
	return RealClock.Now()
}

// UpTo creates a BoundedSequence that produces the specified number of
// elements, from 0 to numElements-1. It fails with ErrInvalidArgument
// when numElements is not positive.
func UpTo(numElements int64) (BoundedSequence, error) {
	if numElements <= 0 {
		return BoundedSequence{}, invalidArgumentf("numElements (%d) must be greater than 0", numElements)
	}
	return BoundedSequence{
		numElements: numElements,
		ranges:      defaultRanges,
	}, nil
}

// Unbounded creates an UnboundedSequence that produces numbers starting
// from 0 up to math.MaxInt64. After math.MaxInt64 the source never
// produces more output; in practice that limit should never be reached.
//
// Elements are stamped with NowTimestampFn by default; use
// WithTimestampFn to control the event times. The sequence is unbounded
// until WithMaxNumRecords or WithMaxReadTime caps it.
func Unbounded() UnboundedSequence {
	return UnboundedSequence{
		timestampFn: NowTimestampFn,
		ranges:      defaultRanges,
		bounds:      defaultBounds,
	}
}

// BoundedSequence is an immutable specification for a finite sequence of
// consecutive integers. Create one with UpTo.
type BoundedSequence struct {
	ranges      RangeSource
	numElements int64
}

// Materialize requests a range source over [0, numElements) and applies
// it to origin, producing a bounded collection. Collaborator failures
// are returned unchanged.
func (b BoundedSequence) Materialize(origin Origin) (*Collection, error) {
	src, err := b.ranges.Bounded(0, b.numElements)
	if err != nil {
		return nil, err
	}
	return origin.Apply(src)
}

// UnboundedSequence is an immutable specification for a monotonically
// increasing sequence starting at 0, optionally capped by a record count,
// a read duration, or both. Create one with Unbounded.
//
// Every mutator returns a new UnboundedSequence with exactly one field
// replaced; the receiver is never modified.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type UnboundedSequence struct {
	timestampFn TimestampFn
	ranges      RangeSource
	bounds      BoundSource

	maxRecords    int64
	hasMaxRecords bool

	maxReadTime    time.Duration
	hasMaxReadTime bool
}

// WithTimestampFn returns a sequence like this one, but whose elements
// carry the event time assigned by fn. It fails with ErrInvalidArgument
// when fn is nil.
//
// Note that the timestamps produced by fn may not decrease.
func (u UnboundedSequence) WithTimestampFn(fn TimestampFn) (UnboundedSequence, error) {
	if fn == nil {
		return UnboundedSequence{}, invalidArgumentf("timestamp function must not be nil")
	}
	next := u
	next.timestampFn = fn
	return next, nil
}

// WithMaxNumRecords returns a sequence like this one, but that will read
// at most n elements, making the materialized collection bounded. It
// fails with ErrInvalidArgument when n is not positive. Any read-time
// limit on the receiver is carried over unchanged.
func (u UnboundedSequence) WithMaxNumRecords(n int64) (UnboundedSequence, error) {
	if n <= 0 {
		return UnboundedSequence{}, invalidArgumentf("maxRecords must be a positive (nonzero) value, got %d", n)
	}
	next := u
	next.maxRecords = n
	next.hasMaxRecords = true
	return next, nil
}

// WithMaxReadTime returns a sequence like this one, but that will read
// for at most the duration d, making the materialized collection bounded.
// It fails with ErrInvalidArgument when d is not positive. Any record
// limit on the receiver is carried over unchanged.
func (u UnboundedSequence) WithMaxReadTime(d time.Duration) (UnboundedSequence, error) {
	if d <= 0 {
		return UnboundedSequence{}, invalidArgumentf("readTime must be a positive duration, got %s", d)
	}
	next := u
	next.maxReadTime = d
	next.hasMaxReadTime = true
	return next, nil
}

// Materialize requests an unbounded counting source, wraps it according
// to the limits present, and applies the result to origin.
//
// With no limits the collection stays unbounded. With one limit the
// source is wrapped with that limit alone. With both, the read-time wrap
// is requested first and the record-count wrap is applied on top of it;
// the order is fixed so that which limit is observed as the terminal
// condition is deterministic when both would trigger together.
//
// Collaborator failures are returned unchanged.
func (u UnboundedSequence) Materialize(origin Origin) (*Collection, error) {
	src, err := u.ranges.Unbounded(u.timestampFn)
	if err != nil {
		return nil, err
	}

	switch {
	case !u.hasMaxRecords && !u.hasMaxReadTime:
		// Raw unbounded read, no wrapping.
	case u.hasMaxRecords && !u.hasMaxReadTime:
		src, err = u.bounds.WithMaxRecords(src, u.maxRecords)
	case !u.hasMaxRecords && u.hasMaxReadTime:
		src, err = u.bounds.WithMaxReadTime(src, u.maxReadTime)
	default:
		src, err = u.bounds.WithMaxReadTime(src, u.maxReadTime)
		if err == nil {
			src, err = u.bounds.WithMaxRecords(src, u.maxRecords)
		}
	}
	if err != nil {
		return nil, err
	}

	return origin.Apply(src)
}
