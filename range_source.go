package countz

import (
	"context"
)

// defaultRanges is the RangeSource used by sequences built through UpTo
// and Unbounded.
var defaultRanges RangeSource = channelRanges{}

// channelRanges constructs the channel-backed sources below.
type channelRanges struct{}

func (channelRanges) Bounded(start, end int64) (Source, error) {
	return NewRange(start, end), nil
}

func (channelRanges) Unbounded(fn TimestampFn) (Source, error) {
	return NewCounting(fn), nil
}

// Range emits the consecutive integers of a half-open interval.
type Range struct {
	name  string
	start int64
	end   int64
}

// NewRange creates a bounded source over [start, end). The emitted
// channel closes after end-1; an empty or inverted interval closes
// immediately.
//
// Example:
//
//	// The integers 0..99.
//	src := countz.NewRange(0, 100)
//	for e := range src.Emit(ctx) {
//		fmt.Println(e.Value)
//	}
func NewRange(start, end int64) *Range {
	return &Range{
		start: start,
		end:   end,
		name:  "range",
	}
}

func (r *Range) Emit(ctx context.Context) <-chan Element {
	out := make(chan Element)

	go func() {
		defer close(out)

		for i := r.start; i < r.end; i++ {
			select {
			case out <- Element{Value: i}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (r *Range) Name() string {
	return r.name
}

// Bounded reports true: the element count is known in advance.
func (r *Range) Bounded() bool {
	return true
}

// Counting emits 0, 1, 2, ... without a stop condition of its own,
// stamping each element with an event time.
type Counting struct {
	name string
	fn   TimestampFn
}

// NewCounting creates an unbounded source counting up from 0. Each
// element i is stamped with fn(i); a nil fn falls back to NowTimestampFn.
// The read ends only on context cancellation or, theoretically, after
// math.MaxInt64 elements.
//
// When to use:
//   - Driving a pipeline with synthetic load
//   - Generating element indices for downstream keying
//   - Feeding time-windowed processors via a custom TimestampFn
//
// Example:
//
//	// Stamp element i with one second past the epoch per step.
//	src := countz.NewCounting(func(i int64) time.Time {
//		return time.Unix(i, 0)
//	})
func NewCounting(fn TimestampFn) *Counting {
	if fn == nil {
		fn = NowTimestampFn
	}
	return &Counting{
		fn:   fn,
		name: "counting",
	}
}

func (c *Counting) Emit(ctx context.Context) <-chan Element {
	out := make(chan Element)

	go func() {
		defer close(out)

		// i wraps negative after math.MaxInt64, ending the loop.
		for i := int64(0); i >= 0; i++ {
			select {
			case out <- Element{Value: i, Timestamp: c.fn(i)}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (c *Counting) Name() string {
	return c.name
}

// Bounded reports false: the read has no intrinsic stop condition.
func (c *Counting) Bounded() bool {
	return false
}
