package countz

import (
	"context"
	"time"
)

// defaultBounds is the BoundSource used by sequences built through
// Unbounded, driving read-time limits off the real clock.
var defaultBounds BoundSource = channelBounds{clock: RealClock}

// channelBounds wraps sources with the decorators below.
type channelBounds struct {
	clock Clock
}

func (channelBounds) WithMaxRecords(src Source, n int64) (Source, error) {
	return NewMaxRecords(src, n), nil
}

func (b channelBounds) WithMaxReadTime(src Source, d time.Duration) (Source, error) {
	return NewMaxReadTime(src, d, b.clock), nil
}

// MaxRecords limits a source to its first n elements.
type MaxRecords struct {
	src  Source
	name string
	n    int64
}

// NewMaxRecords creates a source that emits only the first n elements of
// src, then stops the inner read and closes. The result is bounded
// regardless of src.
//
// Example:
//
//	// Cap an infinite counter at 100 elements.
//	capped := countz.NewMaxRecords(countz.NewCounting(nil), 100)
//	limited := capped.Emit(ctx)
func NewMaxRecords(src Source, n int64) *MaxRecords {
	return &MaxRecords{
		src:  src,
		n:    n,
		name: "max-records",
	}
}

func (m *MaxRecords) Emit(ctx context.Context) <-chan Element {
	out := make(chan Element)

	go func() {
		defer close(out)

		inner, cancel := context.WithCancel(ctx)
		defer cancel()

		in := m.src.Emit(inner)

		var taken int64
		for e := range in {
			if taken >= m.n {
				break
			}

			select {
			case out <- e:
				taken++
			case <-ctx.Done():
				return
			}
		}

		cancel()
		//nolint:revive // empty-block: necessary to drain remaining items from the inner read
		for range in {
		}
	}()

	return out
}

func (m *MaxRecords) Name() string {
	return m.name
}

// Bounded reports true: the record cap makes the read finite.
func (m *MaxRecords) Bounded() bool {
	return true
}

// MaxReadTime limits a source to the elements emitted within a duration.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type MaxReadTime struct {
	src   Source
	clock Clock
	name  string
	d     time.Duration
}

// NewMaxReadTime creates a source that relays src until d has elapsed on
// clock since Emit was called, then stops the inner read and closes. The
// result is bounded regardless of src.
//
// The element count is nondeterministic: it depends on how fast the
// inner read produces relative to the clock.
//
// Parameters:
//   - src: The source to limit
//   - d: How long the read may run
//   - clock: Clock interface for time operations
func NewMaxReadTime(src Source, d time.Duration, clock Clock) *MaxReadTime {
	return &MaxReadTime{
		src:   src,
		d:     d,
		clock: clock,
		name:  "max-read-time",
	}
}

func (m *MaxReadTime) Emit(ctx context.Context) <-chan Element {
	out := make(chan Element)

	go func() {
		defer close(out)

		inner, cancel := context.WithCancel(ctx)
		defer cancel()

		in := m.src.Emit(inner)
		deadline := m.clock.After(m.d)

		for {
			select {
			case e, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- e:
				case <-deadline:
					m.drain(cancel, in)
					return
				case <-ctx.Done():
					return
				}
			case <-deadline:
				m.drain(cancel, in)
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// drain stops the inner read and consumes whatever it had in flight.
func (*MaxReadTime) drain(cancel context.CancelFunc, in <-chan Element) {
	cancel()
	//nolint:revive // empty-block: necessary to drain remaining items from the inner read
	for range in {
	}
}

func (m *MaxReadTime) Name() string {
	return m.name
}

// Bounded reports true: the deadline makes the read finite.
func (m *MaxReadTime) Bounded() bool {
	return true
}
