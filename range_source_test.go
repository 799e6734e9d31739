package countz

import (
	"context"
	"testing"
	"time"
)

// drainOrFail consumes out until it closes, failing the test if the
// channel is still open after a second.
func drainOrFail(t *testing.T, out <-chan Element) {
	t.Helper()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-out:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("source did not stop")
		}
	}
}

func TestRange(t *testing.T) {
	src := NewRange(0, 4)

	values := []int64{}
	for e := range src.Emit(context.Background()) {
		values = append(values, e.Value)
		if !e.Timestamp.IsZero() {
			t.Error("expected range elements to carry no event time")
		}
	}

	expected := []int64{0, 1, 2, 3}
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("expected %d at position %d, got %d", expected[i], i, v)
		}
	}
}

func TestRangeOffsetStart(t *testing.T) {
	src := NewRange(10, 13)

	values := []int64{}
	for e := range src.Emit(context.Background()) {
		values = append(values, e.Value)
	}

	expected := []int64{10, 11, 12}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("expected %d at position %d, got %d", expected[i], i, v)
		}
	}
}

func TestRangeEmpty(t *testing.T) {
	for _, src := range []*Range{NewRange(0, 0), NewRange(5, 2)} {
		count := 0
		for range src.Emit(context.Background()) {
			count++
		}
		if count != 0 {
			t.Errorf("expected an empty read for [%d,%d), got %d elements", src.start, src.end, count)
		}
	}
}

func TestRangeCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := NewRange(0, 1_000_000)
	out := src.Emit(ctx)

	<-out
	cancel()
	drainOrFail(t, out)
}

func TestRangeMetadata(t *testing.T) {
	src := NewRange(0, 10)
	if src.Name() != "range" {
		t.Errorf("expected name 'range', got %q", src.Name())
	}
	if !src.Bounded() {
		t.Error("expected a range source to be bounded")
	}
}

func TestCountingTimestamps(t *testing.T) {
	base := time.Unix(1600000000, 0)
	src := NewCounting(func(i int64) time.Time {
		return base.Add(time.Duration(i) * time.Minute)
	})

	// Cap the read so it terminates.
	limited := NewMaxRecords(src, 3)

	i := int64(0)
	for e := range limited.Emit(context.Background()) {
		if e.Value != i {
			t.Errorf("expected value %d, got %d", i, e.Value)
		}
		if want := base.Add(time.Duration(i) * time.Minute); !e.Timestamp.Equal(want) {
			t.Errorf("expected timestamp %v for index %d, got %v", want, i, e.Timestamp)
		}
		i++
	}

	if i != 3 {
		t.Errorf("expected 3 elements, got %d", i)
	}
}

func TestCountingDefaultTimestampFn(t *testing.T) {
	src := NewCounting(nil)
	limited := NewMaxRecords(src, 2)

	var previous time.Time
	for e := range limited.Emit(context.Background()) {
		if e.Timestamp.IsZero() {
			t.Error("expected a processing-time timestamp")
		}
		if e.Timestamp.Before(previous) {
			t.Error("expected non-decreasing timestamps")
		}
		previous = e.Timestamp
	}
}

func TestCountingCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := NewCounting(nil)
	out := src.Emit(ctx)

	<-out
	<-out
	cancel()
	drainOrFail(t, out)
}

func TestCountingMetadata(t *testing.T) {
	src := NewCounting(nil)
	if src.Name() != "counting" {
		t.Errorf("expected name 'counting', got %q", src.Name())
	}
	if src.Bounded() {
		t.Error("expected a counting source to be unbounded")
	}
}
