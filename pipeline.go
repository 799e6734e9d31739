package countz

import (
	"context"
)

// Pipeline is a minimal construction root for attaching sources. It
// records every applied collection so the surrounding program can walk
// what was built. Construction is a single-threaded, synchronous phase;
// Pipeline is not safe for concurrent Apply calls.
type Pipeline struct {
	collections []*Collection
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Begin returns the origin that sequences materialize against.
func (p *Pipeline) Begin() Origin {
	return &origin{pipeline: p}
}

// Collections returns the collections applied so far, in order.
func (p *Pipeline) Collections() []*Collection {
	return p.collections
}

// origin attaches sources to its pipeline.
type origin struct {
	pipeline *Pipeline
}

func (o *origin) Apply(src Source) (*Collection, error) {
	c := &Collection{
		source:  src,
		bounded: src.Bounded(),
	}
	o.pipeline.collections = append(o.pipeline.collections, c)
	return c, nil
}

// Collection is a source attached to a pipeline, tagged with whether its
// size is known in advance. Boundedness is fixed at Apply time; wrapping
// decorators applied during materialization decide it.
type Collection struct {
	source  Source
	bounded bool
}

// IsBounded reports whether the collection is known to be finite.
func (c *Collection) IsBounded() bool {
	return c.bounded
}

// Source returns the source backing this collection.
func (c *Collection) Source() Source {
	return c.source
}

// Emit starts the read. It is a convenience passthrough to the backing
// source; genuinely parallel or resumable reads belong to alternative
// Source implementations, not to the collection.
func (c *Collection) Emit(ctx context.Context) <-chan Element {
	return c.source.Emit(ctx)
}
