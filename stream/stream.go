// Package stream implements lazy, single-use sequences of values.
//
// A Stream is built from a source (Of, OfSlice, Generate, ...), extended with
// intermediate operations (Filter, Map, Peek, Sorted, ...) that only wrap the
// previous pull step, and consumed by exactly one terminal operation (Count,
// ForEach, ToSlice, Reduce, ...) which drives the whole chain once.
//
// Example:
//
//	evens, err := stream.Of(1, 2, 3, 4, 5).
//		Filter(func(n int) bool { return n%2 == 0 }).
//		Count()
//
// All stages derived from one source share its single-use state: once any of
// them runs a terminal operation, every other terminal call on that pipeline
// fails with errs.ErrIllegalState.
package stream

import (
	"errors"

	"github.com/charmingruby/jutil/errs"
	"github.com/charmingruby/jutil/optional"
)

// Stream is a lazy sequence of T. Streams are not safe for concurrent use.
// The zero value is an empty stream.
type Stream[T any] struct {
	it   Iterator[T]
	pipe *pipeline
}

// pipeline is the single-use state shared by every stage built on one source.
type pipeline struct {
	consumed bool
	closed   bool
	handlers []func() error
	upstream []*pipeline
}

func newPipeline(upstream ...*pipeline) *pipeline {
	p := &pipeline{}
	for _, u := range upstream {
		if u != nil {
			p.upstream = append(p.upstream, u)
		}
	}
	return p
}

func (p *pipeline) used() bool {
	if p.consumed || p.closed {
		return true
	}
	for _, u := range p.upstream {
		if u.used() {
			return true
		}
	}
	return false
}

func (p *pipeline) markConsumed() {
	p.consumed = true
	for _, u := range p.upstream {
		u.markConsumed()
	}
}

func (p *pipeline) consume(op string) error {
	if p == nil {
		return nil
	}
	if p.used() {
		log().Warn().Str("op", op).Msg("stream: rejected operation on consumed stream")
		return errs.New(errs.ErrIllegalState, "stream: %s: stream has already been operated upon or closed", op)
	}
	p.markConsumed()
	return nil
}

func (p *pipeline) close() error {
	if p == nil || p.closed {
		return nil
	}
	p.closed = true
	var failures []error
	for _, h := range p.handlers {
		failures = append(failures, h())
	}
	for _, u := range p.upstream {
		failures = append(failures, u.close())
	}
	return errors.Join(failures...)
}

// Of returns a stream over the given elements, in order. Passing a single
// slice yields a one-element stream of that slice; use OfSlice, or Of(xs...),
// to stream its elements.
func Of[T any](elements ...T) Stream[T] {
	return OfSlice(elements)
}

// OfSlice returns a stream over the elements of values without copying them.
func OfSlice[T any](values []T) Stream[T] {
	return OfIterator(FromSlice(values))
}

// OfIterator returns a stream pulling from it.
func OfIterator[T any](it Iterator[T]) Stream[T] {
	return Stream[T]{it: it, pipe: newPipeline()}
}

// OfOptional returns a one-element stream when o holds a value and an empty
// stream otherwise.
func OfOptional[T any](o optional.Optional[T]) Stream[T] {
	v, ok := o.Lookup()
	if !ok {
		return Empty[T]()
	}
	return Of(v)
}

// Empty returns an exhausted stream.
func Empty[T any]() Stream[T] {
	return OfIterator(Iterator[T]{})
}

// Concat returns a stream of every element of a followed by every element of
// b. Building it pulls nothing; running a terminal on it consumes both
// inputs and closing it closes both.
func Concat[T any](a, b Stream[T]) Stream[T] {
	first := true
	it := Iterator[T]{
		next: func() (T, bool) {
			if first {
				if v, ok := a.it.Next(); ok {
					return v, true
				}
				first = false
			}
			return b.it.Next()
		},
	}
	return Stream[T]{it: it, pipe: newPipeline(a.pipe, b.pipe)}
}

func (s Stream[T]) derive(next func() (T, bool)) Stream[T] {
	return Stream[T]{it: Iterator[T]{next: next}, pipe: s.pipe}
}

func (s Stream[T]) fail(err error) Stream[T] {
	return Stream[T]{it: failing[T](err), pipe: s.pipe}
}

// OnClose registers handler to run when the stream is closed. Handlers run
// once, in registration order, followed by the handlers of concatenated
// inputs.
func (s Stream[T]) OnClose(handler func() error) Stream[T] {
	if handler == nil {
		handler = func() error {
			return errs.New(errs.ErrNullArgument, "stream: onClose: nil handler")
		}
	}
	if s.pipe == nil {
		s.pipe = newPipeline()
	}
	s.pipe.handlers = append(s.pipe.handlers, handler)
	return s
}

// Close runs the registered close handlers and marks the stream unusable.
// Errors returned by handlers are joined.
func (s Stream[T]) Close() error {
	return s.pipe.close()
}

// IsParallel always reports false: streams run on the calling goroutine.
func (s Stream[T]) IsParallel() bool {
	return false
}

// Parallel is not supported and always fails with errs.ErrNotImplemented.
func (s Stream[T]) Parallel() (Stream[T], error) {
	return s, errs.New(errs.ErrNotImplemented, "stream: parallel execution is not supported")
}

// Sequential returns s unchanged.
func (s Stream[T]) Sequential() Stream[T] {
	return s
}
