// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import (
	"sync/atomic"
)

// Exactly-once capability variants. A once value wraps a capability with
// one-shot enforcement: it may be invoked at most once, and later
// attempts panic (the direct operation) or report failure (the Try
// variant). The use counter is atomic, so a second invocation is detected
// even when it races the first.
//
// Each once type still satisfies its shape's contract, so a one-shot
// capability wraps, composes, and converts like any other — with the
// one-shot guarantee carried along.

// OnceSupplier produces its value at most once.
type OnceSupplier[T any] struct {
	used atomic.Uintptr
	s    Supplier[T]
}

// NewOnceSupplier wraps s with one-shot enforcement.
func NewOnceSupplier[T any](s Supplier[T]) *OnceSupplier[T] {
	return &OnceSupplier[T]{s: s}
}

// Get produces the value. Panics if the supplier was already used.
func (o *OnceSupplier[T]) Get() T {
	if o.used.Add(1) != 1 {
		panic("komb: once supplier invoked twice")
	}
	return o.s.Get()
}

// TryGet attempts to produce the value.
// Returns (value, true) on first use, or (zero, false) afterward.
func (o *OnceSupplier[T]) TryGet() (T, bool) {
	if o.used.Add(1) != 1 {
		var zero T
		return zero, false
	}
	return o.s.Get(), true
}

// Discard marks the supplier as used without invoking it.
func (o *OnceSupplier[T]) Discard() {
	o.used.Store(1)
}

// OnceConsumer observes its input at most once.
type OnceConsumer[T any] struct {
	used atomic.Uintptr
	c    Consumer[T]
}

// NewOnceConsumer wraps c with one-shot enforcement.
func NewOnceConsumer[T any](c Consumer[T]) *OnceConsumer[T] {
	return &OnceConsumer[T]{c: c}
}

// Accept observes the value. Panics if the consumer was already used.
func (o *OnceConsumer[T]) Accept(v T) {
	if o.used.Add(1) != 1 {
		panic("komb: once consumer invoked twice")
	}
	o.c.Accept(v)
}

// TryAccept attempts to observe the value.
// Returns true on first use, false afterward.
func (o *OnceConsumer[T]) TryAccept(v T) bool {
	if o.used.Add(1) != 1 {
		return false
	}
	o.c.Accept(v)
	return true
}

// Discard marks the consumer as used without invoking it.
func (o *OnceConsumer[T]) Discard() {
	o.used.Store(1)
}

// OnceTransformer transforms at most once. This is the shape that moves
// captured state out of the closure on invocation; enforcing a single use
// is what makes that move sound.
type OnceTransformer[T, R any] struct {
	used atomic.Uintptr
	t    Transformer[T, R]
}

// NewOnceTransformer wraps t with one-shot enforcement.
func NewOnceTransformer[T, R any](t Transformer[T, R]) *OnceTransformer[T, R] {
	return &OnceTransformer[T, R]{t: t}
}

// Transform computes the output. Panics if the transformer was already
// used.
func (o *OnceTransformer[T, R]) Transform(v T) R {
	if o.used.Add(1) != 1 {
		panic("komb: once transformer invoked twice")
	}
	return o.t.Transform(v)
}

// TryTransform attempts the transformation.
// Returns (result, true) on first use, or (zero, false) afterward.
func (o *OnceTransformer[T, R]) TryTransform(v T) (R, bool) {
	if o.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	return o.t.Transform(v), true
}

// Discard marks the transformer as used without invoking it.
func (o *OnceTransformer[T, R]) Discard() {
	o.used.Store(1)
}
