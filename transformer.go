// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "sync"

// Transformer is the capability contract for the transformation shape: a
// value that turns one input into one output. The input travels by value;
// transformation does not observe ownership of the operand, only of the
// capability itself.
type Transformer[T, R any] interface {
	Transform(v T) R
}

// TransformerFunc adapts a bare closure to the [Transformer] contract.
type TransformerFunc[T, R any] func(T) R

// Transform implements [Transformer] by calling the function.
func (f TransformerFunc[T, R]) Transform(v T) R { return f(v) }

func toTransformerFunc[T, R any](t Transformer[T, R]) TransformerFunc[T, R] {
	if f, ok := t.(TransformerFunc[T, R]); ok {
		return f
	}
	return t.Transform
}

// AndThen threads f's output into g: the result computes g(f(v)).
// Go methods cannot introduce g's output type parameter, so transformer
// sequencing is package-level; rewrap the result to restore ownership.
func AndThen[T, R, S any](f Transformer[T, R], g Transformer[R, S]) TransformerFunc[T, S] {
	return func(v T) S {
		return g.Transform(f.Transform(v))
	}
}

// Compose is [AndThen] with operand order reversed: the result computes
// g(f(v)) from Compose(g, f).
func Compose[T, R, S any](g Transformer[R, S], f Transformer[T, R]) TransformerFunc[T, S] {
	return AndThen[T, R, S](f, g)
}

// Identity returns the transformer that yields its input unchanged; the
// left and right identity of [AndThen].
func Identity[T any]() TransformerFunc[T, T] {
	return identity[T]
}

// identity is a named generic function so Identity hands out a static
// funcval per instantiation instead of allocating a closure.
func identity[T any](v T) T { return v }

// Const returns the transformer that ignores its input and yields v.
func Const[T, R any](v R) TransformerFunc[T, R] {
	return func(T) R { return v }
}

func (f TransformerFunc[T, R]) Unique() *UniqueTransformer[T, R] {
	return &UniqueTransformer[T, R]{t: f}
}

func (f TransformerFunc[T, R]) Shared() *SharedTransformer[T, R] {
	return &SharedTransformer[T, R]{t: f}
}

func (f TransformerFunc[T, R]) Synced() *SyncedTransformer[T, R] {
	return &SyncedTransformer[T, R]{cell: &syncedTransformerCell[T, R]{t: f}}
}

// NewUniqueTransformer places a capability under exclusive ownership.
func NewUniqueTransformer[T, R any](t Transformer[T, R]) *UniqueTransformer[T, R] {
	if u, ok := t.(*UniqueTransformer[T, R]); ok {
		return u
	}
	return &UniqueTransformer[T, R]{t: t}
}

// NamedUniqueTransformer is [NewUniqueTransformer] with a diagnostic name.
func NamedUniqueTransformer[T, R any](name string, t Transformer[T, R]) *UniqueTransformer[T, R] {
	u := NewUniqueTransformer(t)
	u.SetName(name)
	return u
}

// NewSharedTransformer places a capability under shared ownership.
func NewSharedTransformer[T, R any](t Transformer[T, R]) *SharedTransformer[T, R] {
	if s, ok := t.(*SharedTransformer[T, R]); ok {
		return s
	}
	return &SharedTransformer[T, R]{t: t}
}

// NamedSharedTransformer is [NewSharedTransformer] with a diagnostic name.
func NamedSharedTransformer[T, R any](name string, t Transformer[T, R]) *SharedTransformer[T, R] {
	s := NewSharedTransformer(t)
	s.SetName(name)
	return s
}

// NewSyncedTransformer places a capability under synced ownership. Fails
// with [ErrUnsynced] for unique or shared wrapper inputs; see
// [NewSyncedPredicate].
func NewSyncedTransformer[T, R any](t Transformer[T, R]) (*SyncedTransformer[T, R], error) {
	switch q := t.(type) {
	case *SyncedTransformer[T, R]:
		return q, nil
	case *UniqueTransformer[T, R], *SharedTransformer[T, R]:
		return nil, ErrUnsynced
	}
	return &SyncedTransformer[T, R]{cell: &syncedTransformerCell[T, R]{t: t}}, nil
}

// NamedSyncedTransformer is [NewSyncedTransformer] with a diagnostic name.
func NamedSyncedTransformer[T, R any](name string, t Transformer[T, R]) (*SyncedTransformer[T, R], error) {
	s, err := NewSyncedTransformer(t)
	if err != nil {
		return nil, err
	}
	s.SetName(name)
	return s, nil
}

// UniqueTransformer is the exclusive-ownership wrapper for the
// transformation shape. See [UniquePredicate] for the discipline.
type UniqueTransformer[T, R any] struct {
	uniqueCore
	t Transformer[T, R]
}

const uniqueTransformerKind = "UniqueTransformer"

func (u *UniqueTransformer[T, R]) Transform(v T) R {
	u.guard(uniqueTransformerKind)
	return u.t.Transform(v)
}

func (u *UniqueTransformer[T, R]) String() string { return u.label(uniqueTransformerKind) }

func (u *UniqueTransformer[T, R]) claim() Transformer[T, R] {
	u.take(uniqueTransformerKind)
	return u.t
}

func (u *UniqueTransformer[T, R]) Unique() *UniqueTransformer[T, R] { return u }

func (u *UniqueTransformer[T, R]) Shared() *SharedTransformer[T, R] {
	return &SharedTransformer[T, R]{t: u.claim()}
}

func (u *UniqueTransformer[T, R]) Synced() (*SyncedTransformer[T, R], error) {
	return nil, ErrUnsynced
}

func (u *UniqueTransformer[T, R]) Func() TransformerFunc[T, R] {
	return toTransformerFunc(u.claim())
}

// SharedTransformer is the shared single-goroutine ownership wrapper for
// the transformation shape. See [SharedPredicate].
type SharedTransformer[T, R any] struct {
	wrapCore
	t Transformer[T, R]
}

const sharedTransformerKind = "SharedTransformer"

func (s *SharedTransformer[T, R]) Transform(v T) R { return s.t.Transform(v) }

func (s *SharedTransformer[T, R]) String() string { return s.label(sharedTransformerKind) }

func (s *SharedTransformer[T, R]) Clone() *SharedTransformer[T, R] {
	return &SharedTransformer[T, R]{wrapCore: wrapCore{name: s.name}, t: s.t}
}

func (s *SharedTransformer[T, R]) Unique() *UniqueTransformer[T, R] {
	return &UniqueTransformer[T, R]{t: s.t}
}

func (s *SharedTransformer[T, R]) Shared() *SharedTransformer[T, R] { return s }

func (s *SharedTransformer[T, R]) Synced() (*SyncedTransformer[T, R], error) {
	return nil, ErrUnsynced
}

func (s *SharedTransformer[T, R]) Func() TransformerFunc[T, R] {
	return toTransformerFunc(s.t)
}

type syncedTransformerCell[T, R any] struct {
	mu     sync.Mutex
	t      Transformer[T, R]
	direct bool
}

func (c *syncedTransformerCell[T, R]) transform(v T) R {
	if c.direct {
		return c.t.Transform(v)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t.Transform(v)
}

// SyncedTransformer is the shared multi-goroutine ownership wrapper for
// the transformation shape. See [SyncedPredicate].
type SyncedTransformer[T, R any] struct {
	wrapCore
	cell *syncedTransformerCell[T, R]
}

const syncedTransformerKind = "SyncedTransformer"

func (s *SyncedTransformer[T, R]) Transform(v T) R { return s.cell.transform(v) }

func (s *SyncedTransformer[T, R]) String() string { return s.label(syncedTransformerKind) }

func (s *SyncedTransformer[T, R]) Clone() *SyncedTransformer[T, R] {
	return &SyncedTransformer[T, R]{wrapCore: wrapCore{name: s.name}, cell: s.cell}
}

func (s *SyncedTransformer[T, R]) Unique() *UniqueTransformer[T, R] {
	return &UniqueTransformer[T, R]{t: s}
}

func (s *SyncedTransformer[T, R]) Shared() *SharedTransformer[T, R] {
	return &SharedTransformer[T, R]{t: s}
}

func (s *SyncedTransformer[T, R]) Synced() (*SyncedTransformer[T, R], error) { return s, nil }

func (s *SyncedTransformer[T, R]) Func() TransformerFunc[T, R] {
	return s.Transform
}
