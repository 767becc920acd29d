// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "sync"

// Supplier is the capability contract for the production shape: a value
// that produces one output per invocation from no input. Captured state
// may evolve between invocations (a counter, a pool cursor); ownership
// decides how that state may be shared.
type Supplier[T any] interface {
	Get() T
}

// SupplierFunc adapts a bare closure to the [Supplier] contract.
type SupplierFunc[T any] func() T

// Get implements [Supplier] by calling the function.
func (f SupplierFunc[T]) Get() T { return f() }

func toSupplierFunc[T any](s Supplier[T]) SupplierFunc[T] {
	if f, ok := s.(SupplierFunc[T]); ok {
		return f
	}
	return s.Get
}

// MapSupplier is producer composition: the supplier's output is threaded
// into the transformer. The result produces f(s.Get()) per invocation.
// Methods cannot introduce the output type parameter R, so producer
// composition is package-level; rewrap the result to restore ownership.
func MapSupplier[T, R any](s Supplier[T], f Transformer[T, R]) SupplierFunc[R] {
	return func() R {
		return f.Transform(s.Get())
	}
}

func (f SupplierFunc[T]) Unique() *UniqueSupplier[T] {
	return &UniqueSupplier[T]{s: f}
}

func (f SupplierFunc[T]) Shared() *SharedSupplier[T] {
	return &SharedSupplier[T]{s: f}
}

func (f SupplierFunc[T]) Synced() *SyncedSupplier[T] {
	return &SyncedSupplier[T]{cell: &syncedSupplierCell[T]{s: f}}
}

// NewUniqueSupplier places a capability under exclusive ownership.
func NewUniqueSupplier[T any](s Supplier[T]) *UniqueSupplier[T] {
	if u, ok := s.(*UniqueSupplier[T]); ok {
		return u
	}
	return &UniqueSupplier[T]{s: s}
}

// NamedUniqueSupplier is [NewUniqueSupplier] with a diagnostic name.
func NamedUniqueSupplier[T any](name string, s Supplier[T]) *UniqueSupplier[T] {
	u := NewUniqueSupplier(s)
	u.SetName(name)
	return u
}

// NewSharedSupplier places a capability under shared ownership.
func NewSharedSupplier[T any](s Supplier[T]) *SharedSupplier[T] {
	if sh, ok := s.(*SharedSupplier[T]); ok {
		return sh
	}
	return &SharedSupplier[T]{s: s}
}

// NamedSharedSupplier is [NewSharedSupplier] with a diagnostic name.
func NamedSharedSupplier[T any](name string, s Supplier[T]) *SharedSupplier[T] {
	sh := NewSharedSupplier(s)
	sh.SetName(name)
	return sh
}

// NewSyncedSupplier places a capability under synced ownership. Fails with
// [ErrUnsynced] for unique or shared wrapper inputs; see
// [NewSyncedPredicate].
func NewSyncedSupplier[T any](s Supplier[T]) (*SyncedSupplier[T], error) {
	switch q := s.(type) {
	case *SyncedSupplier[T]:
		return q, nil
	case *UniqueSupplier[T], *SharedSupplier[T]:
		return nil, ErrUnsynced
	}
	return &SyncedSupplier[T]{cell: &syncedSupplierCell[T]{s: s}}, nil
}

// NamedSyncedSupplier is [NewSyncedSupplier] with a diagnostic name.
func NamedSyncedSupplier[T any](name string, s Supplier[T]) (*SyncedSupplier[T], error) {
	sy, err := NewSyncedSupplier(s)
	if err != nil {
		return nil, err
	}
	sy.SetName(name)
	return sy, nil
}

// UniqueSupplier is the exclusive-ownership wrapper for the production
// shape. See [UniquePredicate] for the discipline.
type UniqueSupplier[T any] struct {
	uniqueCore
	s Supplier[T]
}

const uniqueSupplierKind = "UniqueSupplier"

func (u *UniqueSupplier[T]) Get() T {
	u.guard(uniqueSupplierKind)
	return u.s.Get()
}

func (u *UniqueSupplier[T]) String() string { return u.label(uniqueSupplierKind) }

func (u *UniqueSupplier[T]) claim() Supplier[T] {
	u.take(uniqueSupplierKind)
	return u.s
}

func (u *UniqueSupplier[T]) Unique() *UniqueSupplier[T] { return u }

func (u *UniqueSupplier[T]) Shared() *SharedSupplier[T] {
	return &SharedSupplier[T]{s: u.claim()}
}

func (u *UniqueSupplier[T]) Synced() (*SyncedSupplier[T], error) {
	return nil, ErrUnsynced
}

func (u *UniqueSupplier[T]) Func() SupplierFunc[T] {
	return toSupplierFunc(u.claim())
}

// SharedSupplier is the shared single-goroutine ownership wrapper for the
// production shape. All clones draw from the same captured state. See
// [SharedPredicate].
type SharedSupplier[T any] struct {
	wrapCore
	s Supplier[T]
}

const sharedSupplierKind = "SharedSupplier"

func (s *SharedSupplier[T]) Get() T { return s.s.Get() }

func (s *SharedSupplier[T]) String() string { return s.label(sharedSupplierKind) }

func (s *SharedSupplier[T]) Clone() *SharedSupplier[T] {
	return &SharedSupplier[T]{wrapCore: wrapCore{name: s.name}, s: s.s}
}

func (s *SharedSupplier[T]) Unique() *UniqueSupplier[T] {
	return &UniqueSupplier[T]{s: s.s}
}

func (s *SharedSupplier[T]) Shared() *SharedSupplier[T] { return s }

func (s *SharedSupplier[T]) Synced() (*SyncedSupplier[T], error) {
	return nil, ErrUnsynced
}

func (s *SharedSupplier[T]) Func() SupplierFunc[T] {
	return toSupplierFunc(s.s)
}

type syncedSupplierCell[T any] struct {
	mu     sync.Mutex
	s      Supplier[T]
	direct bool
}

func (c *syncedSupplierCell[T]) get() T {
	if c.direct {
		return c.s.Get()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s.Get()
}

// SyncedSupplier is the shared multi-goroutine ownership wrapper for the
// production shape. Concurrent Get calls from clones are serialized; a
// counting supplier hands out each value exactly once across goroutines.
// See [SyncedPredicate].
type SyncedSupplier[T any] struct {
	wrapCore
	cell *syncedSupplierCell[T]
}

const syncedSupplierKind = "SyncedSupplier"

func (s *SyncedSupplier[T]) Get() T { return s.cell.get() }

func (s *SyncedSupplier[T]) String() string { return s.label(syncedSupplierKind) }

func (s *SyncedSupplier[T]) Clone() *SyncedSupplier[T] {
	return &SyncedSupplier[T]{wrapCore: wrapCore{name: s.name}, cell: s.cell}
}

func (s *SyncedSupplier[T]) Unique() *UniqueSupplier[T] {
	return &UniqueSupplier[T]{s: s}
}

func (s *SyncedSupplier[T]) Shared() *SharedSupplier[T] {
	return &SharedSupplier[T]{s: s}
}

func (s *SyncedSupplier[T]) Synced() (*SyncedSupplier[T], error) { return s, nil }

func (s *SyncedSupplier[T]) Func() SupplierFunc[T] {
	return s.Get
}
