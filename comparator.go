// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "sync"

// Comparator is the capability contract for the three-way comparison
// shape. Compare follows the [cmp.Compare] convention: negative when
// a orders before b, zero when they order equally, positive otherwise.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// ComparatorFunc adapts a bare closure to the [Comparator] contract.
type ComparatorFunc[T any] func(T, T) int

// Compare implements [Comparator] by calling the function.
func (f ComparatorFunc[T]) Compare(a, b T) int { return f(a, b) }

func toComparatorFunc[T any](c Comparator[T]) ComparatorFunc[T] {
	if f, ok := c.(ComparatorFunc[T]); ok {
		return f
	}
	return c.Compare
}

// ReverseComparator inverts an ordering.
func ReverseComparator[T any](c Comparator[T]) ComparatorFunc[T] {
	return func(a, b T) int {
		return c.Compare(b, a)
	}
}

// ThenComparator breaks ties: q decides only when p orders the operands
// equally. q is not invoked otherwise.
func ThenComparator[T any](p, q Comparator[T]) ComparatorFunc[T] {
	return func(a, b T) int {
		if r := p.Compare(a, b); r != 0 {
			return r
		}
		return q.Compare(a, b)
	}
}

// Reversed returns the inverted ordering as a bare closure.
func (f ComparatorFunc[T]) Reversed() ComparatorFunc[T] {
	return ReverseComparator[T](f)
}

// AndThen returns the tie-breaking sequence of f and q as a bare closure.
func (f ComparatorFunc[T]) AndThen(q Comparator[T]) ComparatorFunc[T] {
	return ThenComparator[T](f, q)
}

func (f ComparatorFunc[T]) Unique() *UniqueComparator[T] {
	return &UniqueComparator[T]{c: f}
}

func (f ComparatorFunc[T]) Shared() *SharedComparator[T] {
	return &SharedComparator[T]{c: f}
}

func (f ComparatorFunc[T]) Synced() *SyncedComparator[T] {
	return &SyncedComparator[T]{cell: &syncedComparatorCell[T]{c: f}}
}

// NewUniqueComparator places a capability under exclusive ownership.
func NewUniqueComparator[T any](c Comparator[T]) *UniqueComparator[T] {
	if u, ok := c.(*UniqueComparator[T]); ok {
		return u
	}
	return &UniqueComparator[T]{c: c}
}

// NamedUniqueComparator is [NewUniqueComparator] with a diagnostic name.
func NamedUniqueComparator[T any](name string, c Comparator[T]) *UniqueComparator[T] {
	u := NewUniqueComparator(c)
	u.SetName(name)
	return u
}

// NewSharedComparator places a capability under shared ownership.
func NewSharedComparator[T any](c Comparator[T]) *SharedComparator[T] {
	if s, ok := c.(*SharedComparator[T]); ok {
		return s
	}
	return &SharedComparator[T]{c: c}
}

// NamedSharedComparator is [NewSharedComparator] with a diagnostic name.
func NamedSharedComparator[T any](name string, c Comparator[T]) *SharedComparator[T] {
	s := NewSharedComparator(c)
	s.SetName(name)
	return s
}

// NewSyncedComparator places a capability under synced ownership. Fails
// with [ErrUnsynced] for unique or shared wrapper inputs; see
// [NewSyncedPredicate].
func NewSyncedComparator[T any](c Comparator[T]) (*SyncedComparator[T], error) {
	switch q := c.(type) {
	case *SyncedComparator[T]:
		return q, nil
	case *UniqueComparator[T], *SharedComparator[T]:
		return nil, ErrUnsynced
	}
	return &SyncedComparator[T]{cell: &syncedComparatorCell[T]{c: c}}, nil
}

// NamedSyncedComparator is [NewSyncedComparator] with a diagnostic name.
func NamedSyncedComparator[T any](name string, c Comparator[T]) (*SyncedComparator[T], error) {
	s, err := NewSyncedComparator(c)
	if err != nil {
		return nil, err
	}
	s.SetName(name)
	return s, nil
}

// UniqueComparator is the exclusive-ownership wrapper for the comparison
// shape. See [UniquePredicate] for the discipline.
type UniqueComparator[T any] struct {
	uniqueCore
	c Comparator[T]
}

const uniqueComparatorKind = "UniqueComparator"

func (u *UniqueComparator[T]) Compare(a, b T) int {
	u.guard(uniqueComparatorKind)
	return u.c.Compare(a, b)
}

func (u *UniqueComparator[T]) String() string { return u.label(uniqueComparatorKind) }

func (u *UniqueComparator[T]) claim() Comparator[T] {
	u.take(uniqueComparatorKind)
	return u.c
}

func claimComparatorOperand[T any](q Comparator[T]) Comparator[T] {
	if uq, ok := q.(*UniqueComparator[T]); ok {
		return uq.claim()
	}
	return q
}

func (u *UniqueComparator[T]) Reversed() *UniqueComparator[T] {
	return &UniqueComparator[T]{c: ReverseComparator(u.claim())}
}

func (u *UniqueComparator[T]) AndThen(q Comparator[T]) *UniqueComparator[T] {
	return &UniqueComparator[T]{c: ThenComparator(u.claim(), claimComparatorOperand(q))}
}

func (u *UniqueComparator[T]) Unique() *UniqueComparator[T] { return u }

func (u *UniqueComparator[T]) Shared() *SharedComparator[T] {
	return &SharedComparator[T]{c: u.claim()}
}

func (u *UniqueComparator[T]) Synced() (*SyncedComparator[T], error) {
	return nil, ErrUnsynced
}

func (u *UniqueComparator[T]) Func() ComparatorFunc[T] {
	return toComparatorFunc(u.claim())
}

// SharedComparator is the shared single-goroutine ownership wrapper for
// the comparison shape. See [SharedPredicate].
type SharedComparator[T any] struct {
	wrapCore
	c Comparator[T]
}

const sharedComparatorKind = "SharedComparator"

func (s *SharedComparator[T]) Compare(a, b T) int { return s.c.Compare(a, b) }

func (s *SharedComparator[T]) String() string { return s.label(sharedComparatorKind) }

func (s *SharedComparator[T]) Clone() *SharedComparator[T] {
	return &SharedComparator[T]{wrapCore: wrapCore{name: s.name}, c: s.c}
}

func (s *SharedComparator[T]) Reversed() *SharedComparator[T] {
	return &SharedComparator[T]{c: ReverseComparator[T](s.c)}
}

func (s *SharedComparator[T]) AndThen(q Comparator[T]) *SharedComparator[T] {
	return &SharedComparator[T]{c: ThenComparator[T](s.c, q)}
}

func (s *SharedComparator[T]) Unique() *UniqueComparator[T] {
	return &UniqueComparator[T]{c: s.c}
}

func (s *SharedComparator[T]) Shared() *SharedComparator[T] { return s }

func (s *SharedComparator[T]) Synced() (*SyncedComparator[T], error) {
	return nil, ErrUnsynced
}

func (s *SharedComparator[T]) Func() ComparatorFunc[T] {
	return toComparatorFunc(s.c)
}

type syncedComparatorCell[T any] struct {
	mu     sync.Mutex
	c      Comparator[T]
	direct bool
}

func (c *syncedComparatorCell[T]) compare(a, b T) int {
	if c.direct {
		return c.c.Compare(a, b)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.Compare(a, b)
}

// SyncedComparator is the shared multi-goroutine ownership wrapper for
// the comparison shape. See [SyncedPredicate].
type SyncedComparator[T any] struct {
	wrapCore
	cell *syncedComparatorCell[T]
}

const syncedComparatorKind = "SyncedComparator"

func (s *SyncedComparator[T]) Compare(a, b T) int { return s.cell.compare(a, b) }

func (s *SyncedComparator[T]) String() string { return s.label(syncedComparatorKind) }

func (s *SyncedComparator[T]) Clone() *SyncedComparator[T] {
	return &SyncedComparator[T]{wrapCore: wrapCore{name: s.name}, cell: s.cell}
}

func syncedComparatorGlue[T any](c Comparator[T]) *SyncedComparator[T] {
	return &SyncedComparator[T]{cell: &syncedComparatorCell[T]{c: c, direct: true}}
}

func (s *SyncedComparator[T]) Reversed() *SyncedComparator[T] {
	return syncedComparatorGlue[T](ReverseComparator[T](s))
}

func (s *SyncedComparator[T]) AndThen(q Comparator[T]) *SyncedComparator[T] {
	return syncedComparatorGlue[T](ThenComparator[T](s, q))
}

func (s *SyncedComparator[T]) Unique() *UniqueComparator[T] {
	return &UniqueComparator[T]{c: s}
}

func (s *SyncedComparator[T]) Shared() *SharedComparator[T] {
	return &SharedComparator[T]{c: s}
}

func (s *SyncedComparator[T]) Synced() (*SyncedComparator[T], error) { return s, nil }

func (s *SyncedComparator[T]) Func() ComparatorFunc[T] {
	return s.Compare
}
