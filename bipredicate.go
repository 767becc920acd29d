// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "sync"

// BiPredicate is the capability contract for the two-argument test shape.
// It is the [Predicate] protocol at arity two; ownership and composition
// behave identically.
type BiPredicate[T, U any] interface {
	Test(v T, w U) bool
}

// BiPredicateFunc adapts a bare closure to the [BiPredicate] contract.
type BiPredicateFunc[T, U any] func(T, U) bool

// Test implements [BiPredicate] by calling the function.
func (f BiPredicateFunc[T, U]) Test(v T, w U) bool { return f(v, w) }

func toBiPredicateFunc[T, U any](p BiPredicate[T, U]) BiPredicateFunc[T, U] {
	if f, ok := p.(BiPredicateFunc[T, U]); ok {
		return f
	}
	return p.Test
}

// BiAnd returns the conjunction of p and q, short-circuiting left to right.
func BiAnd[T, U any](p, q BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return func(v T, w U) bool {
		return p.Test(v, w) && q.Test(v, w)
	}
}

// BiOr returns the disjunction of p and q, short-circuiting left to right.
func BiOr[T, U any](p, q BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return func(v T, w U) bool {
		return p.Test(v, w) || q.Test(v, w)
	}
}

// BiNot returns the negation of p.
func BiNot[T, U any](p BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return func(v T, w U) bool {
		return !p.Test(v, w)
	}
}

// BiXor returns exclusive disjunction; both operands are always invoked.
func BiXor[T, U any](p, q BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return func(v T, w U) bool {
		return p.Test(v, w) != q.Test(v, w)
	}
}

// BiNand returns BiNot(BiAnd(p, q)).
func BiNand[T, U any](p, q BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return BiNot[T, U](BiAnd(p, q))
}

// BiNor returns BiNot(BiOr(p, q)).
func BiNor[T, U any](p, q BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return BiNot[T, U](BiOr(p, q))
}

func (f BiPredicateFunc[T, U]) And(q BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return BiAnd[T, U](f, q)
}

func (f BiPredicateFunc[T, U]) Or(q BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return BiOr[T, U](f, q)
}

func (f BiPredicateFunc[T, U]) Not() BiPredicateFunc[T, U] { return BiNot[T, U](f) }

func (f BiPredicateFunc[T, U]) Xor(q BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return BiXor[T, U](f, q)
}

func (f BiPredicateFunc[T, U]) Nand(q BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return BiNand[T, U](f, q)
}

func (f BiPredicateFunc[T, U]) Nor(q BiPredicate[T, U]) BiPredicateFunc[T, U] {
	return BiNor[T, U](f, q)
}

func (f BiPredicateFunc[T, U]) Unique() *UniqueBiPredicate[T, U] {
	return &UniqueBiPredicate[T, U]{p: f}
}

func (f BiPredicateFunc[T, U]) Shared() *SharedBiPredicate[T, U] {
	return &SharedBiPredicate[T, U]{p: f}
}

func (f BiPredicateFunc[T, U]) Synced() *SyncedBiPredicate[T, U] {
	return &SyncedBiPredicate[T, U]{cell: &syncedBiPredicateCell[T, U]{p: f}}
}

// NewUniqueBiPredicate places a capability under exclusive ownership.
func NewUniqueBiPredicate[T, U any](p BiPredicate[T, U]) *UniqueBiPredicate[T, U] {
	if u, ok := p.(*UniqueBiPredicate[T, U]); ok {
		return u
	}
	return &UniqueBiPredicate[T, U]{p: p}
}

// NamedUniqueBiPredicate is [NewUniqueBiPredicate] with a diagnostic name.
func NamedUniqueBiPredicate[T, U any](name string, p BiPredicate[T, U]) *UniqueBiPredicate[T, U] {
	u := NewUniqueBiPredicate(p)
	u.SetName(name)
	return u
}

// NewSharedBiPredicate places a capability under shared ownership.
func NewSharedBiPredicate[T, U any](p BiPredicate[T, U]) *SharedBiPredicate[T, U] {
	if s, ok := p.(*SharedBiPredicate[T, U]); ok {
		return s
	}
	return &SharedBiPredicate[T, U]{p: p}
}

// NamedSharedBiPredicate is [NewSharedBiPredicate] with a diagnostic name.
func NamedSharedBiPredicate[T, U any](name string, p BiPredicate[T, U]) *SharedBiPredicate[T, U] {
	s := NewSharedBiPredicate(p)
	s.SetName(name)
	return s
}

// NewSyncedBiPredicate places a capability under synced ownership.
// Fails with [ErrUnsynced] for unique or shared wrapper inputs; see
// [NewSyncedPredicate].
func NewSyncedBiPredicate[T, U any](p BiPredicate[T, U]) (*SyncedBiPredicate[T, U], error) {
	switch q := p.(type) {
	case *SyncedBiPredicate[T, U]:
		return q, nil
	case *UniqueBiPredicate[T, U], *SharedBiPredicate[T, U]:
		return nil, ErrUnsynced
	}
	return &SyncedBiPredicate[T, U]{cell: &syncedBiPredicateCell[T, U]{p: p}}, nil
}

// NamedSyncedBiPredicate is [NewSyncedBiPredicate] with a diagnostic name.
func NamedSyncedBiPredicate[T, U any](name string, p BiPredicate[T, U]) (*SyncedBiPredicate[T, U], error) {
	s, err := NewSyncedBiPredicate(p)
	if err != nil {
		return nil, err
	}
	s.SetName(name)
	return s, nil
}

// UniqueBiPredicate is the exclusive-ownership wrapper for the two-argument
// test shape. See [UniquePredicate] for the ownership discipline.
type UniqueBiPredicate[T, U any] struct {
	uniqueCore
	p BiPredicate[T, U]
}

const uniqueBiPredicateKind = "UniqueBiPredicate"

func (u *UniqueBiPredicate[T, U]) Test(v T, w U) bool {
	u.guard(uniqueBiPredicateKind)
	return u.p.Test(v, w)
}

func (u *UniqueBiPredicate[T, U]) String() string { return u.label(uniqueBiPredicateKind) }

func (u *UniqueBiPredicate[T, U]) claim() BiPredicate[T, U] {
	u.take(uniqueBiPredicateKind)
	return u.p
}

func claimBiPredicateOperand[T, U any](q BiPredicate[T, U]) BiPredicate[T, U] {
	if uq, ok := q.(*UniqueBiPredicate[T, U]); ok {
		return uq.claim()
	}
	return q
}

func (u *UniqueBiPredicate[T, U]) And(q BiPredicate[T, U]) *UniqueBiPredicate[T, U] {
	return &UniqueBiPredicate[T, U]{p: BiAnd(u.claim(), claimBiPredicateOperand(q))}
}

func (u *UniqueBiPredicate[T, U]) Or(q BiPredicate[T, U]) *UniqueBiPredicate[T, U] {
	return &UniqueBiPredicate[T, U]{p: BiOr(u.claim(), claimBiPredicateOperand(q))}
}

func (u *UniqueBiPredicate[T, U]) Not() *UniqueBiPredicate[T, U] {
	return &UniqueBiPredicate[T, U]{p: BiNot(u.claim())}
}

func (u *UniqueBiPredicate[T, U]) Xor(q BiPredicate[T, U]) *UniqueBiPredicate[T, U] {
	return &UniqueBiPredicate[T, U]{p: BiXor(u.claim(), claimBiPredicateOperand(q))}
}

func (u *UniqueBiPredicate[T, U]) Nand(q BiPredicate[T, U]) *UniqueBiPredicate[T, U] {
	return &UniqueBiPredicate[T, U]{p: BiNand(u.claim(), claimBiPredicateOperand(q))}
}

func (u *UniqueBiPredicate[T, U]) Nor(q BiPredicate[T, U]) *UniqueBiPredicate[T, U] {
	return &UniqueBiPredicate[T, U]{p: BiNor(u.claim(), claimBiPredicateOperand(q))}
}

func (u *UniqueBiPredicate[T, U]) Unique() *UniqueBiPredicate[T, U] { return u }

func (u *UniqueBiPredicate[T, U]) Shared() *SharedBiPredicate[T, U] {
	return &SharedBiPredicate[T, U]{p: u.claim()}
}

func (u *UniqueBiPredicate[T, U]) Synced() (*SyncedBiPredicate[T, U], error) {
	return nil, ErrUnsynced
}

func (u *UniqueBiPredicate[T, U]) Func() BiPredicateFunc[T, U] {
	return toBiPredicateFunc(u.claim())
}

// SharedBiPredicate is the shared single-goroutine ownership wrapper for
// the two-argument test shape. See [SharedPredicate].
type SharedBiPredicate[T, U any] struct {
	wrapCore
	p BiPredicate[T, U]
}

const sharedBiPredicateKind = "SharedBiPredicate"

func (s *SharedBiPredicate[T, U]) Test(v T, w U) bool { return s.p.Test(v, w) }

func (s *SharedBiPredicate[T, U]) String() string { return s.label(sharedBiPredicateKind) }

func (s *SharedBiPredicate[T, U]) Clone() *SharedBiPredicate[T, U] {
	return &SharedBiPredicate[T, U]{wrapCore: wrapCore{name: s.name}, p: s.p}
}

func (s *SharedBiPredicate[T, U]) And(q BiPredicate[T, U]) *SharedBiPredicate[T, U] {
	return &SharedBiPredicate[T, U]{p: BiAnd[T, U](s.p, q)}
}

func (s *SharedBiPredicate[T, U]) Or(q BiPredicate[T, U]) *SharedBiPredicate[T, U] {
	return &SharedBiPredicate[T, U]{p: BiOr[T, U](s.p, q)}
}

func (s *SharedBiPredicate[T, U]) Not() *SharedBiPredicate[T, U] {
	return &SharedBiPredicate[T, U]{p: BiNot[T, U](s.p)}
}

func (s *SharedBiPredicate[T, U]) Xor(q BiPredicate[T, U]) *SharedBiPredicate[T, U] {
	return &SharedBiPredicate[T, U]{p: BiXor[T, U](s.p, q)}
}

func (s *SharedBiPredicate[T, U]) Nand(q BiPredicate[T, U]) *SharedBiPredicate[T, U] {
	return &SharedBiPredicate[T, U]{p: BiNand[T, U](s.p, q)}
}

func (s *SharedBiPredicate[T, U]) Nor(q BiPredicate[T, U]) *SharedBiPredicate[T, U] {
	return &SharedBiPredicate[T, U]{p: BiNor[T, U](s.p, q)}
}

func (s *SharedBiPredicate[T, U]) Unique() *UniqueBiPredicate[T, U] {
	return &UniqueBiPredicate[T, U]{p: s.p}
}

func (s *SharedBiPredicate[T, U]) Shared() *SharedBiPredicate[T, U] { return s }

func (s *SharedBiPredicate[T, U]) Synced() (*SyncedBiPredicate[T, U], error) {
	return nil, ErrUnsynced
}

func (s *SharedBiPredicate[T, U]) Func() BiPredicateFunc[T, U] {
	return toBiPredicateFunc(s.p)
}

type syncedBiPredicateCell[T, U any] struct {
	mu     sync.Mutex
	p      BiPredicate[T, U]
	direct bool
}

func (c *syncedBiPredicateCell[T, U]) test(v T, w U) bool {
	if c.direct {
		return c.p.Test(v, w)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.p.Test(v, w)
}

// SyncedBiPredicate is the shared multi-goroutine ownership wrapper for
// the two-argument test shape. See [SyncedPredicate].
type SyncedBiPredicate[T, U any] struct {
	wrapCore
	cell *syncedBiPredicateCell[T, U]
}

const syncedBiPredicateKind = "SyncedBiPredicate"

func (s *SyncedBiPredicate[T, U]) Test(v T, w U) bool { return s.cell.test(v, w) }

func (s *SyncedBiPredicate[T, U]) String() string { return s.label(syncedBiPredicateKind) }

func (s *SyncedBiPredicate[T, U]) Clone() *SyncedBiPredicate[T, U] {
	return &SyncedBiPredicate[T, U]{wrapCore: wrapCore{name: s.name}, cell: s.cell}
}

func syncedBiGlue[T, U any](p BiPredicate[T, U]) *SyncedBiPredicate[T, U] {
	return &SyncedBiPredicate[T, U]{cell: &syncedBiPredicateCell[T, U]{p: p, direct: true}}
}

func (s *SyncedBiPredicate[T, U]) And(q BiPredicate[T, U]) *SyncedBiPredicate[T, U] {
	return syncedBiGlue[T, U](BiAnd[T, U](s, q))
}

func (s *SyncedBiPredicate[T, U]) Or(q BiPredicate[T, U]) *SyncedBiPredicate[T, U] {
	return syncedBiGlue[T, U](BiOr[T, U](s, q))
}

func (s *SyncedBiPredicate[T, U]) Not() *SyncedBiPredicate[T, U] {
	return syncedBiGlue[T, U](BiNot[T, U](s))
}

func (s *SyncedBiPredicate[T, U]) Xor(q BiPredicate[T, U]) *SyncedBiPredicate[T, U] {
	return syncedBiGlue[T, U](BiXor[T, U](s, q))
}

func (s *SyncedBiPredicate[T, U]) Nand(q BiPredicate[T, U]) *SyncedBiPredicate[T, U] {
	return syncedBiGlue[T, U](BiNand[T, U](s, q))
}

func (s *SyncedBiPredicate[T, U]) Nor(q BiPredicate[T, U]) *SyncedBiPredicate[T, U] {
	return syncedBiGlue[T, U](BiNor[T, U](s, q))
}

func (s *SyncedBiPredicate[T, U]) Unique() *UniqueBiPredicate[T, U] {
	return &UniqueBiPredicate[T, U]{p: s}
}

func (s *SyncedBiPredicate[T, U]) Shared() *SharedBiPredicate[T, U] {
	return &SharedBiPredicate[T, U]{p: s}
}

func (s *SyncedBiPredicate[T, U]) Synced() (*SyncedBiPredicate[T, U], error) { return s, nil }

func (s *SyncedBiPredicate[T, U]) Func() BiPredicateFunc[T, U] {
	return s.Test
}
