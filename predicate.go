// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "sync"

// Predicate is the capability contract for the single-argument test shape:
// a value that can decide a boolean question about one input.
//
// A Predicate has no identity beyond its behavior. It may hold captured
// state; how that state may be shared is decided by the ownership wrapper
// it is placed in, not by the contract.
//
// Any minimal implementation of Test participates in the full conversion
// lattice through [NewUniquePredicate], [NewSharedPredicate], and
// [NewSyncedPredicate], and in the composition algebra through the
// package-level combinators [And], [Or], [Not], [Xor], [Nand], and [Nor].
type Predicate[T any] interface {
	Test(v T) bool
}

// PredicateFunc adapts a bare closure to the [Predicate] contract.
// Any function matching the test signature satisfies the contract with
// Test defined as "call the function"; no wrapper declaration is needed
// for throwaway lambdas.
type PredicateFunc[T any] func(T) bool

// Test implements [Predicate] by calling the function.
func (f PredicateFunc[T]) Test(v T) bool { return f(v) }

// toPredicateFunc converts any contract implementation to the bare-closure
// form. An adapter passes through unchanged; a method value is taken
// otherwise, so no intermediate closure is allocated.
func toPredicateFunc[T any](p Predicate[T]) PredicateFunc[T] {
	if f, ok := p.(PredicateFunc[T]); ok {
		return f
	}
	return p.Test
}

// And returns the conjunction of p and q. Evaluation is left to right with
// short-circuit semantics: q.Test is not invoked when p already decided
// the result false.
func And[T any](p, q Predicate[T]) PredicateFunc[T] {
	return func(v T) bool {
		return p.Test(v) && q.Test(v)
	}
}

// Or returns the disjunction of p and q. Evaluation is left to right with
// short-circuit semantics: q.Test is not invoked when p already decided
// the result true.
func Or[T any](p, q Predicate[T]) PredicateFunc[T] {
	return func(v T) bool {
		return p.Test(v) || q.Test(v)
	}
}

// Not returns the negation of p.
func Not[T any](p Predicate[T]) PredicateFunc[T] {
	return func(v T) bool {
		return !p.Test(v)
	}
}

// Xor returns exclusive disjunction: true iff exactly one of p, q holds.
// Both operands are always invoked; exclusive disjunction admits no
// short circuit.
func Xor[T any](p, q Predicate[T]) PredicateFunc[T] {
	return func(v T) bool {
		return p.Test(v) != q.Test(v)
	}
}

// Nand returns Not(And(p, q)), inheriting And's short-circuit behavior.
func Nand[T any](p, q Predicate[T]) PredicateFunc[T] {
	return Not[T](And(p, q))
}

// Nor returns Not(Or(p, q)), inheriting Or's short-circuit behavior.
func Nor[T any](p, q Predicate[T]) PredicateFunc[T] {
	return Not[T](Or(p, q))
}

// And returns the short-circuit conjunction of f and q as a bare closure.
func (f PredicateFunc[T]) And(q Predicate[T]) PredicateFunc[T] { return And[T](f, q) }

// Or returns the short-circuit disjunction of f and q as a bare closure.
func (f PredicateFunc[T]) Or(q Predicate[T]) PredicateFunc[T] { return Or[T](f, q) }

// Not returns the negation of f as a bare closure.
func (f PredicateFunc[T]) Not() PredicateFunc[T] { return Not[T](f) }

// Xor returns the exclusive disjunction of f and q as a bare closure.
func (f PredicateFunc[T]) Xor(q Predicate[T]) PredicateFunc[T] { return Xor[T](f, q) }

// Nand returns Not(And(f, q)) as a bare closure.
func (f PredicateFunc[T]) Nand(q Predicate[T]) PredicateFunc[T] { return Nand[T](f, q) }

// Nor returns Not(Or(f, q)) as a bare closure.
func (f PredicateFunc[T]) Nor(q Predicate[T]) PredicateFunc[T] { return Nor[T](f, q) }

// Unique wraps the closure in a fresh unique wrapper. The closure is held
// directly; no generic contract indirection is inserted.
func (f PredicateFunc[T]) Unique() *UniquePredicate[T] {
	return &UniquePredicate[T]{p: f}
}

// Shared wraps the closure in a fresh shared wrapper.
func (f PredicateFunc[T]) Shared() *SharedPredicate[T] {
	return &SharedPredicate[T]{p: f}
}

// Synced wraps the closure in a fresh synced wrapper. Conversion from the
// bare-closure form cannot fail: the caller hands over the only access
// path, so the wrapper's lock is the sole route to any captured state.
func (f PredicateFunc[T]) Synced() *SyncedPredicate[T] {
	return &SyncedPredicate[T]{cell: &syncedPredicateCell[T]{p: f}}
}

// NewUniquePredicate places a capability under exclusive ownership.
// This is the generic conversion for any contract implementation, defined
// in terms of Test alone; wrapper inputs take allocation-reusing fast
// paths, and converting a unique wrapper to its own kind is an identity
// pass-through.
func NewUniquePredicate[T any](p Predicate[T]) *UniquePredicate[T] {
	if u, ok := p.(*UniquePredicate[T]); ok {
		return u
	}
	return &UniquePredicate[T]{p: p}
}

// NamedUniquePredicate is [NewUniquePredicate] with a diagnostic name.
func NamedUniquePredicate[T any](name string, p Predicate[T]) *UniquePredicate[T] {
	u := NewUniquePredicate(p)
	u.SetName(name)
	return u
}

// NewSharedPredicate places a capability under shared single-goroutine
// ownership. Converting a shared wrapper to its own kind is an identity
// pass-through.
func NewSharedPredicate[T any](p Predicate[T]) *SharedPredicate[T] {
	if s, ok := p.(*SharedPredicate[T]); ok {
		return s
	}
	return &SharedPredicate[T]{p: p}
}

// NamedSharedPredicate is [NewSharedPredicate] with a diagnostic name.
func NamedSharedPredicate[T any](name string, p Predicate[T]) *SharedPredicate[T] {
	s := NewSharedPredicate(p)
	s.SetName(name)
	return s
}

// NewSyncedPredicate places a capability under shared multi-goroutine
// ownership. Invocations of the capability are serialized by the wrapper,
// so captured mutable state cannot race across clones.
//
// The conversion fails with [ErrUnsynced] when p is a unique or shared
// wrapper: the original (or its clones) retains access paths that bypass
// the lock. Build the synced wrapper from the original function or
// contract value instead. Capabilities supplied directly are assumed to
// have no other access path; that is the caller's obligation.
func NewSyncedPredicate[T any](p Predicate[T]) (*SyncedPredicate[T], error) {
	switch q := p.(type) {
	case *SyncedPredicate[T]:
		return q, nil
	case *UniquePredicate[T], *SharedPredicate[T]:
		return nil, ErrUnsynced
	}
	return &SyncedPredicate[T]{cell: &syncedPredicateCell[T]{p: p}}, nil
}

// NamedSyncedPredicate is [NewSyncedPredicate] with a diagnostic name.
func NamedSyncedPredicate[T any](name string, p Predicate[T]) (*SyncedPredicate[T], error) {
	s, err := NewSyncedPredicate(p)
	if err != nil {
		return nil, err
	}
	s.SetName(name)
	return s, nil
}

// UniquePredicate is the exclusive-ownership wrapper around one predicate
// capability. Composition operators and outgoing conversions consume the
// wrapper: the first consuming operation wins and every later use panics.
// Consumption also claims a unique operand, so neither input to a
// composition survives it.
//
// Test borrows rather than consumes; a unique wrapper may be invoked any
// number of times before it is composed or converted.
type UniquePredicate[T any] struct {
	uniqueCore
	p Predicate[T]
}

const uniquePredicateKind = "UniquePredicate"

// Test invokes the wrapped capability. Panics if the wrapper was consumed.
func (u *UniquePredicate[T]) Test(v T) bool {
	u.guard(uniquePredicateKind)
	return u.p.Test(v)
}

// String renders "UniquePredicate(<name>)", or "UniquePredicate" when
// unnamed.
func (u *UniquePredicate[T]) String() string { return u.label(uniquePredicateKind) }

// claim consumes the wrapper and releases its capability for composition.
// A unique operand passed to a combinator is claimed the same way, so the
// composed result holds bare capabilities, not dead wrappers.
func (u *UniquePredicate[T]) claim() Predicate[T] {
	u.take(uniquePredicateKind)
	return u.p
}

// claimPredicateOperand claims q when it is a unique wrapper, and borrows
// it otherwise.
func claimPredicateOperand[T any](q Predicate[T]) Predicate[T] {
	if uq, ok := q.(*UniquePredicate[T]); ok {
		return uq.claim()
	}
	return q
}

// And consumes u and q (when q is unique) and returns their short-circuit
// conjunction under fresh exclusive ownership. The result is unnamed.
func (u *UniquePredicate[T]) And(q Predicate[T]) *UniquePredicate[T] {
	return &UniquePredicate[T]{p: And(u.claim(), claimPredicateOperand(q))}
}

// Or consumes u and q (when q is unique) and returns their short-circuit
// disjunction under fresh exclusive ownership.
func (u *UniquePredicate[T]) Or(q Predicate[T]) *UniquePredicate[T] {
	return &UniquePredicate[T]{p: Or(u.claim(), claimPredicateOperand(q))}
}

// Not consumes u and returns its negation under fresh exclusive ownership.
func (u *UniquePredicate[T]) Not() *UniquePredicate[T] {
	return &UniquePredicate[T]{p: Not(u.claim())}
}

// Xor consumes u and q (when q is unique) and returns their exclusive
// disjunction under fresh exclusive ownership.
func (u *UniquePredicate[T]) Xor(q Predicate[T]) *UniquePredicate[T] {
	return &UniquePredicate[T]{p: Xor(u.claim(), claimPredicateOperand(q))}
}

// Nand consumes u and q (when q is unique) and returns Not(And(u, q))
// under fresh exclusive ownership.
func (u *UniquePredicate[T]) Nand(q Predicate[T]) *UniquePredicate[T] {
	return &UniquePredicate[T]{p: Nand(u.claim(), claimPredicateOperand(q))}
}

// Nor consumes u and q (when q is unique) and returns Not(Or(u, q)) under
// fresh exclusive ownership.
func (u *UniquePredicate[T]) Nor(q Predicate[T]) *UniquePredicate[T] {
	return &UniquePredicate[T]{p: Nor(u.claim(), claimPredicateOperand(q))}
}

// Unique is the identity conversion: it returns u itself, unconsumed.
func (u *UniquePredicate[T]) Unique() *UniquePredicate[T] { return u }

// Shared consumes u and moves its capability under shared ownership,
// reusing the capability value directly.
func (u *UniquePredicate[T]) Shared() *SharedPredicate[T] {
	return &SharedPredicate[T]{p: u.claim()}
}

// Synced fails with [ErrUnsynced]: exclusive ownership gives no way to
// prove the capability reachable only through a lock once handed over.
// The wrapper is not consumed by the failed conversion.
func (u *UniquePredicate[T]) Synced() (*SyncedPredicate[T], error) {
	return nil, ErrUnsynced
}

// Func consumes u and returns the capability in bare-closure form. When
// the capability is already an adapter it is returned as is.
func (u *UniquePredicate[T]) Func() PredicateFunc[T] {
	return toPredicateFunc(u.claim())
}

// SharedPredicate is the shared single-goroutine ownership wrapper.
// Clone duplicates the reference to the capability, not the capability:
// all clones observe the same captured state. Composition operators
// borrow the wrapper, leaving it usable, and never claim their operands.
//
// A shared wrapper and its clones must stay on one goroutine; nothing
// serializes access to captured state.
type SharedPredicate[T any] struct {
	wrapCore
	p Predicate[T]
}

const sharedPredicateKind = "SharedPredicate"

// Test invokes the shared capability.
func (s *SharedPredicate[T]) Test(v T) bool { return s.p.Test(v) }

// String renders "SharedPredicate(<name>)", or "SharedPredicate" when
// unnamed.
func (s *SharedPredicate[T]) String() string { return s.label(sharedPredicateKind) }

// Clone returns a new wrapper sharing the same capability. The name is
// copied; renaming a clone never affects its siblings.
func (s *SharedPredicate[T]) Clone() *SharedPredicate[T] {
	return &SharedPredicate[T]{wrapCore: wrapCore{name: s.name}, p: s.p}
}

// And borrows s and q and returns their short-circuit conjunction under
// fresh shared ownership. The result is unnamed.
func (s *SharedPredicate[T]) And(q Predicate[T]) *SharedPredicate[T] {
	return &SharedPredicate[T]{p: And[T](s.p, q)}
}

// Or borrows s and q and returns their short-circuit disjunction under
// fresh shared ownership.
func (s *SharedPredicate[T]) Or(q Predicate[T]) *SharedPredicate[T] {
	return &SharedPredicate[T]{p: Or[T](s.p, q)}
}

// Not borrows s and returns its negation under fresh shared ownership.
func (s *SharedPredicate[T]) Not() *SharedPredicate[T] {
	return &SharedPredicate[T]{p: Not[T](s.p)}
}

// Xor borrows s and q and returns their exclusive disjunction under fresh
// shared ownership.
func (s *SharedPredicate[T]) Xor(q Predicate[T]) *SharedPredicate[T] {
	return &SharedPredicate[T]{p: Xor[T](s.p, q)}
}

// Nand borrows s and q and returns Not(And(s, q)) under fresh shared
// ownership.
func (s *SharedPredicate[T]) Nand(q Predicate[T]) *SharedPredicate[T] {
	return &SharedPredicate[T]{p: Nand[T](s.p, q)}
}

// Nor borrows s and q and returns Not(Or(s, q)) under fresh shared
// ownership.
func (s *SharedPredicate[T]) Nor(q Predicate[T]) *SharedPredicate[T] {
	return &SharedPredicate[T]{p: Nor[T](s.p, q)}
}

// Unique returns an exclusive view of the shared capability without
// consuming s. The capability value is reused; the unique wrapper and the
// surviving clones observe the same captured state.
func (s *SharedPredicate[T]) Unique() *UniquePredicate[T] {
	return &UniquePredicate[T]{p: s.p}
}

// Shared is the identity conversion: it returns s itself.
func (s *SharedPredicate[T]) Shared() *SharedPredicate[T] { return s }

// Synced fails with [ErrUnsynced]: clones of s retain lock-free access
// paths to the capability.
func (s *SharedPredicate[T]) Synced() (*SyncedPredicate[T], error) {
	return nil, ErrUnsynced
}

// Func returns the shared capability in bare-closure form without
// consuming s. An adapter capability is reused as is.
func (s *SharedPredicate[T]) Func() PredicateFunc[T] {
	return toPredicateFunc(s.p)
}

// syncedPredicateCell is the state shared by all clones of a synced
// predicate wrapper. direct marks stateless composition glue whose
// operands serialize themselves; the glue skips its own lock.
type syncedPredicateCell[T any] struct {
	mu     sync.Mutex
	p      Predicate[T]
	direct bool
}

func (c *syncedPredicateCell[T]) test(v T) bool {
	if c.direct {
		return c.p.Test(v)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.p.Test(v)
}

// SyncedPredicate is the shared multi-goroutine ownership wrapper. Clones
// share one mutex-guarded cell; concurrent invocations of a user-supplied
// capability are serialized, so captured mutable state observes every
// mutation with none lost.
//
// Composition operators borrow, as on [SharedPredicate]. Operands passed
// as bare closures are invoked outside the composer's lock and must be
// safe for concurrent use on their own.
type SyncedPredicate[T any] struct {
	wrapCore
	cell *syncedPredicateCell[T]
}

const syncedPredicateKind = "SyncedPredicate"

// Test invokes the capability, serialized against all clones unless the
// cell holds stateless composition glue.
func (s *SyncedPredicate[T]) Test(v T) bool { return s.cell.test(v) }

// String renders "SyncedPredicate(<name>)", or "SyncedPredicate" when
// unnamed.
func (s *SyncedPredicate[T]) String() string { return s.label(syncedPredicateKind) }

// Clone returns a new wrapper sharing the same guarded cell. The name is
// copied; renaming a clone never affects its siblings.
func (s *SyncedPredicate[T]) Clone() *SyncedPredicate[T] {
	return &SyncedPredicate[T]{wrapCore: wrapCore{name: s.name}, cell: s.cell}
}

// syncedGlue wraps stateless composition glue in a lock-skipping cell.
func syncedGlue[T any](p Predicate[T]) *SyncedPredicate[T] {
	return &SyncedPredicate[T]{cell: &syncedPredicateCell[T]{p: p, direct: true}}
}

// And borrows s and q and returns their short-circuit conjunction under
// fresh synced ownership. s keeps serializing itself inside the result.
func (s *SyncedPredicate[T]) And(q Predicate[T]) *SyncedPredicate[T] {
	return syncedGlue[T](And[T](s, q))
}

// Or borrows s and q and returns their short-circuit disjunction under
// fresh synced ownership.
func (s *SyncedPredicate[T]) Or(q Predicate[T]) *SyncedPredicate[T] {
	return syncedGlue[T](Or[T](s, q))
}

// Not borrows s and returns its negation under fresh synced ownership.
func (s *SyncedPredicate[T]) Not() *SyncedPredicate[T] {
	return syncedGlue[T](Not[T](s))
}

// Xor borrows s and q and returns their exclusive disjunction under fresh
// synced ownership.
func (s *SyncedPredicate[T]) Xor(q Predicate[T]) *SyncedPredicate[T] {
	return syncedGlue[T](Xor[T](s, q))
}

// Nand borrows s and q and returns Not(And(s, q)) under fresh synced
// ownership.
func (s *SyncedPredicate[T]) Nand(q Predicate[T]) *SyncedPredicate[T] {
	return syncedGlue[T](Nand[T](s, q))
}

// Nor borrows s and q and returns Not(Or(s, q)) under fresh synced
// ownership.
func (s *SyncedPredicate[T]) Nor(q Predicate[T]) *SyncedPredicate[T] {
	return syncedGlue[T](Nor[T](s, q))
}

// Unique returns an exclusive view of the synced capability without
// consuming s. The view goes through the cell, so invocations stay
// serialized against surviving clones.
func (s *SyncedPredicate[T]) Unique() *UniquePredicate[T] {
	return &UniquePredicate[T]{p: s}
}

// Shared returns a single-goroutine shared view without consuming s,
// likewise routed through the cell.
func (s *SyncedPredicate[T]) Shared() *SharedPredicate[T] {
	return &SharedPredicate[T]{p: s}
}

// Synced is the identity conversion: it returns s itself.
func (s *SyncedPredicate[T]) Synced() (*SyncedPredicate[T], error) { return s, nil }

// Func returns the capability in bare-closure form without consuming s.
// The closure goes through the cell and stays serialized.
func (s *SyncedPredicate[T]) Func() PredicateFunc[T] {
	return s.Test
}
