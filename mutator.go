// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "sync"

// Mutator is the capability contract for the in-place mutation shape: the
// input is reached through a pointer and updated where it lives. This is
// the observation protocol with write access; ownership and sequencing
// behave as for [Consumer].
type Mutator[T any] interface {
	Mutate(v *T)
}

// MutatorFunc adapts a bare closure to the [Mutator] contract.
type MutatorFunc[T any] func(*T)

// Mutate implements [Mutator] by calling the function.
func (f MutatorFunc[T]) Mutate(v *T) { f(v) }

func toMutatorFunc[T any](m Mutator[T]) MutatorFunc[T] {
	if f, ok := m.(MutatorFunc[T]); ok {
		return f
	}
	return m.Mutate
}

// ThenMutator sequences two mutators: p updates the value first, then q
// observes p's result and updates further.
func ThenMutator[T any](p, q Mutator[T]) MutatorFunc[T] {
	return func(v *T) {
		p.Mutate(v)
		q.Mutate(v)
	}
}

// AndThen sequences f before q on the same value.
func (f MutatorFunc[T]) AndThen(q Mutator[T]) MutatorFunc[T] {
	return ThenMutator[T](f, q)
}

// Compose sequences q before f; AndThen with operand order reversed.
func (f MutatorFunc[T]) Compose(q Mutator[T]) MutatorFunc[T] {
	return ThenMutator[T](q, f)
}

// When guards f with pred: the value is mutated only when pred holds for
// its current contents. See [GuardedMutator].
func (f MutatorFunc[T]) When(pred Predicate[T]) GuardedMutator[T] {
	return GuardedMutator[T]{pred: pred, then: f}
}

func (f MutatorFunc[T]) Unique() *UniqueMutator[T] {
	return &UniqueMutator[T]{m: f}
}

func (f MutatorFunc[T]) Shared() *SharedMutator[T] {
	return &SharedMutator[T]{m: f}
}

func (f MutatorFunc[T]) Synced() *SyncedMutator[T] {
	return &SyncedMutator[T]{cell: &syncedMutatorCell[T]{m: f}}
}

// NewUniqueMutator places a capability under exclusive ownership.
func NewUniqueMutator[T any](m Mutator[T]) *UniqueMutator[T] {
	if u, ok := m.(*UniqueMutator[T]); ok {
		return u
	}
	return &UniqueMutator[T]{m: m}
}

// NamedUniqueMutator is [NewUniqueMutator] with a diagnostic name.
func NamedUniqueMutator[T any](name string, m Mutator[T]) *UniqueMutator[T] {
	u := NewUniqueMutator(m)
	u.SetName(name)
	return u
}

// NewSharedMutator places a capability under shared ownership.
func NewSharedMutator[T any](m Mutator[T]) *SharedMutator[T] {
	if s, ok := m.(*SharedMutator[T]); ok {
		return s
	}
	return &SharedMutator[T]{m: m}
}

// NamedSharedMutator is [NewSharedMutator] with a diagnostic name.
func NamedSharedMutator[T any](name string, m Mutator[T]) *SharedMutator[T] {
	s := NewSharedMutator(m)
	s.SetName(name)
	return s
}

// NewSyncedMutator places a capability under synced ownership. Fails with
// [ErrUnsynced] for unique or shared wrapper inputs; see
// [NewSyncedPredicate]. Note the lock serializes the mutator's captured
// state, not the pointed-to value: callers racing on the same *T need
// their own coordination.
func NewSyncedMutator[T any](m Mutator[T]) (*SyncedMutator[T], error) {
	switch q := m.(type) {
	case *SyncedMutator[T]:
		return q, nil
	case *UniqueMutator[T], *SharedMutator[T]:
		return nil, ErrUnsynced
	}
	return &SyncedMutator[T]{cell: &syncedMutatorCell[T]{m: m}}, nil
}

// NamedSyncedMutator is [NewSyncedMutator] with a diagnostic name.
func NamedSyncedMutator[T any](name string, m Mutator[T]) (*SyncedMutator[T], error) {
	s, err := NewSyncedMutator(m)
	if err != nil {
		return nil, err
	}
	s.SetName(name)
	return s, nil
}

// UniqueMutator is the exclusive-ownership wrapper for the mutation shape.
// See [UniquePredicate] for the discipline.
type UniqueMutator[T any] struct {
	uniqueCore
	m Mutator[T]
}

const uniqueMutatorKind = "UniqueMutator"

func (u *UniqueMutator[T]) Mutate(v *T) {
	u.guard(uniqueMutatorKind)
	u.m.Mutate(v)
}

func (u *UniqueMutator[T]) String() string { return u.label(uniqueMutatorKind) }

func (u *UniqueMutator[T]) claim() Mutator[T] {
	u.take(uniqueMutatorKind)
	return u.m
}

func claimMutatorOperand[T any](q Mutator[T]) Mutator[T] {
	if uq, ok := q.(*UniqueMutator[T]); ok {
		return uq.claim()
	}
	return q
}

func (u *UniqueMutator[T]) AndThen(q Mutator[T]) *UniqueMutator[T] {
	return &UniqueMutator[T]{m: ThenMutator(u.claim(), claimMutatorOperand(q))}
}

func (u *UniqueMutator[T]) Compose(q Mutator[T]) *UniqueMutator[T] {
	return &UniqueMutator[T]{m: ThenMutator(claimMutatorOperand(q), u.claim())}
}

func (u *UniqueMutator[T]) When(pred Predicate[T]) GuardedMutator[T] {
	return GuardedMutator[T]{pred: claimPredicateOperand(pred), then: u.claim()}
}

func (u *UniqueMutator[T]) Unique() *UniqueMutator[T] { return u }

func (u *UniqueMutator[T]) Shared() *SharedMutator[T] {
	return &SharedMutator[T]{m: u.claim()}
}

func (u *UniqueMutator[T]) Synced() (*SyncedMutator[T], error) {
	return nil, ErrUnsynced
}

func (u *UniqueMutator[T]) Func() MutatorFunc[T] {
	return toMutatorFunc(u.claim())
}

// SharedMutator is the shared single-goroutine ownership wrapper for the
// mutation shape. See [SharedPredicate].
type SharedMutator[T any] struct {
	wrapCore
	m Mutator[T]
}

const sharedMutatorKind = "SharedMutator"

func (s *SharedMutator[T]) Mutate(v *T) { s.m.Mutate(v) }

func (s *SharedMutator[T]) String() string { return s.label(sharedMutatorKind) }

func (s *SharedMutator[T]) Clone() *SharedMutator[T] {
	return &SharedMutator[T]{wrapCore: wrapCore{name: s.name}, m: s.m}
}

func (s *SharedMutator[T]) AndThen(q Mutator[T]) *SharedMutator[T] {
	return &SharedMutator[T]{m: ThenMutator[T](s.m, q)}
}

func (s *SharedMutator[T]) Compose(q Mutator[T]) *SharedMutator[T] {
	return &SharedMutator[T]{m: ThenMutator[T](q, s.m)}
}

func (s *SharedMutator[T]) When(pred Predicate[T]) GuardedMutator[T] {
	return GuardedMutator[T]{pred: pred, then: s.m}
}

func (s *SharedMutator[T]) Unique() *UniqueMutator[T] {
	return &UniqueMutator[T]{m: s.m}
}

func (s *SharedMutator[T]) Shared() *SharedMutator[T] { return s }

func (s *SharedMutator[T]) Synced() (*SyncedMutator[T], error) {
	return nil, ErrUnsynced
}

func (s *SharedMutator[T]) Func() MutatorFunc[T] {
	return toMutatorFunc(s.m)
}

type syncedMutatorCell[T any] struct {
	mu     sync.Mutex
	m      Mutator[T]
	direct bool
}

func (c *syncedMutatorCell[T]) mutate(v *T) {
	if c.direct {
		c.m.Mutate(v)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m.Mutate(v)
}

// SyncedMutator is the shared multi-goroutine ownership wrapper for the
// mutation shape. See [SyncedPredicate] and the [NewSyncedMutator] note on
// what the lock does and does not cover.
type SyncedMutator[T any] struct {
	wrapCore
	cell *syncedMutatorCell[T]
}

const syncedMutatorKind = "SyncedMutator"

func (s *SyncedMutator[T]) Mutate(v *T) { s.cell.mutate(v) }

func (s *SyncedMutator[T]) String() string { return s.label(syncedMutatorKind) }

func (s *SyncedMutator[T]) Clone() *SyncedMutator[T] {
	return &SyncedMutator[T]{wrapCore: wrapCore{name: s.name}, cell: s.cell}
}

func syncedMutatorGlue[T any](m Mutator[T]) *SyncedMutator[T] {
	return &SyncedMutator[T]{cell: &syncedMutatorCell[T]{m: m, direct: true}}
}

func (s *SyncedMutator[T]) AndThen(q Mutator[T]) *SyncedMutator[T] {
	return syncedMutatorGlue[T](ThenMutator[T](s, q))
}

func (s *SyncedMutator[T]) Compose(q Mutator[T]) *SyncedMutator[T] {
	return syncedMutatorGlue[T](ThenMutator[T](q, s))
}

func (s *SyncedMutator[T]) When(pred Predicate[T]) GuardedMutator[T] {
	return GuardedMutator[T]{pred: pred, then: s}
}

func (s *SyncedMutator[T]) Unique() *UniqueMutator[T] {
	return &UniqueMutator[T]{m: s}
}

func (s *SyncedMutator[T]) Shared() *SharedMutator[T] {
	return &SharedMutator[T]{m: s}
}

func (s *SyncedMutator[T]) Synced() (*SyncedMutator[T], error) { return s, nil }

func (s *SyncedMutator[T]) Func() MutatorFunc[T] {
	return s.Mutate
}
