// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "sync"

// Consumer is the capability contract for the observation shape: a value
// that performs a side effect on one input and returns nothing. Sequencing
// replaces boolean algebra as the composition vocabulary; ownership
// behaves exactly as for [Predicate].
type Consumer[T any] interface {
	Accept(v T)
}

// ConsumerFunc adapts a bare closure to the [Consumer] contract.
type ConsumerFunc[T any] func(T)

// Accept implements [Consumer] by calling the function.
func (f ConsumerFunc[T]) Accept(v T) { f(v) }

func toConsumerFunc[T any](c Consumer[T]) ConsumerFunc[T] {
	if f, ok := c.(ConsumerFunc[T]); ok {
		return f
	}
	return c.Accept
}

// ThenConsumer sequences two consumers: the result observes the input with
// p first, then q. Combinators introduce no failure modes of their own;
// whatever the operands do is simply done in order.
func ThenConsumer[T any](p, q Consumer[T]) ConsumerFunc[T] {
	return func(v T) {
		p.Accept(v)
		q.Accept(v)
	}
}

// AndThen sequences f before q on the same input.
func (f ConsumerFunc[T]) AndThen(q Consumer[T]) ConsumerFunc[T] {
	return ThenConsumer[T](f, q)
}

// Compose sequences q before f; AndThen with operand order reversed.
func (f ConsumerFunc[T]) Compose(q Consumer[T]) ConsumerFunc[T] {
	return ThenConsumer[T](q, f)
}

// When guards f with pred: the returned value observes the input only
// when pred holds. See [GuardedConsumer].
func (f ConsumerFunc[T]) When(pred Predicate[T]) GuardedConsumer[T] {
	return GuardedConsumer[T]{pred: pred, then: f}
}

func (f ConsumerFunc[T]) Unique() *UniqueConsumer[T] {
	return &UniqueConsumer[T]{c: f}
}

func (f ConsumerFunc[T]) Shared() *SharedConsumer[T] {
	return &SharedConsumer[T]{c: f}
}

func (f ConsumerFunc[T]) Synced() *SyncedConsumer[T] {
	return &SyncedConsumer[T]{cell: &syncedConsumerCell[T]{c: f}}
}

// NewUniqueConsumer places a capability under exclusive ownership.
func NewUniqueConsumer[T any](c Consumer[T]) *UniqueConsumer[T] {
	if u, ok := c.(*UniqueConsumer[T]); ok {
		return u
	}
	return &UniqueConsumer[T]{c: c}
}

// NamedUniqueConsumer is [NewUniqueConsumer] with a diagnostic name.
func NamedUniqueConsumer[T any](name string, c Consumer[T]) *UniqueConsumer[T] {
	u := NewUniqueConsumer(c)
	u.SetName(name)
	return u
}

// NewSharedConsumer places a capability under shared ownership.
func NewSharedConsumer[T any](c Consumer[T]) *SharedConsumer[T] {
	if s, ok := c.(*SharedConsumer[T]); ok {
		return s
	}
	return &SharedConsumer[T]{c: c}
}

// NamedSharedConsumer is [NewSharedConsumer] with a diagnostic name.
func NamedSharedConsumer[T any](name string, c Consumer[T]) *SharedConsumer[T] {
	s := NewSharedConsumer(c)
	s.SetName(name)
	return s
}

// NewSyncedConsumer places a capability under synced ownership. Fails with
// [ErrUnsynced] for unique or shared wrapper inputs; see
// [NewSyncedPredicate].
func NewSyncedConsumer[T any](c Consumer[T]) (*SyncedConsumer[T], error) {
	switch q := c.(type) {
	case *SyncedConsumer[T]:
		return q, nil
	case *UniqueConsumer[T], *SharedConsumer[T]:
		return nil, ErrUnsynced
	}
	return &SyncedConsumer[T]{cell: &syncedConsumerCell[T]{c: c}}, nil
}

// NamedSyncedConsumer is [NewSyncedConsumer] with a diagnostic name.
func NamedSyncedConsumer[T any](name string, c Consumer[T]) (*SyncedConsumer[T], error) {
	s, err := NewSyncedConsumer(c)
	if err != nil {
		return nil, err
	}
	s.SetName(name)
	return s, nil
}

// UniqueConsumer is the exclusive-ownership wrapper for the observation
// shape. Composition and outgoing conversions consume; Accept borrows.
// See [UniquePredicate] for the discipline.
type UniqueConsumer[T any] struct {
	uniqueCore
	c Consumer[T]
}

const uniqueConsumerKind = "UniqueConsumer"

func (u *UniqueConsumer[T]) Accept(v T) {
	u.guard(uniqueConsumerKind)
	u.c.Accept(v)
}

func (u *UniqueConsumer[T]) String() string { return u.label(uniqueConsumerKind) }

func (u *UniqueConsumer[T]) claim() Consumer[T] {
	u.take(uniqueConsumerKind)
	return u.c
}

func claimConsumerOperand[T any](q Consumer[T]) Consumer[T] {
	if uq, ok := q.(*UniqueConsumer[T]); ok {
		return uq.claim()
	}
	return q
}

// AndThen consumes u and q (when q is unique) and returns their sequence
// under fresh exclusive ownership.
func (u *UniqueConsumer[T]) AndThen(q Consumer[T]) *UniqueConsumer[T] {
	return &UniqueConsumer[T]{c: ThenConsumer(u.claim(), claimConsumerOperand(q))}
}

// Compose consumes u and q (when q is unique) and returns the sequence
// with q first.
func (u *UniqueConsumer[T]) Compose(q Consumer[T]) *UniqueConsumer[T] {
	return &UniqueConsumer[T]{c: ThenConsumer(claimConsumerOperand(q), u.claim())}
}

// When consumes u and guards it with pred. The guarded value re-enters the
// lattice through [NewUniqueConsumer] or [GuardedConsumer.OrElse].
func (u *UniqueConsumer[T]) When(pred Predicate[T]) GuardedConsumer[T] {
	return GuardedConsumer[T]{pred: claimPredicateOperand(pred), then: u.claim()}
}

func (u *UniqueConsumer[T]) Unique() *UniqueConsumer[T] { return u }

func (u *UniqueConsumer[T]) Shared() *SharedConsumer[T] {
	return &SharedConsumer[T]{c: u.claim()}
}

func (u *UniqueConsumer[T]) Synced() (*SyncedConsumer[T], error) {
	return nil, ErrUnsynced
}

func (u *UniqueConsumer[T]) Func() ConsumerFunc[T] {
	return toConsumerFunc(u.claim())
}

// SharedConsumer is the shared single-goroutine ownership wrapper for the
// observation shape. See [SharedPredicate].
type SharedConsumer[T any] struct {
	wrapCore
	c Consumer[T]
}

const sharedConsumerKind = "SharedConsumer"

func (s *SharedConsumer[T]) Accept(v T) { s.c.Accept(v) }

func (s *SharedConsumer[T]) String() string { return s.label(sharedConsumerKind) }

func (s *SharedConsumer[T]) Clone() *SharedConsumer[T] {
	return &SharedConsumer[T]{wrapCore: wrapCore{name: s.name}, c: s.c}
}

func (s *SharedConsumer[T]) AndThen(q Consumer[T]) *SharedConsumer[T] {
	return &SharedConsumer[T]{c: ThenConsumer[T](s.c, q)}
}

func (s *SharedConsumer[T]) Compose(q Consumer[T]) *SharedConsumer[T] {
	return &SharedConsumer[T]{c: ThenConsumer[T](q, s.c)}
}

func (s *SharedConsumer[T]) When(pred Predicate[T]) GuardedConsumer[T] {
	return GuardedConsumer[T]{pred: pred, then: s.c}
}

func (s *SharedConsumer[T]) Unique() *UniqueConsumer[T] {
	return &UniqueConsumer[T]{c: s.c}
}

func (s *SharedConsumer[T]) Shared() *SharedConsumer[T] { return s }

func (s *SharedConsumer[T]) Synced() (*SyncedConsumer[T], error) {
	return nil, ErrUnsynced
}

func (s *SharedConsumer[T]) Func() ConsumerFunc[T] {
	return toConsumerFunc(s.c)
}

type syncedConsumerCell[T any] struct {
	mu     sync.Mutex
	c      Consumer[T]
	direct bool
}

func (c *syncedConsumerCell[T]) accept(v T) {
	if c.direct {
		c.c.Accept(v)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.c.Accept(v)
}

// SyncedConsumer is the shared multi-goroutine ownership wrapper for the
// observation shape. Concurrent Accept calls from clones are serialized,
// so captured mutable state loses no updates. See [SyncedPredicate].
type SyncedConsumer[T any] struct {
	wrapCore
	cell *syncedConsumerCell[T]
}

const syncedConsumerKind = "SyncedConsumer"

func (s *SyncedConsumer[T]) Accept(v T) { s.cell.accept(v) }

func (s *SyncedConsumer[T]) String() string { return s.label(syncedConsumerKind) }

func (s *SyncedConsumer[T]) Clone() *SyncedConsumer[T] {
	return &SyncedConsumer[T]{wrapCore: wrapCore{name: s.name}, cell: s.cell}
}

func syncedConsumerGlue[T any](c Consumer[T]) *SyncedConsumer[T] {
	return &SyncedConsumer[T]{cell: &syncedConsumerCell[T]{c: c, direct: true}}
}

func (s *SyncedConsumer[T]) AndThen(q Consumer[T]) *SyncedConsumer[T] {
	return syncedConsumerGlue[T](ThenConsumer[T](s, q))
}

func (s *SyncedConsumer[T]) Compose(q Consumer[T]) *SyncedConsumer[T] {
	return syncedConsumerGlue[T](ThenConsumer[T](q, s))
}

// When guards the synced consumer with pred. The guard routes through s,
// so the branch body stays serialized against clones; pred itself must be
// safe for concurrent use.
func (s *SyncedConsumer[T]) When(pred Predicate[T]) GuardedConsumer[T] {
	return GuardedConsumer[T]{pred: pred, then: s}
}

func (s *SyncedConsumer[T]) Unique() *UniqueConsumer[T] {
	return &UniqueConsumer[T]{c: s}
}

func (s *SyncedConsumer[T]) Shared() *SharedConsumer[T] {
	return &SharedConsumer[T]{c: s}
}

func (s *SyncedConsumer[T]) Synced() (*SyncedConsumer[T], error) { return s, nil }

func (s *SyncedConsumer[T]) Func() ConsumerFunc[T] {
	return s.Accept
}
