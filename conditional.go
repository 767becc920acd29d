// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Conditional combinators: When guards an effectful capability with a
// predicate; OrElse completes the guard into if/then/else. The predicate
// is evaluated exactly once per invocation and exactly one branch runs
// when an else branch is present — never both, never neither.

// When guards c with pred: the returned value observes the input only
// when pred holds for it.
func When[T any](pred Predicate[T], c Consumer[T]) GuardedConsumer[T] {
	return GuardedConsumer[T]{pred: pred, then: c}
}

// WhenMutator guards m with pred: the value is mutated only when pred
// holds for its current contents.
func WhenMutator[T any](pred Predicate[T], m Mutator[T]) GuardedMutator[T] {
	return GuardedMutator[T]{pred: pred, then: m}
}

// GuardedConsumer is a consumer that runs its branch only when the guard
// predicate holds; otherwise the invocation is a no-op. It satisfies
// [Consumer], so a guard composes and converts like any other capability.
type GuardedConsumer[T any] struct {
	pred Predicate[T]
	then Consumer[T]
}

// Accept runs the guarded branch when the predicate holds for v.
func (g GuardedConsumer[T]) Accept(v T) {
	if g.pred.Test(v) {
		g.then.Accept(v)
	}
}

// OrElse completes the guard into if/then/else: the predicate decides
// which of the two branches runs, and exactly one always does. The
// predicate result is read once; the untaken branch is not invoked.
func (g GuardedConsumer[T]) OrElse(alt Consumer[T]) ConsumerFunc[T] {
	pred, then := g.pred, g.then
	return func(v T) {
		if pred.Test(v) {
			then.Accept(v)
		} else {
			alt.Accept(v)
		}
	}
}

// GuardedMutator is the mutation form of [GuardedConsumer]. The guard
// tests the value's current contents; the branch then mutates in place.
type GuardedMutator[T any] struct {
	pred Predicate[T]
	then Mutator[T]
}

// Mutate runs the guarded branch when the predicate holds for *v.
func (g GuardedMutator[T]) Mutate(v *T) {
	if g.pred.Test(*v) {
		g.then.Mutate(v)
	}
}

// OrElse completes the guard into if/then/else over the pointed-to value.
// The predicate is evaluated once, before either branch can touch the
// value, and exactly one branch runs.
func (g GuardedMutator[T]) OrElse(alt Mutator[T]) MutatorFunc[T] {
	pred, then := g.pred, g.then
	return func(v *T) {
		if pred.Test(*v) {
			then.Mutate(v)
		} else {
			alt.Mutate(v)
		}
	}
}
