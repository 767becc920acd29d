// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package komb provides composable behavior capabilities in Go: small,
// optionally named units — test a value, observe it, mutate it, produce
// one, compare two, transform one — that share a single ownership and
// composition protocol.
//
// Every operation shape is the same protocol with a different signature:
// a one-method capability contract, a native-closure adapter, three
// ownership wrappers, a composition algebra whose operators respect the
// ownership discipline of the wrapper they are invoked on, and a lossless
// conversion lattice between the wrappers and the bare-closure form.
//
// # Design Philosophy
//
// komb provides:
//   - Minimal one-method contracts; composition is closed over them, so a
//     composed pipeline is indistinguishable from an atomic capability
//   - Ownership as an explicit, per-wrapper discipline rather than a
//     global convention
//   - Allocation-reusing conversions: same-kind conversion is a
//     pass-through, and adapters travel through the lattice without an
//     extra indirection layer
//
// # Capability Contracts
//
// One interface per operation shape:
//
//   - [Predicate]: test one value, Test(T) bool
//   - [BiPredicate]: test two values, Test(T, U) bool
//   - [Consumer]: observe a value, Accept(T)
//   - [Mutator]: update a value in place, Mutate(*T)
//   - [Supplier]: produce a value, Get() T
//   - [Comparator]: order two values, Compare(T, T) int
//   - [Transformer]: transform a value, Transform(T) R
//
// A capability has no identity beyond its behavior; captured state is
// governed by the wrapper it is placed in.
//
// # Native Closures
//
// Any function matching a shape's call signature satisfies its contract
// through the adapter types [PredicateFunc], [BiPredicateFunc],
// [ConsumerFunc], [MutatorFunc], [SupplierFunc], [ComparatorFunc], and
// [TransformerFunc]. Adapter conversions wrap the closure directly into
// the target wrapper, skipping the contract-generic path.
//
// # Ownership
//
// Three wrappers per shape, differing only in discipline:
//
//   - Unique (e.g. [UniquePredicate]): exclusive ownership. Composition
//     operators and outgoing conversions consume the wrapper and claim
//     unique operands; any later use panics. Invocation borrows. Go has
//     no move checking, so consumption is enforced at run time by an
//     atomic use counter.
//   - Shared (e.g. [SharedPredicate]): shared single-goroutine ownership.
//     Clone duplicates the reference to the capability; all clones
//     observe the same captured state. Composition borrows; operands and
//     receiver remain usable. Not safe for concurrent use.
//   - Synced (e.g. [SyncedPredicate]): shared multi-goroutine ownership.
//     Clones share one mutex-guarded cell; invocations of a
//     user-supplied capability are serialized, so captured mutable state
//     cannot lose updates. Composition results are stateless glue over
//     self-serializing operands and skip the composer's own lock.
//
// Construction: New<Kind><Shape> from any contract value, Named variants
// attach a diagnostic name, and adapters convert directly via Unique,
// Shared, and Synced methods.
//
// # Composition Algebra
//
// Test shapes carry boolean algebra with short-circuit And/Or evaluated
// left to right:
//
//   - [And], [Or], [Not], [Xor], [Nand], [Nor] (and [BiAnd] et al. for
//     the two-argument shape), mirrored as methods on adapters and
//     wrappers
//
// Effectful and producing shapes carry sequencing:
//
//   - [ThenConsumer], [ThenMutator]: run both operands in order on the
//     same input; AndThen/Compose methods on adapters and wrappers
//   - [AndThen], [Compose]: thread a transformer's output into the next
//     ([Identity] and [Const] are the unit and absorbing transformers)
//   - [MapSupplier]: thread a produced value into a transformer
//   - [ReverseComparator], [ThenComparator]: invert an ordering, break
//     ties
//
// Sequencing that introduces a new output type parameter is
// package-level: Go methods cannot add type parameters, so producer and
// transformer pipelines are built with free functions and rewrapped.
// Combinators introduce no failure modes of their own; they propagate
// whatever the composed capabilities already do.
//
// # Conditional Execution
//
// [When] and [WhenMutator] guard an effectful capability with a
// predicate, yielding [GuardedConsumer] or [GuardedMutator]: a no-op
// unless the predicate holds. OrElse completes the guard into
// if/then/else — the predicate is evaluated once per invocation and
// exactly one branch runs, never both, never neither.
//
// # Conversion Lattice
//
// Unique, Shared, Synced, and Func methods convert among the three
// wrappers and the bare-closure form, preserving invoke behavior and
// captured-state evolution exactly:
//
//   - Same-kind conversion is an identity pass-through
//   - Conversions out of shared and synced wrappers borrow: the original
//     and its clones stay usable, and the existing capability reference
//     is reused rather than re-wrapped
//   - Conversions out of a unique wrapper consume it
//   - Synced conversion from a unique or shared wrapper fails with
//     [ErrUnsynced]: surviving access paths bypass the lock, and komb
//     never silently rebrands an unserialized capability as safe for
//     concurrent use. Build the synced wrapper from the original
//     function or contract value.
//
// # Exactly-Once Capabilities
//
// [OnceSupplier], [OnceConsumer], and [OnceTransformer] wrap a capability
// with affine one-shot enforcement: the operation panics on reuse,
// TryGet/TryAccept/TryTransform report failure instead, and Discard
// marks the capability used without invoking it.
//
// # Naming
//
// Wrappers carry an optional diagnostic name; String renders
// "<WrapperKind>(<name>)", or "<WrapperKind>" when unnamed. Names belong
// to the wrapper, not the capability: clones copy the name and rename
// independently, and composition results are unnamed.
//
// # Concurrency
//
// There is no scheduler and nothing blocks; every operation runs on the
// caller's goroutine. The only shared mutable resource in the system is
// captured state behind a synced wrapper and its clones, serialized by
// the cell mutex. Unique and shared wrappers carry no synchronization
// and must stay on one goroutine.
//
// # Example
//
//	positive := komb.PredicateFunc[int](func(v int) bool { return v > 0 })
//	even := komb.PredicateFunc[int](func(v int) bool { return v%2 == 0 })
//
//	keep := komb.NamedSharedPredicate("keep", positive.And(even))
//	clone := keep.Clone()
//
//	keep.Test(4)  // true
//	clone.Test(3) // false; keep remains usable
//
//	filter := keep.Func() // bare closure for higher-order use
//	_ = filter
package komb
