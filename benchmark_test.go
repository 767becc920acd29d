// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"testing"

	"code.hybscloud.com/komb"
)

// BenchmarkBareComposedTest measures invocation of a closure-level
// composition.
func BenchmarkBareComposedTest(b *testing.B) {
	p := positive().And(even()).Or(komb.Not[int](positive()))
	for b.Loop() {
		_ = p.Test(4)
	}
}

// BenchmarkSharedComposedTest measures invocation through shared
// ownership wrappers.
func BenchmarkSharedComposedTest(b *testing.B) {
	p := positive().Shared().And(even()).Or(komb.Not[int](positive()))
	for b.Loop() {
		_ = p.Test(4)
	}
}

// BenchmarkSyncedTest measures the cost of the serialized invoke path.
func BenchmarkSyncedTest(b *testing.B) {
	p := positive().Synced()
	for b.Loop() {
		_ = p.Test(4)
	}
}

// BenchmarkSyncedCompositionGlue measures invocation of a synced
// composition, whose glue skips its own lock.
func BenchmarkSyncedCompositionGlue(b *testing.B) {
	p := positive().Synced().And(even())
	for b.Loop() {
		_ = p.Test(4)
	}
}

// BenchmarkUniqueCompose measures wrap-compose cost, construction
// included: a unique wrapper is consumed per composition.
func BenchmarkUniqueCompose(b *testing.B) {
	pos, ev := positive(), even()
	for b.Loop() {
		_ = pos.Unique().And(ev.Unique())
	}
}

// BenchmarkConversionRoundTrip measures the shared → unique → closure
// path.
func BenchmarkConversionRoundTrip(b *testing.B) {
	s := positive().Shared()
	for b.Loop() {
		_ = s.Unique().Func()
	}
}

// BenchmarkGuardedMutator measures conditional mutation on the taken
// branch.
func BenchmarkGuardedMutator(b *testing.B) {
	inc := komb.MutatorFunc[int](func(v *int) { *v++ })
	branch := inc.When(positive()).OrElse(inc)
	x := 1
	for b.Loop() {
		branch.Mutate(&x)
	}
}
