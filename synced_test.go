// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/komb"
)

const (
	syncedGoroutines  = 8
	syncedInvocations = 1000
)

// TestSyncedConsumerNoLostUpdates drives clones of a counting consumer
// from several goroutines; the cell mutex must serialize every mutation
// of the captured counter.
func TestSyncedConsumerNoLostUpdates(t *testing.T) {
	count := 0
	root := komb.ConsumerFunc[int](func(int) { count++ }).Synced()

	var wg sync.WaitGroup
	for range syncedGoroutines {
		clone := root.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range syncedInvocations {
				clone.Accept(1)
			}
		}()
	}
	wg.Wait()

	if want := syncedGoroutines * syncedInvocations; count != want {
		t.Fatalf("count = %d, want %d (lost updates)", count, want)
	}
}

// TestSyncedSupplierHandsOutDistinctValues: a counting supplier behind a
// synced wrapper must hand each value out exactly once across goroutines.
func TestSyncedSupplierHandsOutDistinctValues(t *testing.T) {
	root := counter().Synced()

	var mu sync.Mutex
	seen := make(map[int]bool)

	var wg sync.WaitGroup
	for range syncedGoroutines {
		clone := root.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range syncedInvocations {
				v := clone.Get()
				mu.Lock()
				if seen[v] {
					mu.Unlock()
					t.Errorf("value %d handed out twice", v)
					return
				}
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if want := syncedGoroutines * syncedInvocations; len(seen) != want {
		t.Fatalf("distinct values = %d, want %d", len(seen), want)
	}
}

// TestSyncedPredicateStatefulComposition: a composed synced pipeline with
// a stateful operand stays consistent under concurrent invocation; the
// operand serializes itself inside the lock-free composition glue.
func TestSyncedPredicateStatefulComposition(t *testing.T) {
	invocations := 0
	counting := komb.PredicateFunc[int](func(v int) bool {
		invocations++
		return v > 0
	}).Synced()

	composed := counting.And(komb.PredicateFunc[int](func(v int) bool { return v%2 == 0 }))

	var wg sync.WaitGroup
	for range syncedGoroutines {
		clone := composed.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range syncedInvocations {
				clone.Test(i)
			}
		}()
	}
	wg.Wait()

	if want := syncedGoroutines * syncedInvocations; invocations != want {
		t.Fatalf("operand invocations = %d, want %d", invocations, want)
	}
}

// TestSyncedMutatorSerializesCapturedState: the lock covers the mutator's
// captured state; each goroutine mutates its own target value.
func TestSyncedMutatorSerializesCapturedState(t *testing.T) {
	total := 0
	root, err := komb.NewSyncedMutator[int](komb.MutatorFunc[int](func(v *int) {
		*v++
		total++
	}))
	if err != nil {
		t.Fatalf("NewSyncedMutator error: %v", err)
	}

	var wg sync.WaitGroup
	for range syncedGoroutines {
		clone := root.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := 0
			for range syncedInvocations {
				clone.Mutate(&local)
			}
			if local != syncedInvocations {
				t.Errorf("local = %d, want %d", local, syncedInvocations)
			}
		}()
	}
	wg.Wait()

	if want := syncedGoroutines * syncedInvocations; total != want {
		t.Fatalf("total = %d, want %d (lost updates)", total, want)
	}
}
