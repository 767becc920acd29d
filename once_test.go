// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"testing"

	"code.hybscloud.com/komb"
)

func TestOnceSupplierSingleUse(t *testing.T) {
	o := komb.NewOnceSupplier[int](counter())
	if o.Get() != 1 {
		t.Fatal("first Get failed")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("second Get did not panic")
		}
	}()
	o.Get()
}

func TestOnceSupplierTryGet(t *testing.T) {
	o := komb.NewOnceSupplier[int](counter())
	v, ok := o.TryGet()
	if !ok || v != 1 {
		t.Fatalf("TryGet = (%d, %v), want (1, true)", v, ok)
	}
	v, ok = o.TryGet()
	if ok || v != 0 {
		t.Fatalf("second TryGet = (%d, %v), want (0, false)", v, ok)
	}
}

func TestOnceSupplierDiscard(t *testing.T) {
	invoked := false
	o := komb.NewOnceSupplier[int](komb.SupplierFunc[int](func() int {
		invoked = true
		return 1
	}))
	o.Discard()
	if _, ok := o.TryGet(); ok {
		t.Fatal("TryGet succeeded after Discard")
	}
	if invoked {
		t.Fatal("Discard invoked the capability")
	}
}

func TestOnceConsumerSingleUse(t *testing.T) {
	count := 0
	o := komb.NewOnceConsumer[int](komb.ConsumerFunc[int](func(int) { count++ }))
	if !o.TryAccept(1) {
		t.Fatal("first TryAccept = false")
	}
	if o.TryAccept(1) {
		t.Fatal("second TryAccept = true")
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestOnceConsumerPanicsOnReuse(t *testing.T) {
	o := komb.NewOnceConsumer[int](komb.ConsumerFunc[int](func(int) {}))
	o.Accept(1)

	defer func() {
		if recover() == nil {
			t.Fatal("second Accept did not panic")
		}
	}()
	o.Accept(1)
}

func TestOnceTransformerSingleUse(t *testing.T) {
	o := komb.NewOnceTransformer[int, int](komb.TransformerFunc[int, int](
		func(v int) int { return v * 2 },
	))
	if o.Transform(21) != 42 {
		t.Fatal("first Transform wrong")
	}
	if v, ok := o.TryTransform(1); ok || v != 0 {
		t.Fatalf("TryTransform after use = (%d, %v), want (0, false)", v, ok)
	}
}

// A once capability still satisfies its contract, so it wraps and
// composes like any other.
func TestOnceSupplierEntersLattice(t *testing.T) {
	u := komb.NewUniqueSupplier[int](komb.NewOnceSupplier[int](counter()))
	if u.Get() != 1 {
		t.Fatal("wrapped once supplier failed")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("one-shot guarantee lost under wrapping")
		}
	}()
	u.Get()
}
