// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/komb"
)

func TestAndThenThreadsOutput(t *testing.T) {
	double := komb.TransformerFunc[int, int](func(v int) int { return v * 2 })
	toString := komb.TransformerFunc[int, string](strconv.Itoa)

	pipeline := komb.AndThen[int, int, string](double, toString)
	if got := pipeline.Transform(21); got != "42" {
		t.Fatalf("Transform(21) = %q, want %q", got, "42")
	}
}

func TestComposeReversesOperands(t *testing.T) {
	double := komb.TransformerFunc[int, int](func(v int) int { return v * 2 })
	inc := komb.TransformerFunc[int, int](func(v int) int { return v + 1 })

	// Compose(g, f) computes g(f(v)).
	if got := komb.Compose[int, int, int](double, inc).Transform(3); got != 8 {
		t.Fatalf("double(inc(3)) = %d, want 8", got)
	}
	if got := komb.AndThen[int, int, int](double, inc).Transform(3); got != 7 {
		t.Fatalf("inc(double(3)) = %d, want 7", got)
	}
}

func TestIdentityIsAndThenUnit(t *testing.T) {
	double := komb.TransformerFunc[int, int](func(v int) int { return v * 2 })
	id := komb.Identity[int]()

	for _, v := range []int{-3, 0, 7} {
		if komb.AndThen[int, int, int](id, double).Transform(v) != double.Transform(v) {
			t.Fatalf("left identity violated at %d", v)
		}
		if komb.AndThen[int, int, int](double, id).Transform(v) != double.Transform(v) {
			t.Fatalf("right identity violated at %d", v)
		}
	}
}

func TestConstIgnoresInput(t *testing.T) {
	c := komb.Const[int]("fixed")
	if c.Transform(1) != "fixed" || c.Transform(-1) != "fixed" {
		t.Fatal("Const transformer varied with input")
	}
}

func TestUniqueTransformerConsumption(t *testing.T) {
	double := komb.TransformerFunc[int, int](func(v int) int { return v * 2 })
	u := double.Unique()
	if u.Transform(2) != 4 {
		t.Fatal("Transform before consumption failed")
	}
	_ = u.Shared()

	defer func() {
		if recover() == nil {
			t.Fatal("Transform on consumed unique transformer did not panic")
		}
	}()
	u.Transform(1)
}

func TestSharedTransformerLattice(t *testing.T) {
	calls := 0
	tr := komb.TransformerFunc[int, int](func(v int) int {
		calls++
		return -v
	})

	s := komb.NamedSharedTransformer[int, int]("negate", tr)
	if s.Unique().Transform(2) != -2 || s.Func()(3) != -3 {
		t.Fatal("converted forms changed behavior")
	}
	if calls != 2 {
		t.Fatalf("captured state saw %d calls, want 2", calls)
	}
	if got := s.String(); got != "SharedTransformer(negate)" {
		t.Fatalf("String() = %q, want %q", got, "SharedTransformer(negate)")
	}
}

func TestTransformerSyncedConversionRules(t *testing.T) {
	tr := komb.TransformerFunc[int, int](func(v int) int { return v })
	if _, err := komb.NewSyncedTransformer[int, int](tr.Shared()); err == nil {
		t.Fatal("NewSyncedTransformer(shared) succeeded, want ErrUnsynced")
	}
	y := tr.Synced()
	if y.Clone().Transform(5) != 5 {
		t.Fatal("synced transformer clone changed behavior")
	}
}
