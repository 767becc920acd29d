// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/komb"
)

func hasPrefix() komb.BiPredicateFunc[string, string] {
	return strings.HasPrefix
}

func longerThan() komb.BiPredicateFunc[string, int] {
	return func(s string, n int) bool { return len(s) > n }
}

func TestBiPredicateFuncTest(t *testing.T) {
	if !hasPrefix().Test("komb", "ko") {
		t.Fatal(`Test("komb", "ko") = false, want true`)
	}
	if longerThan().Test("ab", 2) {
		t.Fatal(`Test("ab", 2) = true, want false`)
	}
}

func TestBiAndShortCircuit(t *testing.T) {
	called := false
	q := komb.BiPredicateFunc[string, int](func(string, int) bool {
		called = true
		return true
	})

	p := komb.BiAnd[string, int](longerThan(), q)
	if p.Test("a", 5) {
		t.Fatal("BiAnd with false left = true, want false")
	}
	if called {
		t.Fatal("BiAnd invoked right operand after left decided false")
	}
}

func TestBiBooleanAlgebra(t *testing.T) {
	tt := komb.BiPredicateFunc[string, int](func(string, int) bool { return true })
	ff := komb.BiPredicateFunc[string, int](func(string, int) bool { return false })

	if !komb.BiXor[string, int](tt, ff).Test("", 0) {
		t.Fatal("BiXor(true, false) = false, want true")
	}
	if !komb.BiNand[string, int](tt, ff).Test("", 0) {
		t.Fatal("BiNand(true, false) = false, want true")
	}
	if komb.BiNor[string, int](tt, ff).Test("", 0) {
		t.Fatal("BiNor(true, false) = true, want false")
	}
	if komb.BiNot[string, int](tt).Test("", 0) {
		t.Fatal("BiNot(true) = true, want false")
	}
}

func TestUniqueBiPredicateConsumption(t *testing.T) {
	u := longerThan().Unique()
	v := komb.NewUniqueBiPredicate[string, int](komb.BiPredicateFunc[string, int](
		func(s string, n int) bool { return n >= 0 },
	))
	c := u.And(v)

	if !c.Test("abc", 2) {
		t.Fatal(`composed Test("abc", 2) = false, want true`)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("Test on consumed unique operand did not panic")
		}
	}()
	v.Test("x", 0)
}

func TestSharedBiPredicateBorrows(t *testing.T) {
	a := komb.NamedSharedBiPredicate[string, int]("len", longerThan())
	b := a.Clone()
	c := a.And(b)

	if !c.Test("abcd", 3) || !a.Test("ab", 1) || !b.Test("ab", 1) {
		t.Fatal("borrowing composition broke operand usability")
	}
	if got := a.String(); got != "SharedBiPredicate(len)" {
		t.Fatalf("String() = %q, want %q", got, "SharedBiPredicate(len)")
	}
}

func TestBiPredicateSyncedConversionRules(t *testing.T) {
	if _, err := komb.NewSyncedBiPredicate[string, int](longerThan().Shared()); err == nil {
		t.Fatal("NewSyncedBiPredicate(shared) succeeded, want ErrUnsynced")
	}
	y := longerThan().Synced()
	if !y.Clone().Test("abc", 1) {
		t.Fatal("synced bi-predicate clone wrong")
	}
}
