// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"cmp"
	"slices"
	"testing"

	"code.hybscloud.com/komb"
)

type pair struct {
	major, minor int
}

func byMajor() komb.ComparatorFunc[pair] {
	return func(a, b pair) int { return cmp.Compare(a.major, b.major) }
}

func byMinor() komb.ComparatorFunc[pair] {
	return func(a, b pair) int { return cmp.Compare(a.minor, b.minor) }
}

func TestComparatorFuncCompare(t *testing.T) {
	c := byMajor()
	if c.Compare(pair{1, 0}, pair{2, 0}) >= 0 {
		t.Fatal("Compare(1, 2) not negative")
	}
	if c.Compare(pair{2, 0}, pair{2, 9}) != 0 {
		t.Fatal("Compare on equal majors not zero")
	}
}

func TestReversedInvertsOrdering(t *testing.T) {
	c := byMajor().Reversed()
	if c.Compare(pair{1, 0}, pair{2, 0}) <= 0 {
		t.Fatal("reversed Compare(1, 2) not positive")
	}
}

func TestThenComparatorBreaksTies(t *testing.T) {
	c := byMajor().AndThen(byMinor())
	if c.Compare(pair{1, 5}, pair{1, 3}) <= 0 {
		t.Fatal("tie not broken by minor")
	}
	if c.Compare(pair{1, 5}, pair{2, 0}) >= 0 {
		t.Fatal("major ordering overridden by tie-breaker")
	}
}

func TestThenComparatorSkipsTieBreakerWhenDecided(t *testing.T) {
	calls := 0
	tie := komb.ComparatorFunc[pair](func(a, b pair) int {
		calls++
		return 0
	})

	c := komb.ThenComparator[pair](byMajor(), tie)
	c.Compare(pair{1, 0}, pair{2, 0})
	if calls != 0 {
		t.Fatal("tie-breaker invoked on a decided comparison")
	}
	c.Compare(pair{1, 0}, pair{1, 1})
	if calls != 1 {
		t.Fatal("tie-breaker not invoked on a tie")
	}
}

func TestComparatorWithSort(t *testing.T) {
	c := komb.NamedSharedComparator[pair]("version", byMajor().AndThen(byMinor()))

	vs := []pair{{2, 1}, {1, 9}, {2, 0}, {1, 2}}
	slices.SortFunc(vs, c.Func())

	want := []pair{{1, 2}, {1, 9}, {2, 0}, {2, 1}}
	if !slices.Equal(vs, want) {
		t.Fatalf("sorted = %v, want %v", vs, want)
	}
	if got := c.String(); got != "SharedComparator(version)" {
		t.Fatalf("String() = %q, want %q", got, "SharedComparator(version)")
	}
}

func TestUniqueComparatorConsumption(t *testing.T) {
	u := byMajor().Unique()
	r := u.Reversed()
	if r.Compare(pair{1, 0}, pair{2, 0}) <= 0 {
		t.Fatal("reversed unique comparator wrong")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("Compare on consumed unique comparator did not panic")
		}
	}()
	u.Compare(pair{0, 0}, pair{0, 0})
}

func TestComparatorSyncedConversionRules(t *testing.T) {
	if _, err := komb.NewSyncedComparator[pair](byMajor().Shared()); err == nil {
		t.Fatal("NewSyncedComparator(shared) succeeded, want ErrUnsynced")
	}
	y := byMajor().Synced()
	if y.Clone().Compare(pair{1, 0}, pair{2, 0}) >= 0 {
		t.Fatal("synced comparator clone wrong")
	}
}
