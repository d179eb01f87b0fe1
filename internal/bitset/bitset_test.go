package bitset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetTestClear(t *testing.T) {
	s := New(130)

	for _, i := range []int{0, 63, 64, 129} {
		if s.Test(i) {
			t.Errorf("bit %d set in empty set", i)
		}
		s.Set(i)
		if !s.Test(i) {
			t.Errorf("bit %d not set after Set", i)
		}
	}

	s.Clear(64)
	if s.Test(64) {
		t.Error("bit 64 still set after Clear")
	}
	if !s.Test(63) || !s.Test(129) {
		t.Error("Clear(64) touched other bits")
	}
}

func TestFromIndicesRoundtrip(t *testing.T) {
	s := FromIndices(100, []int{99, 5, 42, 5})

	want := []int{5, 42, 99}
	if diff := cmp.Diff(want, s.Indices()); diff != "" {
		t.Errorf("Indices mismatch (-want +got):\n%s", diff)
	}
	if got := s.PopCount(); got != 3 {
		t.Errorf("PopCount = %d, want 3", got)
	}
}

func TestUnionIntersectAndNot(t *testing.T) {
	a := FromIndices(70, []int{1, 3, 65})
	b := FromIndices(70, []int{3, 65, 69})

	if diff := cmp.Diff([]int{1, 3, 65, 69}, a.Union(b).Indices()); diff != "" {
		t.Errorf("Union mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 65}, a.Intersect(b).Indices()); diff != "" {
		t.Errorf("Intersect mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, a.AndNot(b).Indices()); diff != "" {
		t.Errorf("AndNot mismatch (-want +got):\n%s", diff)
	}

	// the inputs must not change
	if diff := cmp.Diff([]int{1, 3, 65}, a.Indices()); diff != "" {
		t.Errorf("Union mutated receiver (-want +got):\n%s", diff)
	}
}

func TestXorUndoesDisjointUnion(t *testing.T) {
	flooded := FromIndices(80, []int{0, 7})
	before := flooded.Clone()
	newly := FromIndices(80, []int{12, 79})

	flooded.UnionWith(newly)
	if !flooded.Test(12) || !flooded.Test(79) {
		t.Fatal("UnionWith did not add the new bits")
	}

	flooded.XorWith(newly)
	if !flooded.Equal(before) {
		t.Errorf("XorWith did not restore the set: got %s, want %s", flooded, before)
	}
}

func TestIntersectsAndSubsetOf(t *testing.T) {
	a := FromIndices(70, []int{2, 66})
	b := FromIndices(70, []int{66})
	c := FromIndices(70, []int{5})

	if !a.Intersects(b) {
		t.Error("a.Intersects(b) = false, want true")
	}
	if a.Intersects(c) {
		t.Error("a.Intersects(c) = true, want false")
	}
	if !b.SubsetOf(a) {
		t.Error("b.SubsetOf(a) = false, want true")
	}
	if a.SubsetOf(b) {
		t.Error("a.SubsetOf(b) = true, want false")
	}
	if !New(70).SubsetOf(c) {
		t.Error("empty set must be a subset of everything")
	}
}

func TestForEachAscending(t *testing.T) {
	s := FromIndices(200, []int{130, 0, 64, 63, 199})

	var got []int
	s.ForEach(func(i int) {
		got = append(got, i)
	})

	if diff := cmp.Diff([]int{0, 63, 64, 130, 199}, got); diff != "" {
		t.Errorf("ForEach order mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := FromIndices(10, []int{1, 2})
	b := a.Clone()
	b.Set(3)

	if a.Test(3) {
		t.Error("mutating a clone changed the original")
	}
	if !a.Equal(FromIndices(10, []int{1, 2})) {
		t.Error("original changed unexpectedly")
	}
}

func TestEqual(t *testing.T) {
	if !New(10).Equal(New(10)) {
		t.Error("empty sets of equal capacity must be equal")
	}
	if New(10).Equal(New(100)) {
		t.Error("sets of different word counts must differ")
	}
	if FromIndices(10, []int{1}).Equal(FromIndices(10, []int{2})) {
		t.Error("sets with different bits must differ")
	}
}

func TestAnyNone(t *testing.T) {
	s := New(70)
	if s.Any() || !s.None() {
		t.Error("fresh set must be empty")
	}
	s.Set(69)
	if !s.Any() || s.None() {
		t.Error("set with one bit must not be empty")
	}
}

func TestString(t *testing.T) {
	if got := FromIndices(10, []int{4, 1}).String(); got != "[1, 4]" {
		t.Errorf("String = %q, want %q", got, "[1, 4]")
	}
	if got := New(10).String(); got != "[]" {
		t.Errorf("String = %q, want %q", got, "[]")
	}
}
