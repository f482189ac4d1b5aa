package set_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/frozen/hashtable"
	"github.com/npillmayer/frozen/set"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// caseless compares strings case-insensitively.
type caseless struct{}

func (caseless) Hash(s string) uint32 {
	return hashtable.Default[string]().Hash(strings.ToLower(s))
}

func (caseless) Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

func TestBuilderMutation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frozen.set")
	defer teardown()
	//
	b := set.NewBuilder[int]()
	if !b.Add(1) {
		t.Error("expected Add(1) on empty builder to report true, didn't")
	}
	if b.Add(1) {
		t.Error("expected second Add(1) to report false, didn't")
	}
	b.Add(2)
	if !b.Remove(1) {
		t.Error("expected Remove(1) to report true, didn't")
	}
	if b.Remove(1) {
		t.Error("expected second Remove(1) to report false, didn't")
	}
	if b.Len() != 1 || !b.Contains(2) {
		t.Errorf("expected builder to hold exactly {2}, holds %v", slices.Collect(b.All()))
	}
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("expected cleared builder to be empty, has %d elements", b.Len())
	}
}

func TestBuilderAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frozen.set")
	defer teardown()
	//
	b := set.BuilderFrom(slices.Values([]int{1, 2, 3}))
	b.UnionWith(slices.Values([]int{3, 4}))
	b.ExceptWith(slices.Values([]int{1}))
	if got := slices.Sorted(b.All()); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("expected {2,3,4}, got %v", got)
	}
	b.IntersectWith(slices.Values([]int{2, 4, 6}))
	if got := slices.Sorted(b.All()); !slices.Equal(got, []int{2, 4}) {
		t.Errorf("expected {2,4}, got %v", got)
	}
	b.SymmetricExceptWith(slices.Values([]int{4, 5}))
	if got := slices.Sorted(b.All()); !slices.Equal(got, []int{2, 5}) {
		t.Errorf("expected {2,5}, got %v", got)
	}
	require.Panics(t, func() { b.UnionWith(nil) })
}

func TestFreeze(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frozen.set")
	defer teardown()
	//
	b := set.NewBuilder[int]()
	b.Add(1)
	b.Add(2)
	b.Add(3)
	before := slices.Sorted(b.All())
	frozen := b.Freeze()
	if got := slices.Sorted(frozen.All()); !slices.Equal(got, before) {
		t.Errorf("expected frozen view to hold %v, holds %v", before, got)
	}
	if b.Len() != 0 {
		t.Errorf("expected builder to be empty after Freeze, has %d elements", b.Len())
	}
	// the builder stays independently usable
	b.Add(99)
	if frozen.Contains(99) {
		t.Error("expected later builder mutation to never reach the frozen view, did")
	}
	if frozen.Len() != 3 {
		t.Errorf("expected frozen view to keep 3 elements, has %d", frozen.Len())
	}
}

func TestFreezeTwiceYieldsDistinctViews(t *testing.T) {
	b := set.NewBuilder[int]()
	b.Add(1)
	first := b.Freeze()
	b.Add(1)
	second := b.Freeze()
	require.False(t, first.Equal(second))
	require.True(t, first.SetEquals(second.All()))
}

func TestSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frozen.set")
	defer teardown()
	//
	b := set.BuilderFrom(slices.Values([]int{1, 2, 3}))
	v := b.Snapshot()
	w := b.Snapshot()
	if b.Len() != 3 {
		t.Errorf("expected builder to be unchanged after Snapshot, has %d elements", b.Len())
	}
	if v.Equal(w) {
		t.Error("expected two snapshots to have distinct storage, haven't")
	}
	if !v.SetEquals(w.All()) {
		t.Error("expected two snapshots to be content-equal, aren't")
	}
	b.Add(4)
	if v.Contains(4) || w.Contains(4) {
		t.Error("expected snapshots to be isolated from later mutation, aren't")
	}
}

func TestBuilderKeepsComparerAcrossFreeze(t *testing.T) {
	b := set.NewBuilderWith[string](caseless{})
	b.Add("Hello")
	frozen := b.Freeze()
	require.True(t, frozen.Contains("HELLO"))
	b.Add("World")
	require.True(t, b.Contains("WORLD"), "replacement table should keep the comparer")
	require.Equal(t, frozen.Comparer(), b.Comparer())
}

func TestBuilderFromWith(t *testing.T) {
	b := set.BuilderFromWith[string](caseless{}, slices.Values([]string{"a", "A", "b"}))
	require.Equal(t, 2, b.Len())
	require.Panics(t, func() { set.BuilderFrom[int](nil) })
}
