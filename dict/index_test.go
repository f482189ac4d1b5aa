package dict_test

import (
	"slices"
	"testing"

	"github.com/npillmayer/frozen/dict"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

type city struct {
	name string
	pop  int
}

var cities = []city{
	{"Berlin", 3_700_000},
	{"Hamburg", 1_900_000},
	{"Munich", 1_500_000},
}

func TestIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frozen.dict")
	defer teardown()
	//
	byName := dict.Index(slices.Values(cities), func(c city) string { return c.name })
	if byName.Len() != 3 {
		t.Errorf("expected 3 entries, have %d", byName.Len())
	}
	if byName.Get("Hamburg").pop != 1_900_000 {
		t.Errorf("expected Hamburg with pop 1.9M, got %v", byName.Get("Hamburg"))
	}
}

func TestProject(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frozen.dict")
	defer teardown()
	//
	pops := dict.Project(slices.Values(cities),
		func(c city) string { return c.name },
		func(c city) int { return c.pop })
	if pops.Get("Munich") != 1_500_000 {
		t.Errorf("expected Munich ⇒ 1500000, got %d", pops.Get("Munich"))
	}
	if pops.GetOr("Cologne", -1) != -1 {
		t.Error("expected missing key to yield the fallback, didn't")
	}
}

func TestProjectionDuplicateKeyPanics(t *testing.T) {
	dup := append(slices.Clone(cities), city{"Berlin", 1})
	require.PanicsWithValue(t, "dict: duplicate key Berlin", func() {
		dict.Index(slices.Values(dup), func(c city) string { return c.name })
	})
	require.Panics(t, func() {
		dict.IndexWith(caseless{}, slices.Values([]city{{"x", 1}, {"X", 2}}),
			func(c city) string { return c.name })
	})
}

func TestProjectionNilArguments(t *testing.T) {
	src := slices.Values(cities)
	key := func(c city) string { return c.name }
	val := func(c city) int { return c.pop }
	require.PanicsWithValue(t, "dict: nil source sequence", func() { dict.Index[city, string](nil, key) })
	require.PanicsWithValue(t, "dict: nil key selector", func() { dict.Index[city, string](src, nil) })
	require.PanicsWithValue(t, "dict: nil value selector", func() { dict.Project[city, string, int](src, key, nil) })
	require.PanicsWithValue(t, "dict: nil key selector", func() { dict.Project[city, string, int](src, nil, val) })
}
