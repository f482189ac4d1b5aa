package dict

import (
	"iter"

	"github.com/npillmayer/frozen/hashtable"
)

// Projection helpers: build a Dict by a single pass over an arbitrary source
// sequence. All projection paths are strict about duplicate projected keys —
// there is no silent last-wins; upserting is the builder's Set, nothing else.

// Index builds a dict mapping key(e) to e for every element of src, under the
// default comparer.
func Index[E any, K comparable](src iter.Seq[E], key func(E) K) Dict[K, E] {
	return IndexWith[E, K](nil, src, key)
}

// IndexWith is Index with an explicit key comparer; nil selects the default.
// It panics when src or key is nil, and when two elements project to equal
// keys under the comparer.
func IndexWith[E any, K comparable](cmp hashtable.Comparer[K], src iter.Seq[E], key func(E) K) Dict[K, E] {
	requireArg(src != nil, "nil source sequence")
	requireArg(key != nil, "nil key selector")
	store := hashtable.New[K, E](cmp, 0)
	for e := range src {
		k := key(e)
		if !store.Insert(k, e) {
			panic(dupKey(k))
		}
	}
	return Dict[K, E]{store: store}
}

// Project builds a dict mapping key(e) to val(e) for every element of src,
// under the default comparer.
func Project[E any, K comparable, V any](src iter.Seq[E], key func(E) K, val func(E) V) Dict[K, V] {
	return ProjectWith[E, K, V](nil, src, key, val)
}

// ProjectWith is Project with an explicit key comparer; nil selects the
// default. It panics when src, key or val is nil, and when two elements
// project to equal keys under the comparer.
func ProjectWith[E any, K comparable, V any](cmp hashtable.Comparer[K], src iter.Seq[E], key func(E) K, val func(E) V) Dict[K, V] {
	requireArg(src != nil, "nil source sequence")
	requireArg(key != nil, "nil key selector")
	requireArg(val != nil, "nil value selector")
	store := hashtable.New[K, V](cmp, 0)
	for e := range src {
		k := key(e)
		if !store.Insert(k, val(e)) {
			panic(dupKey(k))
		}
	}
	return Dict[K, V]{store: store}
}
