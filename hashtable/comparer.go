package hashtable

import "hash/maphash"

// Comparer tells a table how to hash keys and when two keys count as equal.
// Implementations must be consistent: Equal(a, b) implies Hash(a) == Hash(b).
//
// Comparers are compared by identity (Go interface equality) when the set and
// dict packages decide whether a rehash is necessary, so implementations
// should be comparable values or pointers.
type Comparer[K any] interface {
	Hash(key K) uint32
	Equal(a, b K) bool
}

// Default returns a comparer for any comparable key type, hashing with the
// runtime's key hasher under a process-wide random seed and comparing with ==.
// All calls return interchangeable (identity-equal) comparers.
func Default[K comparable]() Comparer[K] {
	return defaultComparer[K]{}
}

// Normalize substitutes the default comparer for nil. All construction paths
// of the set and dict packages route comparer arguments through here.
func Normalize[K comparable](cmp Comparer[K]) Comparer[K] {
	if cmp == nil {
		return Default[K]()
	}
	return cmp
}

var defaultSeed = maphash.MakeSeed()

type defaultComparer[K comparable] struct{}

func (defaultComparer[K]) Hash(key K) uint32 {
	h := maphash.Comparable(defaultSeed, key)
	return uint32(h ^ h>>32)
}

func (defaultComparer[K]) Equal(a, b K) bool {
	return a == b
}
