package dict

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/frozen/hashtable"
)

// Builder is a mutable hash map that converts into immutable Dict views. It
// owns its backing table exclusively: no view ever aliases a builder's table,
// which is what makes Freeze safe.
//
// A Builder is not safe for concurrent use.
type Builder[K comparable, V any] struct {
	store *hashtable.Table[K, V]
}

// NewBuilder returns an empty builder with the default key comparer.
func NewBuilder[K comparable, V any]() *Builder[K, V] {
	return NewBuilderWith[K, V](nil)
}

// NewBuilderWith is NewBuilder with an explicit key comparer; nil selects the
// default.
func NewBuilderWith[K comparable, V any](cmp hashtable.Comparer[K]) *Builder[K, V] {
	return &Builder[K, V]{store: hashtable.New[K, V](cmp, 0)}
}

// BuilderFrom returns a builder pre-seeded with a copy of seq's entries,
// under the default comparer. Pre-seeding is strict like Add: a duplicate
// key in seq panics.
func BuilderFrom[K comparable, V any](seq iter.Seq2[K, V]) *Builder[K, V] {
	return BuilderFromWith[K, V](nil, seq)
}

// BuilderFromWith is BuilderFrom with an explicit key comparer; nil selects
// the default.
func BuilderFromWith[K comparable, V any](cmp hashtable.Comparer[K], seq iter.Seq2[K, V]) *Builder[K, V] {
	requireArg(seq != nil, "nil sequence")
	b := &Builder[K, V]{store: hashtable.New[K, V](cmp, 0)}
	for k, v := range seq {
		b.Add(k, v)
	}
	return b
}

// --- Mutation --------------------------------------------------------------

// Add stores value under key and panics if the key is already present.
// Use Set for upsert semantics.
func (b *Builder[K, V]) Add(key K, value V) {
	if !b.store.Insert(key, value) {
		panic(dupKey(key))
	}
}

// Set upserts: it stores value under key unconditionally, replacing an
// existing entry.
func (b *Builder[K, V]) Set(key K, value V) {
	b.store.Put(key, value)
}

// Remove deletes the entry for key and reports whether it was present.
func (b *Builder[K, V]) Remove(key K) bool {
	return b.store.Delete(key)
}

// Clear removes all entries. The builder keeps its comparer.
func (b *Builder[K, V]) Clear() {
	b.store.Clear()
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of entries.
func (b *Builder[K, V]) Len() int {
	return b.store.Len()
}

// ContainsKey reports whether key is present under the builder's comparer.
func (b *Builder[K, V]) ContainsKey(key K) bool {
	return b.store.Contains(key)
}

// Lookup returns the value stored for key, if present.
func (b *Builder[K, V]) Lookup(key K) (V, bool) {
	return b.store.Get(key)
}

// Get returns the value stored for key and panics if the key is absent.
func (b *Builder[K, V]) Get(key K) V {
	v, ok := b.store.Get(key)
	if !ok {
		panic(notFound(key))
	}
	return v
}

// Comparer returns the key comparer the builder was created with.
func (b *Builder[K, V]) Comparer() hashtable.Comparer[K] {
	return b.store.Comparer()
}

// All returns an iterator over the entries, in unspecified order. The
// builder must not be mutated while iterating.
func (b *Builder[K, V]) All() iter.Seq2[K, V] {
	return b.store.All()
}

func (b *Builder[K, V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Builder(len=%d){", b.store.Len())
	first := true
	for k, v := range b.store.All() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v ⇒ %v", k, v)
		first = false
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Conversion ------------------------------------------------------------

// Snapshot returns a Dict holding a copy of the builder's current entries.
// The builder is untouched and remains usable; later mutations never affect
// the returned view. Cost is O(n).
func (b *Builder[K, V]) Snapshot() Dict[K, V] {
	tracer().Debugf("snapshot of dict builder with %d entries", b.store.Len())
	return Dict[K, V]{store: b.store.Clone()}
}

// Freeze transfers the builder's storage to the returned Dict without
// copying, leaving the builder with a fresh empty table under the same
// comparer. Cost is O(1). After Freeze the builder and the view reference
// disjoint storage, so mutating the builder can never retroactively change
// the view.
func (b *Builder[K, V]) Freeze() Dict[K, V] {
	frozen := b.store
	b.store = hashtable.New[K, V](frozen.Comparer(), 0)
	tracer().Debugf("froze dict builder storage with %d entries", frozen.Len())
	return Dict[K, V]{store: frozen}
}
