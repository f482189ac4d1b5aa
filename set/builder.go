package set

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/frozen/hashtable"
)

// Builder is a mutable hash set that converts into immutable Set views. It
// owns its backing table exclusively: no view ever aliases a builder's table,
// which is what makes Freeze safe.
//
// A Builder is not safe for concurrent use.
type Builder[T comparable] struct {
	store *hashtable.Table[T, struct{}]
}

// NewBuilder returns an empty builder with the default comparer.
func NewBuilder[T comparable]() *Builder[T] {
	return NewBuilderWith[T](nil)
}

// NewBuilderWith is NewBuilder with an explicit comparer; nil selects the
// default.
func NewBuilderWith[T comparable](cmp hashtable.Comparer[T]) *Builder[T] {
	return &Builder[T]{store: hashtable.New[T, struct{}](cmp, 0)}
}

// BuilderFrom returns a builder pre-seeded with a copy of seq's elements,
// under the default comparer.
func BuilderFrom[T comparable](seq iter.Seq[T]) *Builder[T] {
	return BuilderFromWith[T](nil, seq)
}

// BuilderFromWith is BuilderFrom with an explicit comparer; nil selects the
// default.
func BuilderFromWith[T comparable](cmp hashtable.Comparer[T], seq iter.Seq[T]) *Builder[T] {
	requireArg(seq != nil, "nil sequence")
	store := hashtable.New[T, struct{}](cmp, 0)
	store.Union(seq)
	return &Builder[T]{store: store}
}

// --- Mutation --------------------------------------------------------------

// Add inserts item and reports whether it was absent before.
func (b *Builder[T]) Add(item T) bool {
	return b.store.Insert(item, struct{}{})
}

// Remove deletes item and reports whether it was present.
func (b *Builder[T]) Remove(item T) bool {
	return b.store.Delete(item)
}

// Clear removes all elements. The builder keeps its comparer.
func (b *Builder[T]) Clear() {
	b.store.Clear()
}

// UnionWith adds every element of seq that is not yet present.
func (b *Builder[T]) UnionWith(seq iter.Seq[T]) {
	requireArg(seq != nil, "nil sequence")
	b.store.Union(seq)
}

// IntersectWith removes every element that does not occur in seq.
func (b *Builder[T]) IntersectWith(seq iter.Seq[T]) {
	requireArg(seq != nil, "nil sequence")
	b.store.Intersect(seq)
}

// ExceptWith removes every element of seq.
func (b *Builder[T]) ExceptWith(seq iter.Seq[T]) {
	requireArg(seq != nil, "nil sequence")
	b.store.Except(seq)
}

// SymmetricExceptWith leaves the builder holding the elements present in
// exactly one of the builder and seq.
func (b *Builder[T]) SymmetricExceptWith(seq iter.Seq[T]) {
	requireArg(seq != nil, "nil sequence")
	b.store.SymmetricExcept(seq)
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of elements.
func (b *Builder[T]) Len() int {
	return b.store.Len()
}

// Contains reports membership of item under the builder's comparer.
func (b *Builder[T]) Contains(item T) bool {
	return b.store.Contains(item)
}

// Get returns the stored element equal to item under the builder's comparer.
func (b *Builder[T]) Get(item T) (T, bool) {
	return b.store.GetKey(item)
}

// Comparer returns the comparer the builder was created with.
func (b *Builder[T]) Comparer() hashtable.Comparer[T] {
	return b.store.Comparer()
}

// All returns an iterator over the elements, in unspecified order. The
// builder must not be mutated while iterating.
func (b *Builder[T]) All() iter.Seq[T] {
	return b.store.Keys()
}

func (b *Builder[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Builder(len=%d){", b.store.Len())
	first := true
	for item := range b.store.Keys() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", item)
		first = false
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Conversion ------------------------------------------------------------

// Snapshot returns a Set holding a copy of the builder's current contents.
// The builder is untouched and remains usable; later mutations never affect
// the returned view. Cost is O(n).
func (b *Builder[T]) Snapshot() Set[T] {
	tracer().Debugf("snapshot of set builder with %d elements", b.store.Len())
	return Set[T]{store: b.store.Clone()}
}

// Freeze transfers the builder's storage to the returned Set without copying,
// leaving the builder with a fresh empty table under the same comparer. Cost
// is O(1). After Freeze the builder and the view reference disjoint storage,
// so mutating the builder can never retroactively change the view.
func (b *Builder[T]) Freeze() Set[T] {
	frozen := b.store
	b.store = hashtable.New[T, struct{}](frozen.Comparer(), 0)
	tracer().Debugf("froze set builder storage with %d elements", frozen.Len())
	return Set[T]{store: frozen}
}
