package set

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/frozen/hashtable"
)

// Set is an immutable view onto a hash set. It holds exactly one reference to
// a backing table, which no mutator can reach once the Set exists.
//
// The zero value of Set is the default instance: it has no backing store at
// all and answers IsDefault() = true. Every store-touching operation on a
// default instance panics; obtain usable sets from Empty, New, Collect or a
// Builder. Read operations on a non-default Set are safe for unsynchronized
// concurrent use.
type Set[T comparable] struct {
	store *hashtable.Table[T, struct{}]
}

// Empty returns a set with a real, empty backing store and the default
// comparer. Unlike the zero value, it is fully usable.
func Empty[T comparable]() Set[T] {
	return EmptyWith[T](nil)
}

// EmptyWith is Empty with an explicit comparer; nil selects the default.
func EmptyWith[T comparable](cmp hashtable.Comparer[T]) Set[T] {
	return Set[T]{store: hashtable.New[T, struct{}](cmp, 0)}
}

// New returns a set holding the given items under the default comparer.
func New[T comparable](items ...T) Set[T] {
	return NewWith[T](nil, items...)
}

// NewWith is New with an explicit comparer; nil selects the default.
// Duplicate items collapse; the first occurrence is kept.
func NewWith[T comparable](cmp hashtable.Comparer[T], items ...T) Set[T] {
	store := hashtable.New[T, struct{}](cmp, len(items))
	for _, item := range items {
		store.Insert(item, struct{}{})
	}
	return Set[T]{store: store}
}

// Collect drains a finite sequence into a set under the default comparer.
func Collect[T comparable](seq iter.Seq[T]) Set[T] {
	return CollectWith[T](nil, seq)
}

// CollectWith is Collect with an explicit comparer; nil selects the default.
func CollectWith[T comparable](cmp hashtable.Comparer[T], seq iter.Seq[T]) Set[T] {
	requireArg(seq != nil, "nil sequence")
	store := hashtable.New[T, struct{}](cmp, 0)
	store.Union(seq)
	return Set[T]{store: store}
}

// --- API -------------------------------------------------------------------

// IsDefault reports whether the set is the zero value, i.e. has no backing
// store. It is safe to call on any Set.
func (s Set[T]) IsDefault() bool {
	return s.store == nil
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return s.table().Len()
}

// Contains reports membership of item under the set's comparer.
func (s Set[T]) Contains(item T) bool {
	return s.table().Contains(item)
}

// Get returns the stored element equal to item under the set's comparer.
// With a coarse comparer the stored representative may differ from item.
func (s Set[T]) Get(item T) (T, bool) {
	return s.table().GetKey(item)
}

// Comparer returns the comparer the backing store was created with.
func (s Set[T]) Comparer() hashtable.Comparer[T] {
	return s.table().Comparer()
}

// All returns an iterator over the elements, in unspecified order.
func (s Set[T]) All() iter.Seq[T] {
	return s.table().Keys()
}

// Slice returns the elements as a fresh slice, in unspecified order.
func (s Set[T]) Slice() []T {
	return slices.Collect(s.table().Keys())
}

// SetEquals reports whether the set holds exactly the distinct elements of
// seq. This is the content comparison; Equal compares storage identity.
func (s Set[T]) SetEquals(seq iter.Seq[T]) bool {
	store := s.table()
	requireArg(seq != nil, "nil sequence")
	return store.SetEquals(seq)
}

// SubsetOf reports whether every element of the set occurs in seq.
func (s Set[T]) SubsetOf(seq iter.Seq[T]) bool {
	store := s.table()
	requireArg(seq != nil, "nil sequence")
	return store.SubsetOf(seq)
}

// ProperSubsetOf reports whether the set is a subset of seq and seq holds at
// least one additional distinct element.
func (s Set[T]) ProperSubsetOf(seq iter.Seq[T]) bool {
	store := s.table()
	requireArg(seq != nil, "nil sequence")
	return store.ProperSubsetOf(seq)
}

// SupersetOf reports whether the set contains every element of seq.
func (s Set[T]) SupersetOf(seq iter.Seq[T]) bool {
	store := s.table()
	requireArg(seq != nil, "nil sequence")
	return store.SupersetOf(seq)
}

// ProperSupersetOf reports whether the set contains every element of seq plus
// at least one more.
func (s Set[T]) ProperSupersetOf(seq iter.Seq[T]) bool {
	store := s.table()
	requireArg(seq != nil, "nil sequence")
	return store.ProperSupersetOf(seq)
}

// Overlaps reports whether the set and seq share at least one element.
func (s Set[T]) Overlaps(seq iter.Seq[T]) bool {
	store := s.table()
	requireArg(seq != nil, "nil sequence")
	return store.Overlaps(seq)
}

// WithComparer returns a set with the same contents under cmp. If cmp is the
// set's current comparer (nil counting as the default), the receiver is
// returned unchanged, without allocation. Otherwise the contents are rehashed
// into a fresh store; elements the new comparer considers equal collapse.
func (s Set[T]) WithComparer(cmp hashtable.Comparer[T]) Set[T] {
	store := s.table()
	cmp = hashtable.Normalize(cmp)
	if cmp == store.Comparer() {
		return s
	}
	tracer().Debugf("rehashing set of %d elements under new comparer", store.Len())
	return Set[T]{store: store.Rehash(cmp)}
}

// ToBuilder returns a builder pre-loaded with the set's contents, under the
// set's comparer. The builder gets its own storage; mutating it never affects
// the set.
func (s Set[T]) ToBuilder() *Builder[T] {
	store := s.table()
	if store.Len() == 0 {
		// let the builder pick its own default capacity
		return NewBuilderWith[T](store.Comparer())
	}
	return &Builder[T]{store: store.Clone()}
}

// Equal reports storage identity: true iff both sets wrap the same backing
// store. Two sets holding equal elements in distinct stores are not Equal;
// use SetEquals for content comparison. Two default instances are Equal.
func (s Set[T]) Equal(other Set[T]) bool {
	return s.store == other.store
}

// Hash returns a hash derived from the backing store's identity, consistent
// with Equal. A default instance hashes to 0.
func (s Set[T]) Hash() uint32 {
	if s.store == nil {
		return 0
	}
	return s.store.Identity()
}

func (s Set[T]) String() string {
	if s.store == nil {
		return "Set(default)"
	}
	var sb strings.Builder
	sb.WriteString("Set{")
	first := true
	for item := range s.store.Keys() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", item)
		first = false
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Read-only guard -------------------------------------------------------

// Add always panics: a Set is read-only. Mutate through a Builder instead.
// On a default instance the uninitialized-access panic wins.
func (s Set[T]) Add(T) bool {
	s.table()
	panic(errReadOnly)
}

// Remove always panics: a Set is read-only. Mutate through a Builder instead.
func (s Set[T]) Remove(T) bool {
	s.table()
	panic(errReadOnly)
}

// Clear always panics: a Set is read-only. Mutate through a Builder instead.
func (s Set[T]) Clear() {
	s.table()
	panic(errReadOnly)
}

// --- Helpers ---------------------------------------------------------------

const errReadOnly = "set: Set is read-only"
const errDefault = "set: operation on uninitialized Set (zero value); use Empty, New or a Builder"

// table is the single fail-fast gate for store-touching operations.
func (s Set[T]) table() *hashtable.Table[T, struct{}] {
	if s.store == nil {
		panic(errDefault)
	}
	return s.store
}

func requireArg(that bool, msg string) {
	if !that {
		panic("set: " + msg)
	}
}
