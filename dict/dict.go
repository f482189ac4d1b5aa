package dict

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/frozen/hashtable"
)

// Dict is an immutable view onto a hash map. It holds exactly one reference
// to a backing table, which no mutator can reach once the Dict exists.
//
// The zero value of Dict is the default instance: it has no backing store at
// all and answers IsDefault() = true. Every store-touching operation on a
// default instance panics; obtain usable dicts from Empty, Collect, the
// projection helpers or a Builder. Read operations on a non-default Dict are
// safe for unsynchronized concurrent use.
type Dict[K comparable, V any] struct {
	store *hashtable.Table[K, V]
}

// Empty returns a dict with a real, empty backing store and the default
// comparer. Unlike the zero value, it is fully usable.
func Empty[K comparable, V any]() Dict[K, V] {
	return EmptyWith[K, V](nil)
}

// EmptyWith is Empty with an explicit key comparer; nil selects the default.
func EmptyWith[K comparable, V any](cmp hashtable.Comparer[K]) Dict[K, V] {
	return Dict[K, V]{store: hashtable.New[K, V](cmp, 0)}
}

// Collect drains a finite sequence of key/value pairs into a dict under the
// default comparer. Unlike a builder's Set, Collect is strict: a duplicate
// key panics, it does not upsert.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) Dict[K, V] {
	return CollectWith[K, V](nil, seq)
}

// CollectWith is Collect with an explicit key comparer; nil selects the
// default.
func CollectWith[K comparable, V any](cmp hashtable.Comparer[K], seq iter.Seq2[K, V]) Dict[K, V] {
	requireArg(seq != nil, "nil sequence")
	store := hashtable.New[K, V](cmp, 0)
	for k, v := range seq {
		if !store.Insert(k, v) {
			panic(dupKey(k))
		}
	}
	return Dict[K, V]{store: store}
}

// --- API -------------------------------------------------------------------

// IsDefault reports whether the dict is the zero value, i.e. has no backing
// store. It is safe to call on any Dict.
func (d Dict[K, V]) IsDefault() bool {
	return d.store == nil
}

// Len returns the number of entries.
func (d Dict[K, V]) Len() int {
	return d.table().Len()
}

// ContainsKey reports whether key is present under the dict's comparer.
func (d Dict[K, V]) ContainsKey(key K) bool {
	return d.table().Contains(key)
}

// Lookup returns the value stored for key, if present. A missing key is
// reported through the second return value, never by panicking.
func (d Dict[K, V]) Lookup(key K) (V, bool) {
	return d.table().Get(key)
}

// Get returns the value stored for key and panics if the key is absent.
// Use Lookup or GetOr when absence is an expected outcome.
func (d Dict[K, V]) Get(key K) V {
	v, ok := d.table().Get(key)
	if !ok {
		panic(notFound(key))
	}
	return v
}

// GetOr returns the value stored for key, or fallback if the key is absent.
func (d Dict[K, V]) GetOr(key K, fallback V) V {
	if v, ok := d.table().Get(key); ok {
		return v
	}
	return fallback
}

// GetOrZero returns the value stored for key, or the zero value of V if the
// key is absent.
func (d Dict[K, V]) GetOrZero(key K) V {
	v, _ := d.table().Get(key)
	return v
}

// Comparer returns the key comparer the backing store was created with.
func (d Dict[K, V]) Comparer() hashtable.Comparer[K] {
	return d.table().Comparer()
}

// All returns an iterator over the entries, in unspecified order.
func (d Dict[K, V]) All() iter.Seq2[K, V] {
	return d.table().All()
}

// Keys returns an iterator over the keys, in unspecified order.
func (d Dict[K, V]) Keys() iter.Seq[K] {
	return d.table().Keys()
}

// Values returns an iterator over the values, in unspecified order.
func (d Dict[K, V]) Values() iter.Seq[V] {
	store := d.table()
	return func(yield func(V) bool) {
		for _, v := range store.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// WithComparer returns a dict with the same entries under cmp. If cmp is the
// dict's current comparer (nil counting as the default), the receiver is
// returned unchanged, without allocation. Otherwise the entries are rehashed
// into a fresh store; keys the new comparer considers equal collapse, with
// one surviving entry per equivalence class.
func (d Dict[K, V]) WithComparer(cmp hashtable.Comparer[K]) Dict[K, V] {
	store := d.table()
	cmp = hashtable.Normalize(cmp)
	if cmp == store.Comparer() {
		return d
	}
	tracer().Debugf("rehashing dict of %d entries under new comparer", store.Len())
	return Dict[K, V]{store: store.Rehash(cmp)}
}

// ToBuilder returns a builder pre-loaded with the dict's entries, under the
// dict's comparer. The builder gets its own storage; mutating it never
// affects the dict.
func (d Dict[K, V]) ToBuilder() *Builder[K, V] {
	store := d.table()
	if store.Len() == 0 {
		// let the builder pick its own default capacity
		return NewBuilderWith[K, V](store.Comparer())
	}
	return &Builder[K, V]{store: store.Clone()}
}

// Equal reports storage identity: true iff both dicts wrap the same backing
// store. Two dicts holding equal entries in distinct stores are not Equal.
// Two default instances are Equal.
func (d Dict[K, V]) Equal(other Dict[K, V]) bool {
	return d.store == other.store
}

// Hash returns a hash derived from the backing store's identity, consistent
// with Equal. A default instance hashes to 0.
func (d Dict[K, V]) Hash() uint32 {
	if d.store == nil {
		return 0
	}
	return d.store.Identity()
}

func (d Dict[K, V]) String() string {
	if d.store == nil {
		return "Dict(default)"
	}
	var sb strings.Builder
	sb.WriteString("Dict{")
	first := true
	for k, v := range d.store.All() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v ⇒ %v", k, v)
		first = false
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Read-only guard -------------------------------------------------------

// Set always panics: a Dict is read-only. Mutate through a Builder instead.
// On a default instance the uninitialized-access panic wins.
func (d Dict[K, V]) Set(K, V) {
	d.table()
	panic(errReadOnly)
}

// Add always panics: a Dict is read-only. Mutate through a Builder instead.
func (d Dict[K, V]) Add(K, V) {
	d.table()
	panic(errReadOnly)
}

// Remove always panics: a Dict is read-only. Mutate through a Builder instead.
func (d Dict[K, V]) Remove(K) bool {
	d.table()
	panic(errReadOnly)
}

// Clear always panics: a Dict is read-only. Mutate through a Builder instead.
func (d Dict[K, V]) Clear() {
	d.table()
	panic(errReadOnly)
}

// --- Helpers ---------------------------------------------------------------

const errReadOnly = "dict: Dict is read-only"
const errDefault = "dict: operation on uninitialized Dict (zero value); use Empty, Collect or a Builder"

// table is the single fail-fast gate for store-touching operations.
func (d Dict[K, V]) table() *hashtable.Table[K, V] {
	if d.store == nil {
		panic(errDefault)
	}
	return d.store
}

func requireArg(that bool, msg string) {
	if !that {
		panic("dict: " + msg)
	}
}

func dupKey(key any) string {
	return fmt.Sprintf("dict: duplicate key %v", key)
}

func notFound(key any) string {
	return fmt.Sprintf("dict: key not found: %v", key)
}
