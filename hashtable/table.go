package hashtable

import (
	"fmt"
	"iter"
)

const minBuckets = 8

// entries chain within a bucket; the computed hash is cached so that growing
// the table never re-invokes the comparer.
type entry[K, V any] struct {
	hash uint32
	key  K
	val  V
	next *entry[K, V]
}

// Table is a mutable hash table with chained buckets. A Table is keyed by a
// Comparer and is not safe for concurrent mutation. The zero value is not
// usable; create tables with New.
//
// A *Table doubles as a storage identity: the set and dict views of this
// module compare table pointers, never table contents.
type Table[K comparable, V any] struct {
	cmp     Comparer[K]
	buckets []*entry[K, V]
	count   int
}

// New creates an empty table with room for capacity entries before the first
// growth. A nil comparer is normalized to Default.
func New[K comparable, V any](cmp Comparer[K], capacity int) *Table[K, V] {
	n := minBuckets
	for n*3/4 < capacity {
		n <<= 1
	}
	return &Table[K, V]{
		cmp:     Normalize(cmp),
		buckets: make([]*entry[K, V], n),
	}
}

// --- API -------------------------------------------------------------------

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() int {
	return t.count
}

// Comparer returns the comparer the table was created with.
func (t *Table[K, V]) Comparer() Comparer[K] {
	return t.cmp
}

// Get returns the value stored for key, if present.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if e := t.lookup(key); e != nil {
		return e.val, true
	}
	var none V
	return none, false
}

// GetKey returns the stored key equal to key under the table's comparer.
// With a coarse comparer (e.g. case-insensitive strings) the stored
// representative may differ from the argument.
func (t *Table[K, V]) GetKey(key K) (K, bool) {
	if e := t.lookup(key); e != nil {
		return e.key, true
	}
	var none K
	return none, false
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.lookup(key) != nil
}

// Put upserts: it stores value under key, replacing key and value of an
// existing entry. It reports whether the key was newly inserted.
func (t *Table[K, V]) Put(key K, value V) bool {
	if e := t.lookup(key); e != nil {
		e.key = key
		e.val = value
		return false
	}
	t.insert(t.cmp.Hash(key), key, value)
	return true
}

// Insert stores value under key only if the key is absent, keeping an
// existing entry untouched otherwise. It reports whether it stored anything.
func (t *Table[K, V]) Insert(key K, value V) bool {
	if t.lookup(key) != nil {
		return false
	}
	t.insert(t.cmp.Hash(key), key, value)
	return true
}

// Delete removes the entry for key, if present, and reports whether it did.
func (t *Table[K, V]) Delete(key K) bool {
	h := t.cmp.Hash(key)
	inx := h & uint32(len(t.buckets)-1)
	var prev *entry[K, V]
	for e := t.buckets[inx]; e != nil; e = e.next {
		if e.hash == h && t.cmp.Equal(e.key, key) {
			if prev == nil {
				t.buckets[inx] = e.next
			} else {
				prev.next = e.next
			}
			t.count--
			return true
		}
		prev = e
	}
	return false
}

// Clear removes all entries, shrinking the table to its minimal size.
func (t *Table[K, V]) Clear() {
	t.buckets = make([]*entry[K, V], minBuckets)
	t.count = 0
}

// All returns an iterator over the table's entries, in unspecified order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range t.buckets {
			for ; e != nil; e = e.next {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over the table's keys, in unspecified order.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range t.buckets {
			for ; e != nil; e = e.next {
				if !yield(e.key) {
					return
				}
			}
		}
	}
}

// Clone returns a new table with the same comparer and a copy of all entries.
// Cached hashes are carried over, so the comparer is not re-invoked.
func (t *Table[K, V]) Clone() *Table[K, V] {
	clone := New[K, V](t.cmp, t.count)
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			clone.insert(e.hash, e.key, e.val)
		}
	}
	return clone
}

// Rehash copies the table's contents into a new table keyed by cmp. When the
// new comparer collapses keys that were distinct before, one representative
// entry survives per equivalence class; which one is unspecified.
func (t *Table[K, V]) Rehash(cmp Comparer[K]) *Table[K, V] {
	cmp = Normalize(cmp)
	fresh := New[K, V](cmp, t.count)
	for k, v := range t.All() {
		fresh.Insert(k, v)
	}
	if fresh.count < t.count {
		tracer().Debugf("rehash collapsed %d entries into %d", t.count, fresh.count)
	}
	return fresh
}

// Identity returns a hash derived from the table instance's identity. Two
// tables with equal contents have distinct identities.
func (t *Table[K, V]) Identity() uint32 {
	var cmp defaultComparer[*Table[K, V]]
	return cmp.Hash(t)
}

// --- Internals -------------------------------------------------------------

func (t *Table[K, V]) lookup(key K) *entry[K, V] {
	assertThat(t.buckets != nil, "table not initialized, use New")
	h := t.cmp.Hash(key)
	for e := t.buckets[h&uint32(len(t.buckets)-1)]; e != nil; e = e.next {
		if e.hash == h && t.cmp.Equal(e.key, key) {
			return e
		}
	}
	return nil
}

// insert links a new entry for a key known to be absent.
func (t *Table[K, V]) insert(hash uint32, key K, value V) {
	if (t.count+1)*4 > len(t.buckets)*3 {
		t.grow()
	}
	inx := hash & uint32(len(t.buckets)-1)
	t.buckets[inx] = &entry[K, V]{hash: hash, key: key, val: value, next: t.buckets[inx]}
	t.count++
}

// grow doubles the bucket count and relinks all entries. Entries keep their
// cached hash, so no comparer calls happen here.
func (t *Table[K, V]) grow() {
	old := t.buckets
	t.buckets = make([]*entry[K, V], len(old)*2)
	tracer().Debugf("growing table from %d to %d buckets", len(old), len(t.buckets))
	for _, e := range old {
		for e != nil {
			next := e.next
			inx := e.hash & uint32(len(t.buckets)-1)
			e.next = t.buckets[inx]
			t.buckets[inx] = e
			e = next
		}
	}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hashtable: "+msg, msgargs...)
		panic(msg)
	}
}
