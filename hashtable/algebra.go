package hashtable

import "iter"

// Structural set algebra over the table's keys. Sequence arguments may hold
// duplicates; they are deduplicated under the table's own comparer where the
// algorithm needs distinct counts.

// SetEquals reports whether the table's key set equals the distinct elements
// of seq under the table's comparer.
func (t *Table[K, V]) SetEquals(seq iter.Seq[K]) bool {
	aux := t.distinct(seq)
	if aux.Len() != t.count {
		return false
	}
	for k := range aux.Keys() {
		if !t.Contains(k) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every key of the table occurs in seq.
func (t *Table[K, V]) SubsetOf(seq iter.Seq[K]) bool {
	aux := t.distinct(seq)
	for k := range t.Keys() {
		if !aux.Contains(k) {
			return false
		}
	}
	return true
}

// ProperSubsetOf reports whether the table is a subset of seq and seq holds
// at least one additional distinct element.
func (t *Table[K, V]) ProperSubsetOf(seq iter.Seq[K]) bool {
	aux := t.distinct(seq)
	if aux.Len() <= t.count {
		return false
	}
	for k := range t.Keys() {
		if !aux.Contains(k) {
			return false
		}
	}
	return true
}

// SupersetOf reports whether every element of seq occurs in the table.
func (t *Table[K, V]) SupersetOf(seq iter.Seq[K]) bool {
	for k := range seq {
		if !t.Contains(k) {
			return false
		}
	}
	return true
}

// ProperSupersetOf reports whether the table contains every element of seq
// plus at least one additional key.
func (t *Table[K, V]) ProperSupersetOf(seq iter.Seq[K]) bool {
	aux := t.distinct(seq)
	if aux.Len() >= t.count {
		return false
	}
	for k := range aux.Keys() {
		if !t.Contains(k) {
			return false
		}
	}
	return true
}

// Overlaps reports whether the table and seq share at least one element.
func (t *Table[K, V]) Overlaps(seq iter.Seq[K]) bool {
	for k := range seq {
		if t.Contains(k) {
			return true
		}
	}
	return false
}

// --- Mutating algebra ------------------------------------------------------

// Union inserts every element of seq that is absent, associating the zero
// value. Present keys keep their stored representative and value.
func (t *Table[K, V]) Union(seq iter.Seq[K]) {
	var zero V
	for k := range seq {
		t.Insert(k, zero)
	}
}

// Intersect removes every key of the table that does not occur in seq.
func (t *Table[K, V]) Intersect(seq iter.Seq[K]) {
	aux := t.distinct(seq)
	var doomed []K
	for k := range t.Keys() {
		if !aux.Contains(k) {
			doomed = append(doomed, k)
		}
	}
	for _, k := range doomed {
		t.Delete(k)
	}
}

// Except removes every element of seq from the table.
func (t *Table[K, V]) Except(seq iter.Seq[K]) {
	for k := range seq {
		t.Delete(k)
	}
}

// SymmetricExcept leaves the table holding the keys present in exactly one of
// the table and seq. Newly adopted keys carry the zero value.
func (t *Table[K, V]) SymmetricExcept(seq iter.Seq[K]) {
	aux := t.distinct(seq)
	var zero V
	for k := range aux.Keys() {
		if !t.Delete(k) {
			t.Insert(k, zero)
		}
	}
}

// distinct materializes seq into a throwaway table under t's comparer.
func (t *Table[K, V]) distinct(seq iter.Seq[K]) *Table[K, struct{}] {
	aux := New[K, struct{}](t.cmp, 0)
	for k := range seq {
		aux.Insert(k, struct{}{})
	}
	return aux
}
