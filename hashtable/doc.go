/*
Package hashtable implements a mutable hash table with chained buckets, keyed
by a client-supplied comparer (hash function plus equality predicate). It is
the backing store for the immutable set and dict views of this module: those
packages manage who owns a table instance and when, while this package only
cares about putting things into buckets.

Iteration order is unspecified and may change whenever the table grows.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashtable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'frozen.hashtable'.
func tracer() tracing.Trace {
	return tracing.Select("frozen.hashtable")
}
