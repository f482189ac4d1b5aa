/*
Package dict implements an immutable hash map view paired with a mutable
builder, structurally parallel to package set. A Dict wraps exactly one
backing hash table; a Builder owns its table exclusively and hands it over to
a Dict either by copying (Snapshot) or by a zero-copy ownership transfer
(Freeze).

Dicts compare by storage identity: Equal answers “is this the same snapshot”,
not “does this hold the same entries”.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'frozen.dict'.
func tracer() tracing.Trace {
	return tracing.Select("frozen.dict")
}
