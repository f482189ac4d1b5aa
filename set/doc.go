/*
Package set implements an immutable hash set view paired with a mutable
builder. A Set wraps exactly one backing hash table and never mutates it;
a Builder owns its table exclusively and hands it over to a Set either by
copying (Snapshot) or by a zero-copy ownership transfer (Freeze).

Sets compare by storage identity: Equal answers “is this the same snapshot”,
while SetEquals answers “does this hold the same elements”.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package set

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'frozen.set'.
func tracer() tracing.Trace {
	return tracing.Select("frozen.set")
}
