package hornlog

import "sync/atomic"

// gensymCounter is the process-wide symbol counter. It is never reset and
// never recycled: every call to Gensym, from any goroutine, returns a
// distinct value, and the total order across calls matches the order in
// which they completed.
var gensymCounter atomic.Int64

// Gensym returns a fresh, globally unique non-negative integer. It backs
// both fresh variable identifiers (see FreshVar) and, for hosts that want
// it, atom-interning keys. The first call returns 0.
func Gensym() int64 {
	return gensymCounter.Add(1) - 1
}

// FreshVar returns a new logic variable with a fresh identifier. It is a
// convenience for hosts building queries programmatically, without going
// through the syntax package's parser.
func FreshVar() Var {
	return Var(Gensym())
}
