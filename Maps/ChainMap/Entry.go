package ChainMap

// Entry is a key-value pair owned by exactly one bucket of a ChainMap. The
// chain link is private; an Entry handed out by Detach or GetEntry can't be
// used to reach its former neighbors.
//
// Callers may read Key and read or replace Value through a *Entry obtained
// from GetEntry. Replacing Key would silently break the residency invariant
// (hash(Key) mod Buckets() selects the owning bucket), so don't.
type Entry[K, V any] struct {
	Key   K
	Value V
	next  *Entry[K, V]
}
