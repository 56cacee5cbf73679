// Package ChainMap provides a separately chained hash map whose hashing,
// equality, and payload-release behavior are supplied by the caller at
// construction time. It is deliberately serial: one instance belongs to one
// goroutine, or to callers that synchronize externally.
//
// The map owns its bucket array and entry nodes. Whether it also owns the
// keys and values stored in those nodes is decided by the WithDestroyKey and
// WithDestroyValue options: an installed finalizer runs exactly once on every
// key or value the map releases, except on the Detach path, which hands the
// intact entry back to the caller.
package ChainMap

import (
	Go_Containers "github.com/j-k-maldonado/go-containers"
)

const (
	// MinBuckets is the floor for the bucket count; construction and Resize
	// silently raise smaller requests to it.
	MinBuckets = 8
	// DefaultBuckets is the bucket count used when WithCapacity is absent.
	DefaultBuckets = 16
	// DefaultLoadFactor is the growth ceiling used when WithLoadFactor is
	// absent.
	DefaultLoadFactor = 0.75
	// MaxLoadFactor is the largest accepted growth ceiling.
	MaxLoadFactor = 1.0
)

// ChainMap is a bucket array of entry chains. An entry with key k lives in
// bucket hash(k) mod Buckets(), keys are unique under equal, and after any
// Put that grew successfully Size()/Buckets() stays at or below the
// load-factor ceiling. A ChainMap is NOT goroutine-safe.
type ChainMap[K, V any] struct {
	buckets      []*Entry[K, V]
	size         int
	capacity     int // construction-time request, only meaningful inside New
	loadFactor   float64
	hash         func(K) uint32
	equal        func(K, K) bool
	destroyKey   func(K)
	destroyValue func(V)
	alloc        Allocator[K, V]
}

// New creates an empty ChainMap using hash and equal as the key vocabulary.
// equal must be an equivalence relation and hash must respect it: equal keys
// must produce equal digests, otherwise the uniqueness of keys breaks
// silently. New fails only if the configured Allocator refuses the bucket
// array.
func New[K, V any](hash func(K) uint32, equal func(K, K) bool, options ...option[K, V]) (*ChainMap[K, V], error) {
	m := &ChainMap[K, V]{
		capacity:   DefaultBuckets,
		loadFactor: DefaultLoadFactor,
		hash:       hash,
		equal:      equal,
		alloc:      defaultAllocator[K, V]{},
	}
	for _, op := range options {
		op.apply(m)
	}
	if m.capacity < MinBuckets {
		m.capacity = MinBuckets
	}
	buckets, err := m.alloc.AllocBuckets(m.capacity)
	if err != nil {
		return nil, &AllocationError{"New", err}
	}
	m.buckets = buckets
	return m, nil
}

// NewStrings creates a ChainMap keyed by strings with the textual defaults:
// the PJW digest for hashing and == for equality.
func NewStrings[V any](options ...option[string, V]) (*ChainMap[string, V], error) {
	return New[string, V](Go_Containers.HashString, Go_Containers.Equal[string], options...)
}

func (u *ChainMap[K, V]) index(h uint32) int {
	return int(h % uint32(len(u.buckets)))
}

// Size returns the number of entries.
func (u *ChainMap[K, V]) Size() int {
	return u.size
}

// Empty reports whether the map has no entries.
func (u *ChainMap[K, V]) Empty() bool {
	return u.size == 0
}

// Buckets returns the current bucket count, the modulus applied to digests.
func (u *ChainMap[K, V]) Buckets() int {
	return len(u.buckets)
}

// LoadFactor returns Size()/Buckets().
func (u *ChainMap[K, V]) LoadFactor() float64 {
	if u.size == 0 {
		return 0
	}
	return float64(u.size) / float64(len(u.buckets))
}

// SetLoadFactor changes the growth ceiling. Values above MaxLoadFactor are
// clamped to it, values at or below zero are ignored. The new ceiling only
// takes effect on the next growing Put; it never triggers a resize by
// itself.
func (u *ChainMap[K, V]) SetLoadFactor(f float64) {
	if f > MaxLoadFactor {
		f = MaxLoadFactor
	}
	if f > 0 {
		u.loadFactor = f
	}
}

// Get returns the value stored under key. The second result distinguishes a
// stored zero value from an absent key.
func (u *ChainMap[K, V]) Get(key K) (V, bool) {
	if e := u.GetEntry(key); e != nil {
		return e.Value, true
	}
	var zero V
	return zero, false
}

// GetEntry returns the entry holding key, or nil. The entry also exposes the
// stored key, which an updating Put keeps in preference to the key it was
// called with.
func (u *ChainMap[K, V]) GetEntry(key K) *Entry[K, V] {
	for e := u.buckets[u.index(u.hash(key))]; e != nil; e = e.next {
		if u.equal(e.Key, key) {
			return e
		}
	}
	return nil
}

// HasKey reports whether key is present.
func (u *ChainMap[K, V]) HasKey(key K) bool {
	return u.GetEntry(key) != nil
}

// Put stores value under key. If an equal key is already present the entry
// is reused: the displaced value goes through the value finalizer, the map
// keeps its stored key, and the incoming key goes through the key finalizer.
// Otherwise a new entry is prepended to its chain and, when the entry count
// exceeds loadFactor*Buckets(), the bucket array doubles. A doubling that
// fails at the allocator does not undo the insertion: the map answers
// lookups correctly while sitting above its ceiling, and the next growing
// Put retries.
func (u *ChainMap[K, V]) Put(key K, value V) error {
	i := u.index(u.hash(key))
	for e := u.buckets[i]; e != nil; e = e.next {
		if u.equal(e.Key, key) {
			if u.destroyValue != nil {
				u.destroyValue(e.Value)
			}
			e.Value = value
			if u.destroyKey != nil {
				u.destroyKey(key)
			}
			return nil
		}
	}
	e, err := u.alloc.AllocEntry()
	if err != nil {
		return &AllocationError{"Put", err}
	}
	e.Key, e.Value, e.next = key, value, u.buckets[i]
	u.buckets[i] = e
	u.size++
	if float64(u.size) > u.loadFactor*float64(len(u.buckets)) {
		_ = u.Resize(2 * len(u.buckets))
	}
	return nil
}

// Remove deletes the entry holding key, running the key and value finalizers
// on its payload, and reports whether an entry was deleted. Removal never
// shrinks the bucket array; callers wanting fewer buckets call Resize.
func (u *ChainMap[K, V]) Remove(key K) bool {
	for p := &u.buckets[u.index(u.hash(key))]; *p != nil; p = &(*p).next {
		if e := *p; u.equal(e.Key, key) {
			*p = e.next
			if u.destroyKey != nil {
				u.destroyKey(e.Key)
			}
			if u.destroyValue != nil {
				u.destroyValue(e.Value)
			}
			u.release(e)
			u.size--
			return true
		}
	}
	return false
}

// Detach unlinks the entry holding key and hands it to the caller without
// running either finalizer; ownership of the key and value transfers with
// it.
func (u *ChainMap[K, V]) Detach(key K) (*Entry[K, V], bool) {
	for p := &u.buckets[u.index(u.hash(key))]; *p != nil; p = &(*p).next {
		if e := *p; u.equal(e.Key, key) {
			*p = e.next
			e.next = nil
			u.size--
			return e, true
		}
	}
	return nil, false
}

func (u *ChainMap[K, V]) release(e *Entry[K, V]) {
	var zk K
	var zv V
	e.Key, e.Value, e.next = zk, zv, nil
	u.alloc.FreeEntry(e)
}

// Clear deletes every entry, running the finalizers on each, but keeps the
// bucket array and the load-factor ceiling so the map is immediately
// reusable. Clearing an empty map is a no-op.
func (u *ChainMap[K, V]) Clear() {
	for i, e := range u.buckets {
		for e != nil {
			next := e.next
			if u.destroyKey != nil {
				u.destroyKey(e.Key)
			}
			if u.destroyValue != nil {
				u.destroyValue(e.Value)
			}
			u.release(e)
			e = next
		}
		u.buckets[i] = nil
	}
	u.size = 0
}

// Destroy clears the map and releases its bucket array back to the
// allocator, leaving the struct zeroed. Destroy is idempotent; any other
// operation on a destroyed map is undefined.
func (u *ChainMap[K, V]) Destroy() {
	if u.buckets == nil {
		return
	}
	u.Clear()
	u.alloc.FreeBuckets(u.buckets)
	*u = ChainMap[K, V]{}
}

// Resize redistributes every entry into a fresh bucket array of max(n,
// MinBuckets) buckets. The existing nodes are relinked rather than
// reallocated, so no key or value is finalized or copied and the only
// failure point is the array allocation itself, which leaves the map
// untouched.
func (u *ChainMap[K, V]) Resize(n int) error {
	if n < MinBuckets {
		n = MinBuckets
	}
	newBuckets, err := u.alloc.AllocBuckets(n)
	if err != nil {
		return &AllocationError{"Resize", err}
	}
	for _, e := range u.buckets {
		for e != nil {
			next := e.next
			i := int(u.hash(e.Key) % uint32(n))
			e.next = newBuckets[i]
			newBuckets[i] = e
			e = next
		}
	}
	old := u.buckets
	u.buckets = newBuckets
	u.alloc.FreeBuckets(old)
	return nil
}

// Range calls f on every entry until f returns false. The order is
// arbitrary. Range is invalidated by mutation: Put may rehash every chain
// and removing the current entry unlinks the cursor, so f must not mutate
// the map.
func (u *ChainMap[K, V]) Range(f func(K, V) bool) {
	for _, e := range u.buckets {
		for ; e != nil; e = e.next {
			if !f(e.Key, e.Value) {
				return
			}
		}
	}
}
