package ChainMap

// Allocator supplies the bucket arrays and entry nodes used by a ChainMap.
// The default allocator is Go's make/new and never fails; a custom allocator
// (arenas, pools, quota enforcement) may return an error from either Alloc
// method, which the map surfaces as *AllocationError.
//
// Free methods are invoked on every node or array the map releases, so a
// pooling allocator sees a balanced stream of Alloc/Free calls. With the
// default allocator they are no-ops and the GC reclaims everything.
type Allocator[K, V any] interface {
	// AllocBuckets returns a slice equivalent to make([]*Entry[K,V], n).
	AllocBuckets(n int) ([]*Entry[K, V], error)
	// AllocEntry returns a zeroed entry node.
	AllocEntry() (*Entry[K, V], error)
	// FreeBuckets releases an array previously obtained from AllocBuckets.
	FreeBuckets([]*Entry[K, V])
	// FreeEntry releases a node previously obtained from AllocEntry. The
	// node's key and value have already been finalized by the map.
	FreeEntry(*Entry[K, V])
}

type defaultAllocator[K, V any] struct{}

func (defaultAllocator[K, V]) AllocBuckets(n int) ([]*Entry[K, V], error) {
	return make([]*Entry[K, V], n), nil
}

func (defaultAllocator[K, V]) AllocEntry() (*Entry[K, V], error) {
	return new(Entry[K, V]), nil
}

func (defaultAllocator[K, V]) FreeBuckets([]*Entry[K, V]) {
}

func (defaultAllocator[K, V]) FreeEntry(*Entry[K, V]) {
}

// AllocationError reports that the configured Allocator refused a request.
// The map it came from still satisfies all of its invariants.
type AllocationError struct {
	Op    string
	Cause error
}

func (e *AllocationError) Error() string {
	return "ChainMap: allocation failed during " + e.Op + ": " + e.Cause.Error()
}

func (e *AllocationError) Unwrap() error {
	return e.Cause
}
