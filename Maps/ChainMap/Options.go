package ChainMap

// option configures a ChainMap while it is being created.
type option[K, V any] interface {
	apply(m *ChainMap[K, V])
}

type capacityOption[K, V any] struct {
	capacity int
}

func (op capacityOption[K, V]) apply(m *ChainMap[K, V]) {
	m.capacity = op.capacity
}

// WithCapacity requests an initial bucket count. Requests below MinBuckets
// are raised to MinBuckets.
func WithCapacity[K, V any](capacity int) option[K, V] {
	return capacityOption[K, V]{capacity}
}

type loadFactorOption[K, V any] struct {
	loadFactor float64
}

func (op loadFactorOption[K, V]) apply(m *ChainMap[K, V]) {
	m.SetLoadFactor(op.loadFactor)
}

// WithLoadFactor sets the load-factor ceiling that triggers growth. Values
// outside (0, 1] are clamped the same way SetLoadFactor clamps them.
func WithLoadFactor[K, V any](loadFactor float64) option[K, V] {
	return loadFactorOption[K, V]{loadFactor}
}

type destroyKeyOption[K, V any] struct {
	destroy func(K)
}

func (op destroyKeyOption[K, V]) apply(m *ChainMap[K, V]) {
	m.destroyKey = op.destroy
}

// WithDestroyKey installs a finalizer that the map runs on every key it
// releases. Without one, key ownership stays with the caller.
func WithDestroyKey[K, V any](destroy func(K)) option[K, V] {
	return destroyKeyOption[K, V]{destroy}
}

type destroyValueOption[K, V any] struct {
	destroy func(V)
}

func (op destroyValueOption[K, V]) apply(m *ChainMap[K, V]) {
	m.destroyValue = op.destroy
}

// WithDestroyValue installs a finalizer that the map runs on every value it
// releases, including values displaced by an updating Put.
func WithDestroyValue[K, V any](destroy func(V)) option[K, V] {
	return destroyValueOption[K, V]{destroy}
}

type allocatorOption[K, V any] struct {
	allocator Allocator[K, V]
}

func (op allocatorOption[K, V]) apply(m *ChainMap[K, V]) {
	m.alloc = op.allocator
}

// WithAllocator replaces the default make/new Allocator.
func WithAllocator[K, V any](allocator Allocator[K, V]) option[K, V] {
	return allocatorOption[K, V]{allocator}
}
