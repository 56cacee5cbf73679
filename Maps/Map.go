package Maps

// Map is the behavior shared by the maps in this directory.
type Map[K, V any] interface {
	Put(K, V) error
	Get(K) (V, bool)
	HasKey(K) bool
	Remove(K) bool
	Size() int
	Empty() bool
	Clear()
	Range(func(K, V) bool)
}
