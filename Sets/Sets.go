package Sets

// Set is an unordered collection of distinct elements. Put reports an error
// only when the implementation's storage refuses to grow.
type Set[E any] interface {
	Put(E) error
	Has(E) bool
	Remove(E) bool
	Size() int
	Empty() bool
	Clear()
	Take() (E, bool)
	Range(func(E) bool)
}
