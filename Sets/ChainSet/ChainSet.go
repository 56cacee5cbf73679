// Package ChainSet provides an unordered set backed by a ChainMap used as a
// key-only store. Beyond membership it implements the usual algebra (Union,
// Intersect, Diff, Subset, Eq) over operands that share a hash/equal
// vocabulary.
package ChainSet

import (
	Go_Containers "github.com/j-k-maldonado/go-containers"
	"github.com/j-k-maldonado/go-containers/Maps/ChainMap"
)

// ChainSet is a thin facade over a ChainMap whose values are all
// struct{}{}. Like the map underneath, a ChainSet is NOT goroutine-safe.
type ChainSet[E any] struct {
	m     *ChainMap.ChainMap[E, struct{}]
	hash  func(E) uint32
	equal func(E, E) bool
}

type option[E any] interface {
	apply(c *config[E])
}

type config[E any] struct {
	capacity int
	destroy  func(E)
}

type capacityOption[E any] struct {
	capacity int
}

func (op capacityOption[E]) apply(c *config[E]) {
	c.capacity = op.capacity
}

// WithCapacity requests an initial bucket count for the backing map.
func WithCapacity[E any](capacity int) option[E] {
	return capacityOption[E]{capacity}
}

type destroyOption[E any] struct {
	destroy func(E)
}

func (op destroyOption[E]) apply(c *config[E]) {
	c.destroy = op.destroy
}

// WithDestroy installs a finalizer that the set runs on every element it
// releases. Sets produced by the algebra functions never carry one: they
// borrow their elements from the operands.
func WithDestroy[E any](destroy func(E)) option[E] {
	return destroyOption[E]{destroy}
}

// New creates an empty ChainSet using hash and equal as the element
// vocabulary. The constraints on the pair are those of ChainMap.New.
func New[E any](hash func(E) uint32, equal func(E, E) bool, options ...option[E]) (*ChainSet[E], error) {
	c := config[E]{capacity: ChainMap.DefaultBuckets}
	for _, op := range options {
		op.apply(&c)
	}
	m, err := ChainMap.New[E, struct{}](hash, equal,
		ChainMap.WithCapacity[E, struct{}](c.capacity),
		ChainMap.WithDestroyKey[E, struct{}](c.destroy))
	if err != nil {
		return nil, err
	}
	return &ChainSet[E]{m: m, hash: hash, equal: equal}, nil
}

// NewStrings creates a ChainSet of strings with the textual defaults.
func NewStrings(options ...option[string]) (*ChainSet[string], error) {
	return New[string](Go_Containers.HashString, Go_Containers.Equal[string], options...)
}

// Put adds e to the set. Adding a present element is a no-op on the set's
// size; the stored element is kept and the incoming duplicate goes through
// the destroy finalizer, if one is installed.
func (u *ChainSet[E]) Put(e E) error {
	return u.m.Put(e, struct{}{})
}

// Has reports whether e is in the set.
func (u *ChainSet[E]) Has(e E) bool {
	return u.m.HasKey(e)
}

// Remove deletes e, running the destroy finalizer on the stored element, and
// reports whether it was present.
func (u *ChainSet[E]) Remove(e E) bool {
	return u.m.Remove(e)
}

// Size returns the number of elements.
func (u *ChainSet[E]) Size() int {
	return u.m.Size()
}

// Empty reports whether the set has no elements.
func (u *ChainSet[E]) Empty() bool {
	return u.m.Empty()
}

// Clear deletes every element, keeping the set usable.
func (u *ChainSet[E]) Clear() {
	u.m.Clear()
}

// Destroy releases the set's storage; see ChainMap.Destroy.
func (u *ChainSet[E]) Destroy() {
	u.m.Destroy()
}

// Take returns an arbitrary element without removing it. ok is false on an
// empty set.
func (u *ChainSet[E]) Take() (e E, ok bool) {
	u.Range(func(x E) bool {
		e, ok = x, true
		return false
	})
	return
}

// Range calls f on every element until f returns false, in arbitrary order.
// f must not mutate the set.
func (u *ChainSet[E]) Range(f func(E) bool) {
	u.m.Range(func(e E, _ struct{}) bool {
		return f(e)
	})
}
