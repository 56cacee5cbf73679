// Package Vectors provides a growable, indexable sequence. It is the array
// backbone the adapter packages (Stacks, Queues) build on.
package Vectors

// Vector is a dynamic array of T. The zero value is usable and empty.
type Vector[T any] struct {
	content []T
}

// New creates a Vector with room for initCap elements before the first
// growth.
func New[T any](initCap int) *Vector[T] {
	return &Vector[T]{make([]T, 0, initCap)}
}

// Of creates a Vector holding the given elements.
func Of[T any](elems ...T) *Vector[T] {
	v := New[T](len(elems))
	v.content = append(v.content, elems...)
	return v
}

func (u *Vector[T]) Len() int {
	return len(u.content)
}

func (u *Vector[T]) Cap() int {
	return cap(u.content)
}

func (u *Vector[T]) Empty() bool {
	return len(u.content) == 0
}

// Get returns the element at index i; like a slice access, i must be in
// [0, Len()).
func (u *Vector[T]) Get(i int) T {
	return u.content[i]
}

func (u *Vector[T]) Set(i int, v T) {
	u.content[i] = v
}

func (u *Vector[T]) grow(n int) {
	nc := make([]T, len(u.content), n)
	copy(nc, u.content)
	u.content = nc
}

// Push appends v, growing the backing array by 3/2 when full.
func (u *Vector[T]) Push(v T) {
	if len(u.content) == cap(u.content) {
		u.grow(cap(u.content)*3/2 + 1)
	}
	u.content = append(u.content, v)
}

// Pop removes and returns the last element.
func (u *Vector[T]) Pop() (T, bool) {
	if len(u.content) == 0 {
		return *new(T), false
	}
	last := len(u.content) - 1
	v := u.content[last]
	u.content[last] = *new(T)
	u.content = u.content[:last]
	return v, true
}

// Insert places v at index i, shifting the tail right; i may equal Len().
func (u *Vector[T]) Insert(i int, v T) {
	u.Push(*new(T))
	copy(u.content[i+1:], u.content[i:])
	u.content[i] = v
}

// RemoveAt deletes and returns the element at index i, shifting the tail
// left.
func (u *Vector[T]) RemoveAt(i int) T {
	v := u.content[i]
	copy(u.content[i:], u.content[i+1:])
	last := len(u.content) - 1
	u.content[last] = *new(T)
	u.content = u.content[:last]
	return v
}

// Clear empties the vector, keeping its capacity.
func (u *Vector[T]) Clear() {
	for i := range u.content {
		u.content[i] = *new(T)
	}
	u.content = u.content[:0]
}

// Shrink reallocates the backing array to fit the current length.
func (u *Vector[T]) Shrink() {
	u.grow(len(u.content) | 1)
}

// Range calls f on each element in index order until f returns false.
func (u *Vector[T]) Range(f func(T) bool) {
	for _, v := range u.content {
		if !f(v) {
			return
		}
	}
}
