package Lists

// CircularList is a singly linked ring addressed by its tail node, whose
// successor is the front. Rotate advances the ring by one element in
// constant time. The zero value is an empty ring.
type CircularList[T any] struct {
	tail *sNode[T]
	sz   int
}

func NewCircular[T any]() *CircularList[T] {
	return &CircularList[T]{}
}

func (u *CircularList[T]) Len() int {
	return u.sz
}

func (u *CircularList[T]) Empty() bool {
	return u.sz == 0
}

func (u *CircularList[T]) PushFront(v T) {
	n := &sNode[T]{v: v}
	if u.tail == nil {
		n.nx = n
		u.tail = n
	} else {
		n.nx = u.tail.nx
		u.tail.nx = n
	}
	u.sz++
}

func (u *CircularList[T]) PushBack(v T) {
	u.PushFront(v)
	u.tail = u.tail.nx
}

func (u *CircularList[T]) PopFront() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	n := u.tail.nx
	if n == u.tail {
		u.tail = nil
	} else {
		u.tail.nx = n.nx
	}
	n.nx = nil
	u.sz--
	return n.v, true
}

func (u *CircularList[T]) Front() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.nx.v, true
}

func (u *CircularList[T]) Back() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.v, true
}

// Rotate makes the current front the new back.
func (u *CircularList[T]) Rotate() {
	if u.tail != nil {
		u.tail = u.tail.nx
	}
}

func (u *CircularList[T]) Clear() {
	u.tail, u.sz = nil, 0
}

// Range calls f on each element from front to back, one full revolution.
func (u *CircularList[T]) Range(f func(T) bool) {
	if u.tail == nil {
		return
	}
	for n := u.tail.nx; ; n = n.nx {
		if !f(n.v) {
			return
		}
		if n == u.tail {
			return
		}
	}
}
