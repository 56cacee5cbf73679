package Lists

type dNode[T any] struct {
	v      T
	nx, pv *dNode[T]
}

// DoublyList is a bidirectionally linked list; pushes and pops at either end
// are constant time. The zero value is an empty list.
type DoublyList[T any] struct {
	head, tail *dNode[T]
	sz         int
}

func NewDoubly[T any]() *DoublyList[T] {
	return &DoublyList[T]{}
}

func (u *DoublyList[T]) Len() int {
	return u.sz
}

func (u *DoublyList[T]) Empty() bool {
	return u.sz == 0
}

func (u *DoublyList[T]) PushFront(v T) {
	n := &dNode[T]{v: v, nx: u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.pv = n
	}
	u.head = n
	u.sz++
}

func (u *DoublyList[T]) PushBack(v T) {
	n := &dNode[T]{v: v, pv: u.tail}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.nx = n
	}
	u.tail = n
	u.sz++
}

func (u *DoublyList[T]) unlink(n *dNode[T]) {
	if n.pv == nil {
		u.head = n.nx
	} else {
		n.pv.nx = n.nx
	}
	if n.nx == nil {
		u.tail = n.pv
	} else {
		n.nx.pv = n.pv
	}
	n.nx, n.pv = nil, nil
	u.sz--
}

func (u *DoublyList[T]) PopFront() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	n := u.head
	u.unlink(n)
	return n.v, true
}

func (u *DoublyList[T]) PopBack() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	n := u.tail
	u.unlink(n)
	return n.v, true
}

func (u *DoublyList[T]) Front() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	return u.head.v, true
}

func (u *DoublyList[T]) Back() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.v, true
}

// RemoveFirst deletes the first element equal to v under eq and reports
// whether one was found.
func (u *DoublyList[T]) RemoveFirst(v T, eq func(T, T) bool) bool {
	for n := u.head; n != nil; n = n.nx {
		if eq(n.v, v) {
			u.unlink(n)
			return true
		}
	}
	return false
}

func (u *DoublyList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

func (u *DoublyList[T]) Range(f func(T) bool) {
	for n := u.head; n != nil; n = n.nx {
		if !f(n.v) {
			return
		}
	}
}

// RangeReverse is Range from tail to head.
func (u *DoublyList[T]) RangeReverse(f func(T) bool) {
	for n := u.tail; n != nil; n = n.pv {
		if !f(n.v) {
			return
		}
	}
}
