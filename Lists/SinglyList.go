package Lists

type sNode[T any] struct {
	v  T
	nx *sNode[T]
}

// SinglyList is a forward-linked list with a tail pointer, so both
// PushFront and PushBack are constant time. The zero value is an empty
// list.
type SinglyList[T any] struct {
	head, tail *sNode[T]
	sz         int
}

func NewSingly[T any]() *SinglyList[T] {
	return &SinglyList[T]{}
}

func (u *SinglyList[T]) Len() int {
	return u.sz
}

func (u *SinglyList[T]) Empty() bool {
	return u.sz == 0
}

func (u *SinglyList[T]) PushFront(v T) {
	n := &sNode[T]{v: v, nx: u.head}
	u.head = n
	if u.tail == nil {
		u.tail = n
	}
	u.sz++
}

func (u *SinglyList[T]) PushBack(v T) {
	n := &sNode[T]{v: v}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.nx = n
	}
	u.tail = n
	u.sz++
}

func (u *SinglyList[T]) PopFront() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	n := u.head
	u.head = n.nx
	if u.head == nil {
		u.tail = nil
	}
	n.nx = nil
	u.sz--
	return n.v, true
}

func (u *SinglyList[T]) Front() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	return u.head.v, true
}

func (u *SinglyList[T]) Back() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.v, true
}

// RemoveFirst deletes the first element equal to v under eq and reports
// whether one was found.
func (u *SinglyList[T]) RemoveFirst(v T, eq func(T, T) bool) bool {
	for p := &u.head; *p != nil; p = &(*p).nx {
		if n := *p; eq(n.v, v) {
			*p = n.nx
			if u.tail == n {
				u.tail = nil
				if u.head != nil {
					for t := u.head; ; t = t.nx {
						if t.nx == nil {
							u.tail = t
							break
						}
					}
				}
			}
			n.nx = nil
			u.sz--
			return true
		}
	}
	return false
}

// Reverse flips the list in place.
func (u *SinglyList[T]) Reverse() {
	var prev *sNode[T]
	u.tail = u.head
	for cur := u.head; cur != nil; {
		nx := cur.nx
		cur.nx = prev
		prev, cur = cur, nx
	}
	u.head = prev
}

func (u *SinglyList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

func (u *SinglyList[T]) Range(f func(T) bool) {
	for n := u.head; n != nil; n = n.nx {
		if !f(n.v) {
			return
		}
	}
}
