package Queues

// circArrQ is a circular buffer; head indexes the oldest element and sz
// counts the live ones, so head+sz mod len is the write position.
type circArrQ[T any] struct {
	head, sz int
	content  []T
}

func MakeArrayQueue[T any](initCap int) ArrayQueue[T] {
	if initCap < 1 {
		initCap = 1
	}
	return &circArrQ[T]{content: make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

func (u *circArrQ[T]) Size() int {
	return u.sz
}

func (u *circArrQ[T]) resize(newLen int) {
	nc := make([]T, newLen)
	for i := 0; i < u.sz; i++ {
		nc[i] = u.content[(u.head+i)%len(u.content)]
	}
	u.content = nc
	u.head = 0
}

func (u *circArrQ[T]) Shrink() {
	u.resize(u.sz | 1)
}

func (u *circArrQ[T]) Clear() {
	for i := range u.content {
		u.content[i] = *new(T)
	}
	u.head, u.sz = 0, 0
}

func (u *circArrQ[T]) Push(item T) {
	if u.sz == len(u.content) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[(u.head+u.sz)%len(u.content)] = item
	u.sz++
}

func (u *circArrQ[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % len(u.content)
	u.sz--
	return t, nil
}

func (u *circArrQ[T]) Peek() (item T) {
	if !u.Empty() {
		item = u.content[u.head]
	}
	return
}
