package Queues

import (
	"github.com/j-k-maldonado/go-containers/Lists"
)

// listQ adapts a SinglyList into a FIFO; the list head is the queue front.
type listQ[T any] struct {
	content Lists.SinglyList[T]
}

func MakeListQueue[T any]() Queue[T] {
	return &listQ[T]{}
}

func (u *listQ[T]) Push(item T) {
	u.content.PushBack(item)
}

func (u *listQ[T]) Pop() (T, error) {
	if v, ok := u.content.PopFront(); ok {
		return v, nil
	}
	return *new(T), &EmptyQueueError{}
}

func (u *listQ[T]) Peek() (item T) {
	item, _ = u.content.Front()
	return
}

func (u *listQ[T]) Empty() bool {
	return u.content.Empty()
}

func (u *listQ[T]) Size() int {
	return u.content.Len()
}

func (u *listQ[T]) Clear() {
	u.content.Clear()
}
