package Stacks

import (
	"github.com/j-k-maldonado/go-containers/Lists"
)

// listStack adapts a SinglyList into a LIFO; the list head is the top.
type listStack[T any] struct {
	content Lists.SinglyList[T]
}

func MakeListStack[T any]() Stack[T] {
	return &listStack[T]{}
}

func (u *listStack[T]) Push(item T) {
	u.content.PushFront(item)
}

func (u *listStack[T]) Pop() (T, error) {
	if v, ok := u.content.PopFront(); ok {
		return v, nil
	}
	return *new(T), &EmptyStackError{}
}

func (u *listStack[T]) Peek() (item T) {
	item, _ = u.content.Front()
	return
}

func (u *listStack[T]) Empty() bool {
	return u.content.Empty()
}

func (u *listStack[T]) Size() int {
	return u.content.Len()
}

func (u *listStack[T]) Clear() {
	u.content.Clear()
}
