package Stacks

import (
	"github.com/j-k-maldonado/go-containers/Vectors"
)

// arrStack adapts a Vector into a LIFO.
type arrStack[T any] struct {
	content *Vectors.Vector[T]
}

func MakeArrayStack[T any](initCap int) Stack[T] {
	return &arrStack[T]{Vectors.New[T](initCap)}
}

func (u *arrStack[T]) Push(item T) {
	u.content.Push(item)
}

func (u *arrStack[T]) Pop() (T, error) {
	if v, ok := u.content.Pop(); ok {
		return v, nil
	}
	return *new(T), &EmptyStackError{}
}

func (u *arrStack[T]) Peek() (item T) {
	if !u.content.Empty() {
		item = u.content.Get(u.content.Len() - 1)
	}
	return
}

func (u *arrStack[T]) Empty() bool {
	return u.content.Empty()
}

func (u *arrStack[T]) Size() int {
	return u.content.Len()
}

func (u *arrStack[T]) Clear() {
	u.content.Clear()
}
