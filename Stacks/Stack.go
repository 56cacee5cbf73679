package Stacks

type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
	Size() int
	Clear()
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
