package Lists

// List is the behavior shared by the linked lists in this directory.
type List[T any] interface {
	PushFront(T)
	PushBack(T)
	PopFront() (T, bool)
	Front() (T, bool)
	Len() int
	Empty() bool
	Clear()
	Range(func(T) bool)
}
